// Package main provides a local HTTP server for development and testing.
// It serves the same handlers the Lambda functions expose, behind a single
// mux with permissive CORS.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/rs/cors"

	"notebook-relay/internal/config"
	"notebook-relay/internal/handlers"
	"notebook-relay/internal/services/status"
	"notebook-relay/internal/services/storage"
	"notebook-relay/internal/services/webhook"
	"notebook-relay/internal/utils"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := utils.InitLogger(cfg.LogLevel); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer utils.Sync()

	store, err := status.New(cfg)
	if err != nil {
		if errors.Is(err, status.ErrNotConfigured) {
			log.Println("Warning: no status store configured; status writes will be skipped")
		} else {
			log.Printf("Warning: could not connect to status store: %v", err)
		}
		store = nil
	}

	files, err := storage.NewResolver(context.Background(), cfg)
	if err != nil {
		log.Printf("Warning: S3 resolver unavailable (%v); using public storage URLs", err)
		files = storage.NewPublicResolver(cfg.SupabaseURL)
	}

	relay := webhook.NewClient()

	mux := http.NewServeMux()
	mux.Handle("/process-document", handlers.NewDocumentHandler(cfg, store, relay, files))
	mux.Handle("/send-chat-message", handlers.NewChatHandler(cfg, relay))
	mux.Handle("/process-document-callback", handlers.NewCallbackHandler(store))
	mux.Handle("/health", handlers.NewHealthHandler(store))

	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	})

	addr := fmt.Sprintf("0.0.0.0:%s", cfg.Port)
	log.Printf("Notebook Relay API Server")
	log.Printf("Listening on http://localhost:%s", cfg.Port)
	log.Printf("Health: http://localhost:%s/health", cfg.Port)

	if err := http.ListenAndServe(addr, c.Handler(mux)); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
