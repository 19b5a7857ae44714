// Document processing relay Lambda entry point
package main

import (
	"context"
	"errors"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/awslabs/aws-lambda-go-api-proxy/httpadapter"

	"notebook-relay/internal/config"
	"notebook-relay/internal/handlers"
	"notebook-relay/internal/services/status"
	"notebook-relay/internal/services/storage"
	"notebook-relay/internal/services/webhook"
	"notebook-relay/internal/utils"
)

func main() {
	cfg, _ := config.Load()
	_ = utils.InitLogger(cfg.LogLevel)
	defer utils.Sync()

	logger := utils.GetLogger()

	store, err := status.New(cfg)
	if err != nil {
		if errors.Is(err, status.ErrNotConfigured) {
			logger.Warn("No status store configured; status writes will be skipped")
		} else {
			logger.Warn("Could not connect to status store", utils.Error(err))
		}
		store = nil
	}

	files, err := storage.NewResolver(context.Background(), cfg)
	if err != nil {
		logger.Warn("S3 resolver unavailable; using public storage URLs", utils.Error(err))
		files = storage.NewPublicResolver(cfg.SupabaseURL)
	}

	handler := handlers.NewDocumentHandler(cfg, store, webhook.NewClient(), files)

	lambda.Start(httpadapter.New(handler).ProxyWithContext)
}
