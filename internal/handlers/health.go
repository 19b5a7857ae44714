// Package handlers provides the HTTP handlers for the notebook relay service.
package handlers

import (
	"net/http"
	"os"
	"time"

	"notebook-relay/internal/services/status"
)

// HealthHandler reports service liveness and store connectivity.
type HealthHandler struct {
	store status.Store
}

// NewHealthHandler creates a new health handler.
func NewHealthHandler(store status.Store) *HealthHandler {
	return &HealthHandler{store: store}
}

// HealthResponse is the response structure for health checks.
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Service   string `json:"service"`
	Version   string `json:"version"`
	Database  string `json:"database"`
}

// ServeHTTP answers health check requests.
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	setCORSHeaders(w)
	if handlePreflight(w, r) {
		return
	}

	response := HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Service:   "notebook-relay",
		Version:   getEnvOrDefault("SERVICE_VERSION", "1.0.0"),
	}

	if h.store != nil {
		if err := h.store.Ping(r.Context()); err != nil {
			response.Database = "disconnected"
			response.Status = "degraded"
		} else {
			response.Database = "connected"
		}
	} else {
		response.Database = "not configured"
	}

	statusCode := http.StatusOK
	if response.Status != "healthy" {
		statusCode = http.StatusServiceUnavailable
	}

	writeJSON(w, statusCode, response)
}

// getEnvOrDefault returns environment variable or default value.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
