// Package handlers provides the HTTP handlers for the notebook relay service.
package handlers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"notebook-relay/internal/config"
	"notebook-relay/internal/models"
	"notebook-relay/internal/services/status"
	"notebook-relay/internal/services/storage"
	"notebook-relay/internal/services/webhook"
	"notebook-relay/internal/utils"
)

// DocumentHandler relays document processing requests to the automation
// webhook and records failures on the source's status record.
type DocumentHandler struct {
	cfg   *config.Config
	store status.Store
	relay *webhook.Client
	files storage.FileURLResolver
}

// NewDocumentHandler creates a new document processing handler.
func NewDocumentHandler(cfg *config.Config, store status.Store, relay *webhook.Client, files storage.FileURLResolver) *DocumentHandler {
	return &DocumentHandler{cfg: cfg, store: store, relay: relay, files: files}
}

// ProcessDocumentRequest is the request body for document processing.
type ProcessDocumentRequest struct {
	SourceID   string `json:"source_id"`
	FilePath   string `json:"file_path"`
	SourceType string `json:"source_type"`
}

// missingFields lists the required fields absent from the request.
func (r *ProcessDocumentRequest) missingFields() []string {
	var missing []string
	if r.SourceID == "" {
		missing = append(missing, "source_id")
	}
	if r.FilePath == "" {
		missing = append(missing, "file_path")
	}
	if r.SourceType == "" {
		missing = append(missing, "source_type")
	}
	return missing
}

// ProcessDocumentResponse is the success response for document processing.
type ProcessDocumentResponse struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Result  json.RawMessage `json:"result,omitempty"`
}

// ServeHTTP processes a document relay request. Control flow is strictly
// linear: validate input, validate config, build payload, perform the
// outbound call, classify the outcome. Every failure past input validation
// writes the failed status exactly once before responding.
func (h *DocumentHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	logger := utils.GetLogger()
	requestID := uuid.New().String()[:8]

	setCORSHeaders(w)
	if handlePreflight(w, r) {
		return
	}
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Failed to read request body")
		return
	}

	// Last-resort catch: mark the source failed if its id can still be
	// recovered from the buffered body, then answer with a generic 500.
	defer func() {
		if rec := recover(); rec != nil {
			logger.Error("Unexpected failure in document handler",
				utils.String("requestID", requestID),
				utils.Any("panic", rec))
			if sourceID, ok := recoverSourceID(body); ok {
				h.failSource(r.Context(), sourceID, "Internal error during document processing")
			}
			writeError(w, http.StatusInternalServerError, "Internal server error")
		}
	}()

	var req ProcessDocumentRequest
	if err := json.Unmarshal(body, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON in request body")
		return
	}

	// Short-circuit before any webhook or status-record concern.
	if missing := req.missingFields(); len(missing) > 0 {
		writeError(w, http.StatusBadRequest, "Missing required fields: "+strings.Join(missing, ", "))
		return
	}

	result, err := h.relayDocument(r.Context(), &req)
	if err != nil {
		logger.Error("Document relay failed",
			utils.String("requestID", requestID),
			utils.String("sourceID", req.SourceID),
			utils.String("kind", string(models.KindOf(err))),
			utils.Error(err))
		h.failSource(r.Context(), req.SourceID, err.Error())
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	logger.Info("Document processing initiated",
		utils.String("requestID", requestID),
		utils.String("sourceID", req.SourceID),
		utils.String("sourceType", req.SourceType))

	writeJSON(w, http.StatusOK, ProcessDocumentResponse{
		Success: true,
		Message: "Document processing initiated",
		Result:  result,
	})
}

// relayDocument validates the configuration, builds the outbound payload
// and performs the webhook call. The returned error message carries the
// diagnostic detail that is both persisted and sent to the caller.
func (h *DocumentHandler) relayDocument(ctx context.Context, req *ProcessDocumentRequest) (json.RawMessage, error) {
	webhookURL, err := h.cfg.RequireDocumentWebhook()
	if err != nil {
		return nil, err
	}

	fileURL, err := h.files.Resolve(ctx, req.FilePath)
	if err != nil {
		return nil, err
	}

	payload := map[string]interface{}{
		"source_id":    req.SourceID,
		"file_url":     fileURL,
		"file_path":    req.FilePath,
		"source_type":  req.SourceType,
		"callback_url": h.cfg.CallbackURL(),
	}

	resp, err := h.relay.PostJSON(ctx, webhookURL, payload, h.cfg.GenerationAuthToken)
	if err != nil {
		return nil, err
	}

	return resp.JSON, nil
}

// failSource is the single status-write site for this handler. The write
// is best-effort: a store failure is logged and never replaces the
// original error response.
func (h *DocumentHandler) failSource(ctx context.Context, sourceID, message string) {
	logger := utils.GetLogger()

	if h.store == nil {
		logger.Warn("Status store not configured; skipping failed-status write",
			utils.String("sourceID", sourceID))
		return
	}

	if err := h.store.MarkFailed(ctx, sourceID, message); err != nil {
		logger.Error("Failed to write failed status",
			utils.String("sourceID", sourceID),
			utils.Error(err))
	}
}

// recoverSourceID re-decodes the buffered request body to extract the
// source id for the recovery status write. Explicitly fallible; callers
// skip the write when it reports false.
func recoverSourceID(body []byte) (string, bool) {
	var probe struct {
		SourceID string `json:"source_id"`
	}
	if err := json.Unmarshal(body, &probe); err != nil || probe.SourceID == "" {
		return "", false
	}
	return probe.SourceID, true
}
