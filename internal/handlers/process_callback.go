// Package handlers provides the HTTP handlers for the notebook relay service.
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"notebook-relay/internal/models"
	"notebook-relay/internal/services/status"
	"notebook-relay/internal/utils"
)

// CallbackHandler receives the automation workflow's completion report for
// a previously relayed document and writes the terminal status.
type CallbackHandler struct {
	store status.Store
}

// NewCallbackHandler creates a new processing callback handler.
func NewCallbackHandler(store status.Store) *CallbackHandler {
	return &CallbackHandler{store: store}
}

// CallbackRequest is the completion report posted by the workflow.
type CallbackRequest struct {
	SourceID     string `json:"source_id"`
	Status       string `json:"status"`
	ErrorMessage string `json:"error_message,omitempty"`
	Title        string `json:"title,omitempty"`
	Summary      string `json:"summary,omitempty"`
}

// ServeHTTP records the reported terminal status for the source.
func (h *CallbackHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	logger := utils.GetLogger()

	setCORSHeaders(w)
	if handlePreflight(w, r) {
		return
	}
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	var req CallbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON in request body")
		return
	}

	if req.SourceID == "" {
		writeError(w, http.StatusBadRequest, "Missing required field: source_id")
		return
	}

	reported := models.SourceStatus(req.Status)
	if !reported.IsTerminal() {
		writeError(w, http.StatusBadRequest, "Status must be completed or failed")
		return
	}

	if h.store == nil {
		writeError(w, http.StatusInternalServerError, "Status store not configured")
		return
	}

	var err error
	if reported == models.SourceStatusCompleted {
		err = h.store.MarkCompleted(r.Context(), req.SourceID, req.Title, req.Summary)
	} else {
		err = h.store.MarkFailed(r.Context(), req.SourceID, req.ErrorMessage)
	}

	if err != nil {
		if errors.Is(err, models.ErrSourceNotFound) {
			writeError(w, http.StatusNotFound, "Unknown source: "+req.SourceID)
			return
		}
		logger.Error("Failed to record callback status",
			utils.String("sourceID", req.SourceID),
			utils.String("status", req.Status),
			utils.Error(err))
		writeError(w, http.StatusInternalServerError, "Failed to update source status")
		return
	}

	logger.Info("Recorded processing callback",
		utils.String("sourceID", req.SourceID),
		utils.String("status", req.Status))

	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}
