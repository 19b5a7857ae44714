// Package handlers provides the HTTP handlers for the notebook relay service.
package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"

	"notebook-relay/internal/config"
	"notebook-relay/internal/models"
	"notebook-relay/internal/services/webhook"
	"notebook-relay/internal/utils"
)

// ChatHandler relays chat messages to the configured chat webhook and
// returns the webhook's response to the caller.
type ChatHandler struct {
	cfg   *config.Config
	relay *webhook.Client
}

// NewChatHandler creates a new chat message relay handler.
func NewChatHandler(cfg *config.Config, relay *webhook.Client) *ChatHandler {
	return &ChatHandler{cfg: cfg, relay: relay}
}

// ChatMessageRequest is the request body for chat relay. Fields are
// forwarded as-is; absent fields pass through as empty strings.
type ChatMessageRequest struct {
	SessionID string `json:"session_id"`
	Message   string `json:"message"`
	UserID    string `json:"user_id"`
}

// ChatMessageResponse is the success response for chat relay.
type ChatMessageResponse struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
}

// chatErrorResponse carries the unified error shape with diagnostic
// config-presence flags so a misconfigured deployment is visible from the
// response alone.
type chatErrorResponse struct {
	Success           bool   `json:"success"`
	Error             string `json:"error"`
	ChatURLConfigured bool   `json:"chat_url_configured"`
	AuthConfigured    bool   `json:"auth_configured"`
	Timestamp         string `json:"timestamp"`
}

// ServeHTTP relays a chat message. All failure classes — configuration,
// URL format, transport, upstream — funnel into a single error path and
// one JSON error response.
func (h *ChatHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
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

	var req ChatMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON in request body")
		return
	}

	data, err := h.relayChat(r.Context(), &req)
	if err != nil {
		logger.Error("Chat relay failed",
			utils.String("requestID", requestID),
			utils.String("sessionID", req.SessionID),
			utils.String("kind", string(models.KindOf(err))),
			utils.Error(err))
		writeJSON(w, http.StatusInternalServerError, chatErrorResponse{
			Success:           false,
			Error:             err.Error(),
			ChatURLConfigured: h.cfg.ChatWebhookURL != "",
			AuthConfigured:    h.cfg.GenerationAuthToken != "",
			Timestamp:         time.Now().UTC().Format(time.RFC3339),
		})
		return
	}

	logger.Info("Chat message relayed",
		utils.String("requestID", requestID),
		utils.String("sessionID", req.SessionID))

	writeJSON(w, http.StatusOK, ChatMessageResponse{Success: true, Data: data})
}

// relayChat validates the configuration, builds the timestamped payload
// and performs the webhook call. Non-JSON upstream responses are
// normalized so the caller always receives valid JSON.
func (h *ChatHandler) relayChat(ctx context.Context, req *ChatMessageRequest) (json.RawMessage, error) {
	webhookURL, err := h.cfg.RequireChatWebhook()
	if err != nil {
		return nil, err
	}

	authToken, err := h.cfg.RequireChatAuth()
	if err != nil {
		return nil, err
	}

	payload := map[string]interface{}{
		"session_id": req.SessionID,
		"message":    req.Message,
		"user_id":    req.UserID,
		"timestamp":  time.Now().UTC().Format(time.RFC3339),
	}

	resp, err := h.relay.PostJSON(ctx, webhookURL, payload, authToken)
	if err != nil {
		return nil, err
	}

	if resp.JSON != nil {
		return resp.JSON, nil
	}

	// Upstream answered with plain text; wrap it so the caller still gets JSON.
	fallback, err := json.Marshal(map[string]string{"response": resp.RawBody})
	if err != nil {
		return nil, models.WrapRelayError(models.ErrorKindInternal, err, "failed to normalize webhook response")
	}
	return fallback, nil
}
