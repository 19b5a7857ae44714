// Package handlers provides the HTTP handlers for the notebook relay service.
package handlers

import (
	"encoding/json"
	"net/http"

	"notebook-relay/internal/utils"
)

// setCORSHeaders attaches the permissive CORS headers every response
// carries, including error responses.
func setCORSHeaders(w http.ResponseWriter) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type,Authorization")
	w.Header().Set("Access-Control-Allow-Methods", "POST,OPTIONS")
}

// handlePreflight answers CORS preflight requests with an empty 200.
// Returns true when the request was a preflight and has been handled.
func handlePreflight(w http.ResponseWriter, r *http.Request) bool {
	if r.Method != http.MethodOptions {
		return false
	}
	w.WriteHeader(http.StatusOK)
	return true
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		utils.GetLogger().Error("Failed to encode response", utils.Error(err))
	}
}

// errorBody is the minimal JSON error envelope.
type errorBody struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// writeError writes a JSON error response.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorBody{Success: false, Error: message})
}
