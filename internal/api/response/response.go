// Package response writes JSON bodies and the API's error envelope.
package response

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

// ErrorResponse is the body of every non-2xx response.
// Details holds a field-to-message map for validation failures, or a free-form string.
type ErrorResponse struct {
	Error   string      `json:"error"`
	Details interface{} `json:"details,omitempty"`
}

// RespondJSON writes data as JSON with the given status code.
// Encoding failures are logged; the status line has already been sent by then.
func RespondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(data); err != nil {
		zap.S().Warnw("failed to encode JSON response", "status", status, "error", err)
	}
}

// RespondNoContent writes a bodiless 204, used after deletes.
func RespondNoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

// RespondError writes an ErrorResponse. Empty string details are omitted.
//
//	response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
//	response.RespondError(w, http.StatusBadRequest, "validation failed", verr.Fields)
func RespondError(w http.ResponseWriter, status int, message string, details interface{}) {
	if s, ok := details.(string); ok && s == "" {
		details = nil
	}
	RespondJSON(w, status, ErrorResponse{
		Error:   message,
		Details: details,
	})
}
