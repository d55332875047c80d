package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/sbilibin2017/gw-private-chat/internal/logger"
	"github.com/sbilibin2017/gw-private-chat/internal/services"
)

// ErrorResponse is returned, with HTTP 200, for every failed request.
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Always false
	// default: false
	Success bool `json:"success"`

	// Human readable reason
	// default: User not found
	Message string `json:"message"`
}

// SuccessResponse is returned by operations without a payload.
// swagger:model SuccessResponse
type SuccessResponse struct {
	// Always true
	// default: true
	Success bool `json:"success"`

	// Human readable result
	// default: Password changed successfully
	Message string `json:"message,omitempty"`
}

// writeJSON writes v with HTTP 200. Errors are reported in the body, not the status.
func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.Errorw("failed to encode response", "err", err)
	}
}

func writeError(w http.ResponseWriter, message string) {
	writeJSON(w, ErrorResponse{Success: false, Message: message})
}

// writeServiceError maps a service error to its client message.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrUserNotFound):
		writeError(w, "User not found")
	case errors.Is(err, services.ErrIncorrectPassword):
		writeError(w, "Incorrect password")
	case errors.Is(err, services.ErrDuplicateUsername):
		writeError(w, "Username already exists")
	case errors.Is(err, services.ErrDuplicateEmail):
		writeError(w, "Email already exists")
	case errors.Is(err, services.ErrMissingField):
		writeError(w, "All fields are required")
	case errors.Is(err, services.ErrInvalidFileType):
		writeError(w, "Only image files are allowed!")
	default:
		logger.Log.Errorw("internal server error", "err", err)
		writeError(w, "Server error")
	}
}

// decodeJSON reads the request body into v. An empty body leaves v zero so
// the handler's own missing-field checks apply.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil && !errors.Is(err, io.EOF) {
		logger.Log.Warnw("failed to decode request body", "uri", r.RequestURI, "err", err)
		writeError(w, "Invalid request body")
		return false
	}
	return true
}
