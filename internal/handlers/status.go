package handlers

//go:generate mockgen -source=status.go -destination=status_mock.go -package=handlers

import (
	"context"
	"net/http"
)

// StatusUpdater marks users online or offline.
type StatusUpdater interface {
	SetStatus(ctx context.Context, userID string, online bool) error
}

// StatusRequest represents the JSON body for a presence update
// swagger:model StatusRequest
type StatusRequest struct {
	// User ID
	// required: true
	// default: 1700000000000
	UserID string `json:"userId"`

	// true for a heartbeat, false to go offline
	// default: true
	Status bool `json:"status"`
}

// NewUpdateStatusHandler returns an HTTP handler for presence heartbeats.
// @Summary Update online status
// @Tags users
// @Accept json
// @Produce json
// @Param statusRequest body handlers.StatusRequest true "Status update"
// @Success 200 {object} handlers.SuccessResponse
// @Failure default {object} handlers.ErrorResponse "Missing userId"
// @Router /users/status [post]
func NewUpdateStatusHandler(svc StatusUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req StatusRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		if req.UserID == "" {
			writeError(w, "User ID is required")
			return
		}

		if err := svc.SetStatus(r.Context(), req.UserID, req.Status); err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, SuccessResponse{Success: true})
	}
}
