package handlers

//go:generate mockgen -source=password.go -destination=password_mock.go -package=handlers

import (
	"context"
	"net/http"
)

// PasswordChanger replaces a user's password.
type PasswordChanger interface {
	ChangePassword(ctx context.Context, id, currentPassword, newPassword string) error
}

// ChangePasswordRequest represents the JSON body for a password change
// swagger:model ChangePasswordRequest
type ChangePasswordRequest struct {
	// User ID
	// required: true
	UserID string `json:"userId"`

	// Current password
	// required: true
	CurrentPassword string `json:"currentPassword"`

	// New password
	// required: true
	NewPassword string `json:"newPassword"`
}

// NewChangePasswordHandler returns an HTTP handler for password changes.
// @Summary Change password
// @Tags users
// @Accept json
// @Produce json
// @Param changePasswordRequest body handlers.ChangePasswordRequest true "Passwords"
// @Success 200 {object} handlers.SuccessResponse
// @Failure default {object} handlers.ErrorResponse "Missing field, incorrect current password, user not found"
// @Router /users/password [put]
func NewChangePasswordHandler(svc PasswordChanger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ChangePasswordRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		if req.UserID == "" || req.CurrentPassword == "" || req.NewPassword == "" {
			writeError(w, "All fields are required")
			return
		}

		if err := svc.ChangePassword(r.Context(), req.UserID, req.CurrentPassword, req.NewPassword); err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, SuccessResponse{Success: true, Message: "Password changed successfully"})
	}
}
