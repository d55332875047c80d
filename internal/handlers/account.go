package handlers

//go:generate mockgen -source=account.go -destination=account_mock.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// AccountDeleter removes a user account.
type AccountDeleter interface {
	DeleteAccount(ctx context.Context, id, password string) error
}

// DeleteAccountRequest represents the JSON body for account deletion
// swagger:model DeleteAccountRequest
type DeleteAccountRequest struct {
	// Current password
	// required: true
	Password string `json:"password"`
}

// NewDeleteAccountHandler returns an HTTP handler for account deletion.
// @Summary Delete account
// @Description Removes the user, its profile picture and its online status.
// @Tags users
// @Accept json
// @Produce json
// @Param userId path string true "User ID"
// @Param deleteAccountRequest body handlers.DeleteAccountRequest true "Password"
// @Success 200 {object} handlers.SuccessResponse
// @Failure default {object} handlers.ErrorResponse "Missing field, incorrect password, user not found"
// @Router /users/{userId} [delete]
func NewDeleteAccountHandler(svc AccountDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := chi.URLParam(r, "userId")

		var req DeleteAccountRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		if userID == "" || req.Password == "" {
			writeError(w, "Password is required")
			return
		}

		if err := svc.DeleteAccount(r.Context(), userID, req.Password); err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, SuccessResponse{Success: true, Message: "Account deleted successfully"})
	}
}
