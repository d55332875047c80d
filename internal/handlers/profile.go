package handlers

//go:generate mockgen -source=profile.go -destination=profile_mock.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-private-chat/internal/models"
)

// ProfileUpdater renames a user.
type ProfileUpdater interface {
	UpdateProfile(ctx context.Context, id, username, email string) (*models.User, error)
}

// UpdateProfileRequest represents the JSON body for a profile update
// swagger:model UpdateProfileRequest
type UpdateProfileRequest struct {
	// User ID
	// required: true
	UserID string `json:"userId"`

	// New username
	// required: true
	Username string `json:"username"`

	// New email
	// required: true
	Email string `json:"email"`
}

// NewUpdateProfileHandler returns an HTTP handler for profile updates.
// @Summary Update profile
// @Tags users
// @Accept json
// @Produce json
// @Param updateProfileRequest body handlers.UpdateProfileRequest true "Profile"
// @Success 200 {object} handlers.UserResponse
// @Failure default {object} handlers.ErrorResponse "Missing field, duplicate username/email, user not found"
// @Router /users/profile [put]
func NewUpdateProfileHandler(svc ProfileUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req UpdateProfileRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		if req.UserID == "" || req.Username == "" || req.Email == "" {
			writeError(w, "All fields are required")
			return
		}

		user, err := svc.UpdateProfile(r.Context(), req.UserID, req.Username, req.Email)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, UserResponse{
			Success: true,
			Message: "Profile updated successfully",
			User:    user,
		})
	}
}
