package handlers

//go:generate mockgen -source=login.go -destination=login_mock.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-private-chat/internal/models"
)

// Authenticator defines the interface that the login service must implement.
type Authenticator interface {
	Authenticate(ctx context.Context, login, password string) (*models.User, error)
}

// LoginRequest represents the JSON body for user login
// swagger:model LoginRequest
type LoginRequest struct {
	// Username or email
	// required: true
	// default: alice
	Username string `json:"username"`

	// Password
	// required: true
	// default: secret123
	Password string `json:"password"`
}

// UserResponse represents a successful response carrying a user
// swagger:model UserResponse
type UserResponse struct {
	// Always true
	// default: true
	Success bool `json:"success"`

	// Result message
	// default: Login successful
	Message string `json:"message,omitempty"`

	// User without password
	User *models.User `json:"user"`
}

// NewLoginHandler returns an HTTP handler for user login.
// @Summary User login
// @Description Authenticate by username or email. Failures are reported with HTTP 200 and success=false.
// @Tags auth
// @Accept json
// @Produce json
// @Param loginRequest body handlers.LoginRequest true "Login Request"
// @Success 200 {object} handlers.UserResponse "Login successful"
// @Failure default {object} handlers.ErrorResponse "Missing fields, user not found or incorrect password"
// @Router /login [post]
func NewLoginHandler(svc Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		if req.Username == "" || req.Password == "" {
			writeError(w, "Username and password are required")
			return
		}

		user, err := svc.Authenticate(r.Context(), req.Username, req.Password)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, UserResponse{
			Success: true,
			Message: "Login successful",
			User:    user,
		})
	}
}
