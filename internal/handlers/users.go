package handlers

//go:generate mockgen -source=users.go -destination=users_mock.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-private-chat/internal/logger"
	"github.com/sbilibin2017/gw-private-chat/internal/models"
)

// UserLister lists users without password digests.
type UserLister interface {
	ListUsers(ctx context.Context) ([]models.User, error)
}

// OnlineUserLister lists users annotated with presence.
type OnlineUserLister interface {
	ListUsersWithStatus(ctx context.Context) ([]models.UserWithStatus, error)
}

// NewListUsersHandler returns an HTTP handler listing all users.
// @Summary List users
// @Description Returns every registered user without the password field. Errors yield an empty list.
// @Tags users
// @Produce json
// @Success 200 {array} models.User
// @Router /users [get]
func NewListUsersHandler(svc UserLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		users, err := svc.ListUsers(r.Context())
		if err != nil {
			logger.Log.Errorw("failed to list users", "err", err)
			users = []models.User{}
		}

		writeJSON(w, users)
	}
}

// NewListOnlineUsersHandler returns an HTTP handler listing users with presence.
// @Summary List users with online status
// @Description Returns every user with an isOnline flag. Heartbeats older than the presence window count as offline.
// @Tags users
// @Produce json
// @Success 200 {array} models.UserWithStatus
// @Router /users/online [get]
func NewListOnlineUsersHandler(svc OnlineUserLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		users, err := svc.ListUsersWithStatus(r.Context())
		if err != nil {
			logger.Log.Errorw("failed to list users with status", "err", err)
			users = []models.UserWithStatus{}
		}

		writeJSON(w, users)
	}
}
