// Package presence tracks which users sent a heartbeat recently.
package presence

import (
	"time"

	"github.com/sbilibin2017/gw-private-chat/internal/models"
)

// DefaultWindow is how long a heartbeat keeps a user online.
const DefaultWindow = 120 * time.Second

func annotate(users []models.User, online map[string]struct{}) []models.UserWithStatus {
	result := make([]models.UserWithStatus, 0, len(users))
	for _, u := range users {
		_, ok := online[u.ID]
		result = append(result, models.UserWithStatus{User: u, IsOnline: ok})
	}
	return result
}
