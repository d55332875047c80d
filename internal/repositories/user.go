package repositories

import (
	"context"

	"github.com/sbilibin2017/gw-private-chat/internal/jsonfile"
	"github.com/sbilibin2017/gw-private-chat/internal/logger"
	"github.com/sbilibin2017/gw-private-chat/internal/models"
)

// UsersFileName is the name of the user store inside the data directory.
const UsersFileName = "users.json"

// UserFileRepository persists all user records as one JSON array.
type UserFileRepository struct {
	file *jsonfile.File[[]models.UserRecord]
}

// NewUserFileRepository opens the user store at path, creating an empty one
// if it is missing.
func NewUserFileRepository(path string) (*UserFileRepository, error) {
	file := jsonfile.New(path, func() []models.UserRecord { return []models.UserRecord{} })
	if err := file.Init(); err != nil {
		return nil, err
	}
	return &UserFileRepository{file: file}, nil
}

// List returns every stored record. An unreadable store reads as empty.
func (r *UserFileRepository) List(ctx context.Context) ([]models.UserRecord, error) {
	users := r.file.Load()
	if users == nil {
		users = []models.UserRecord{}
	}

	logger.Log.Debugw("users loaded", "path", r.file.Path(), "count", len(users))

	return users, nil
}

// Update runs fn on the full record list and persists its result. The whole
// cycle holds the store lock, so concurrent updates are applied one by one.
func (r *UserFileRepository) Update(ctx context.Context, fn func([]models.UserRecord) ([]models.UserRecord, error)) error {
	err := r.file.Update(func(users []models.UserRecord) ([]models.UserRecord, error) {
		if users == nil {
			users = []models.UserRecord{}
		}
		return fn(users)
	})

	logger.Log.Debugw("users updated", "path", r.file.Path(), "error", err)

	return err
}
