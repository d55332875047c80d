package services

//go:generate mockgen -source=account.go -destination=account_mock.go -package=services

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"slices"
	"time"

	"github.com/sbilibin2017/gw-private-chat/internal/logger"
	"github.com/sbilibin2017/gw-private-chat/internal/models"
	"github.com/sbilibin2017/gw-private-chat/internal/repositories"
)

// AllowedPictureExtensions lists the accepted profile picture file extensions.
var AllowedPictureExtensions = []string{".jpg", ".jpeg", ".png", ".gif"}

// UserStore reads and rewrites the full user collection.
type UserStore interface {
	List(ctx context.Context) ([]models.UserRecord, error)
	Update(ctx context.Context, fn func([]models.UserRecord) ([]models.UserRecord, error)) error
}

// PictureStore keeps uploaded profile picture files.
type PictureStore interface {
	Save(ctx context.Context, ext string, content io.Reader) (string, error)
	Remove(ctx context.Context, ref string) error
}

// PresenceTracker records heartbeats and reports who is online.
type PresenceTracker interface {
	SetOnline(ctx context.Context, userID string) error
	SetOffline(ctx context.Context, userID string) error
	ListWithStatus(ctx context.Context, users []models.User) ([]models.UserWithStatus, error)
}

// PasswordHasher turns passwords into digests and checks them.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(digest, password string) bool
}

// IDGenerator produces unique time-derived identifiers.
type IDGenerator interface {
	Next() string
}

// AccountService handles registration, login and profile management.
type AccountService struct {
	users    UserStore
	pictures PictureStore
	presence PresenceTracker
	hasher   PasswordHasher
	ids      IDGenerator
	now      func() time.Time
}

// NewAccountService creates a new AccountService instance.
func NewAccountService(
	users UserStore,
	pictures PictureStore,
	presence PresenceTracker,
	hasher PasswordHasher,
	ids IDGenerator,
) *AccountService {
	return &AccountService{
		users:    users,
		pictures: pictures,
		presence: presence,
		hasher:   hasher,
		ids:      ids,
		now:      time.Now,
	}
}

// Register creates a new user with a unique username and email.
func (svc *AccountService) Register(ctx context.Context, username, email, password string) (*models.User, error) {
	digest, err := svc.hasher.Hash(password)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return nil, err
	}

	var created models.UserRecord
	err = svc.users.Update(ctx, func(users []models.UserRecord) ([]models.UserRecord, error) {
		if err := checkUnique(users, "", username, email); err != nil {
			return nil, err
		}

		created = models.UserRecord{
			ID:        svc.ids.Next(),
			Username:  username,
			Email:     email,
			Password:  digest,
			CreatedAt: svc.now().UTC().Format(repositories.TimestampLayout),
		}
		return append(users, created), nil
	})
	if err != nil {
		logger.Log.Errorw("failed to register user", "username", username, "email", email, "err", err)
		return nil, err
	}

	logger.Log.Infow("user registered", "user_id", created.ID, "username", username)

	user := created.Public()
	return &user, nil
}

// Authenticate finds a user by username or email and checks the password.
func (svc *AccountService) Authenticate(ctx context.Context, login, password string) (*models.User, error) {
	users, err := svc.users.List(ctx)
	if err != nil {
		logger.Log.Errorw("failed to load users", "err", err)
		return nil, err
	}

	idx := slices.IndexFunc(users, func(u models.UserRecord) bool {
		return u.Username == login || u.Email == login
	})
	if idx < 0 {
		logger.Log.Warnw("user does not exist", "login", login)
		return nil, ErrUserNotFound
	}

	if !svc.hasher.Verify(users[idx].Password, password) {
		logger.Log.Warnw("invalid credentials", "login", login)
		return nil, ErrIncorrectPassword
	}

	user := users[idx].Public()
	return &user, nil
}

// ListUsers returns every user without password digests.
func (svc *AccountService) ListUsers(ctx context.Context) ([]models.User, error) {
	users, err := svc.users.List(ctx)
	if err != nil {
		logger.Log.Errorw("failed to load users", "err", err)
		return nil, err
	}

	result := make([]models.User, 0, len(users))
	for _, u := range users {
		result = append(result, u.Public())
	}
	return result, nil
}

// ListUsersWithStatus returns every user annotated with presence.
func (svc *AccountService) ListUsersWithStatus(ctx context.Context) ([]models.UserWithStatus, error) {
	users, err := svc.ListUsers(ctx)
	if err != nil {
		return nil, err
	}
	return svc.presence.ListWithStatus(ctx, users)
}

// UpdateProfile changes the username and email of a user.
func (svc *AccountService) UpdateProfile(ctx context.Context, id, username, email string) (*models.User, error) {
	var updated models.UserRecord
	err := svc.users.Update(ctx, func(users []models.UserRecord) ([]models.UserRecord, error) {
		idx := indexByID(users, id)
		if idx < 0 {
			return nil, ErrUserNotFound
		}
		if err := checkUnique(users, id, username, email); err != nil {
			return nil, err
		}

		users[idx].Username = username
		users[idx].Email = email
		updated = users[idx]
		return users, nil
	})
	if err != nil {
		logger.Log.Errorw("failed to update profile", "user_id", id, "err", err)
		return nil, err
	}

	user := updated.Public()
	return &user, nil
}

// ChangePassword replaces the password digest after checking the current one.
func (svc *AccountService) ChangePassword(ctx context.Context, id, currentPassword, newPassword string) error {
	digest, err := svc.hasher.Hash(newPassword)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return err
	}

	err = svc.users.Update(ctx, func(users []models.UserRecord) ([]models.UserRecord, error) {
		idx := indexByID(users, id)
		if idx < 0 {
			return nil, ErrUserNotFound
		}
		if !svc.hasher.Verify(users[idx].Password, currentPassword) {
			return nil, ErrIncorrectPassword
		}

		users[idx].Password = digest
		return users, nil
	})
	if err != nil {
		logger.Log.Errorw("failed to change password", "user_id", id, "err", err)
		return err
	}

	logger.Log.Infow("password changed", "user_id", id)
	return nil
}

// DeleteAccount removes a user, its profile picture and its presence entry.
func (svc *AccountService) DeleteAccount(ctx context.Context, id, password string) error {
	var picture *string
	err := svc.users.Update(ctx, func(users []models.UserRecord) ([]models.UserRecord, error) {
		idx := indexByID(users, id)
		if idx < 0 {
			return nil, ErrUserNotFound
		}
		if !svc.hasher.Verify(users[idx].Password, password) {
			return nil, ErrIncorrectPassword
		}

		picture = users[idx].ProfilePicture
		return slices.Delete(users, idx, idx+1), nil
	})
	if err != nil {
		logger.Log.Errorw("failed to delete account", "user_id", id, "err", err)
		return err
	}

	if picture != nil {
		if err := svc.pictures.Remove(ctx, *picture); err != nil {
			logger.Log.Warnw("failed to remove profile picture", "user_id", id, "picture", *picture, "err", err)
		}
	}

	if err := svc.presence.SetOffline(ctx, id); err != nil {
		logger.Log.Warnw("failed to clear presence", "user_id", id, "err", err)
	}

	logger.Log.Infow("account deleted", "user_id", id)
	return nil
}

// UploadProfilePicture stores an uploaded image and makes it the user's
// profile picture. Only AllowedPictureExtensions are accepted, matched
// case-sensitively on the file name; the content is not inspected.
func (svc *AccountService) UploadProfilePicture(ctx context.Context, id, filename string, content io.Reader) (string, error) {
	ext := filepath.Ext(filename)
	if !slices.Contains(AllowedPictureExtensions, ext) {
		logger.Log.Warnw("rejected profile picture", "user_id", id, "filename", filename)
		return "", ErrInvalidFileType
	}

	users, err := svc.users.List(ctx)
	if err != nil {
		return "", err
	}
	if indexByID(users, id) < 0 {
		return "", ErrUserNotFound
	}

	ref, err := svc.pictures.Save(ctx, ext, content)
	if err != nil {
		logger.Log.Errorw("failed to save profile picture", "user_id", id, "err", err)
		return "", err
	}

	if _, err := svc.SetProfilePicture(ctx, id, ref); err != nil {
		if rmErr := svc.pictures.Remove(ctx, ref); rmErr != nil {
			logger.Log.Warnw("failed to remove orphaned picture", "picture", ref, "err", rmErr)
		}
		return "", err
	}

	return ref, nil
}

// SetProfilePicture points the user's profile picture at ref and deletes the
// previous picture file.
func (svc *AccountService) SetProfilePicture(ctx context.Context, id, ref string) (string, error) {
	var previous *string
	err := svc.users.Update(ctx, func(users []models.UserRecord) ([]models.UserRecord, error) {
		idx := indexByID(users, id)
		if idx < 0 {
			return nil, ErrUserNotFound
		}

		previous = users[idx].ProfilePicture
		users[idx].ProfilePicture = &ref
		return users, nil
	})
	if err != nil {
		logger.Log.Errorw("failed to set profile picture", "user_id", id, "err", err)
		return "", err
	}

	if previous != nil && *previous != ref {
		if err := svc.pictures.Remove(ctx, *previous); err != nil {
			logger.Log.Warnw("failed to remove previous picture", "user_id", id, "picture", *previous, "err", err)
		}
	}

	logger.Log.Infow("profile picture updated", "user_id", id, "picture", ref)
	return ref, nil
}

func indexByID(users []models.UserRecord, id string) int {
	return slices.IndexFunc(users, func(u models.UserRecord) bool { return u.ID == id })
}

// checkUnique reports a collision of username or email with any record other
// than the one identified by selfID.
func checkUnique(users []models.UserRecord, selfID, username, email string) error {
	for _, u := range users {
		if u.ID != selfID && u.Username == username {
			return fmt.Errorf("%w: %s", ErrDuplicateUsername, username)
		}
	}
	for _, u := range users {
		if u.ID != selfID && u.Email == email {
			return fmt.Errorf("%w: %s", ErrDuplicateEmail, email)
		}
	}
	return nil
}
