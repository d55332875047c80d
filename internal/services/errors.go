package services

import (
	"errors"

	"github.com/sbilibin2017/gw-private-chat/internal/repositories"
)

// Error variables
var (
	ErrDuplicateUsername = errors.New("username already exists")
	ErrDuplicateEmail    = errors.New("email already exists")
	ErrUserNotFound      = errors.New("user not found")
	ErrIncorrectPassword = errors.New("incorrect password")
	ErrInvalidFileType   = errors.New("only image files are allowed")
	ErrMissingField      = repositories.ErrMissingField
)
