package apperrors

import (
	"errors"
)

var (
	ErrUserAlreadyExists = errors.New("user already exists")
	ErrUserNotFound      = errors.New("user not found")

	ErrAnnouncementNotFound     = errors.New("announcement not found")
	ErrAnnouncementOwnerMissing = errors.New("user does not exist")

	ErrInvalidCredentials = errors.New("invalid credentials")
)
