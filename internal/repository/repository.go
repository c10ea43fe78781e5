package repository

import (
	"context"

	"github.com/nkiryanov/boardsvc/internal/models"
)

type UpdateUserParams struct {
	Name         *string
	PasswordHash *string
}

type CreateAnnouncementParams struct {
	Title       string
	Description string
	UserID      int64
}

type UpdateAnnouncementParams struct {
	Title       *string
	Description *string
	UserID      *int64
}

// User repository interface
type UserRepo interface {
	// Create user
	// If user with the same name exists already has to return apperrors.ErrUserAlreadyExists
	CreateUser(ctx context.Context, name string, passwordHash string) (models.User, error)

	// Get user by it's id or name
	// If user not found must return apperrors.ErrUserNotFound
	GetUserByID(ctx context.Context, id int64) (models.User, error)
	GetUserByName(ctx context.Context, name string) (models.User, error)

	// Update only the fields that are not nil
	// Nil fields keep their stored values untouched
	UpdateUser(ctx context.Context, id int64, params UpdateUserParams) (models.User, error)

	// Delete user and owned announcements
	DeleteUser(ctx context.Context, id int64) error
}

// Announcement repository interface
type AnnouncementRepo interface {
	// Create announcement, created_on is assigned by the database
	// If referenced user doesn't exist has to return apperrors.ErrAnnouncementOwnerMissing
	CreateAnnouncement(ctx context.Context, params CreateAnnouncementParams) (models.Announcement, error)

	// If announcement not found must return apperrors.ErrAnnouncementNotFound
	GetAnnouncementByID(ctx context.Context, id int64) (models.Announcement, error)

	// Update only the fields that are not nil, created_on is never touched
	UpdateAnnouncement(ctx context.Context, id int64, params UpdateAnnouncementParams) (models.Announcement, error)

	DeleteAnnouncement(ctx context.Context, id int64) error
}

type Storage interface {
	User() UserRepo
	Announcement() AnnouncementRepo

	// Run fn within single db transaction
	InTx(ctx context.Context, fn func(Storage) error) error
}
