package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/nkiryanov/boardsvc/internal/apperrors"
	"github.com/nkiryanov/boardsvc/internal/models"
	"github.com/nkiryanov/boardsvc/internal/repository"
)

// Fields to change on PATCH
// Nil field means "leave as is", so empty params is a valid no-op
type UpdateUserParams struct {
	Name     *string
	Password *string
}

type UserService struct {
	hasher  PasswordHasher
	storage repository.Storage
}

func NewService(hasher PasswordHasher, storage repository.Storage) *UserService {
	if hasher == nil {
		hasher = DefaultHasher
	}

	return &UserService{
		hasher:  hasher,
		storage: storage,
	}
}

func (s *UserService) CreateUser(ctx context.Context, name string, password string) (models.User, error) {
	var user models.User
	hash, err := s.hasher.Hash(password)
	if err != nil {
		return user, fmt.Errorf("can't use this as password, Err: %w", err)
	}

	user, err = s.storage.User().CreateUser(ctx, name, hash)
	if err != nil {
		return user, fmt.Errorf("can't create user. Err: %w", err)
	}

	return user, nil
}

func (s *UserService) GetUserByID(ctx context.Context, id int64) (models.User, error) {
	user, err := s.storage.User().GetUserByID(ctx, id)
	if err != nil {
		return user, fmt.Errorf("can't get user. Err: %w", err)
	}

	return user, nil
}

func (s *UserService) UpdateUser(ctx context.Context, id int64, params UpdateUserParams) (models.User, error) {
	repoParams := repository.UpdateUserParams{Name: params.Name}

	if params.Password != nil {
		hash, err := s.hasher.Hash(*params.Password)
		if err != nil {
			return models.User{}, fmt.Errorf("can't use this as password, Err: %w", err)
		}
		repoParams.PasswordHash = &hash
	}

	user, err := s.storage.User().UpdateUser(ctx, id, repoParams)
	if err != nil {
		return user, fmt.Errorf("can't update user. Err: %w", err)
	}

	return user, nil
}

func (s *UserService) DeleteUser(ctx context.Context, id int64) error {
	err := s.storage.User().DeleteUser(ctx, id)
	if err != nil {
		return fmt.Errorf("can't delete user. Err: %w", err)
	}

	return nil
}

// Login returns the user if name and password match
// Unknown name and wrong password are indistinguishable for the caller
func (s *UserService) Login(ctx context.Context, name string, password string) (models.User, error) {
	user, err := s.storage.User().GetUserByName(ctx, name)

	switch {
	case err == nil:
	case errors.Is(err, apperrors.ErrUserNotFound):
		return user, apperrors.ErrInvalidCredentials
	default:
		return user, fmt.Errorf("can't get user. Err: %w", err)
	}

	if err := s.hasher.Compare(user.PasswordHash, password); err != nil {
		return models.User{}, apperrors.ErrInvalidCredentials
	}

	return user, nil
}
