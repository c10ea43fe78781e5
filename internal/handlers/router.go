package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/nkiryanov/boardsvc/internal/handlers/middleware"
	"github.com/nkiryanov/boardsvc/internal/logger"
	"github.com/nkiryanov/boardsvc/internal/models"
	"github.com/nkiryanov/boardsvc/internal/repository"
	"github.com/nkiryanov/boardsvc/internal/service/user"
)

// chain applies middlewares in the given order: m1(m2(...(h)))
func chain(h http.Handler, mds ...func(next http.Handler) http.Handler) http.Handler {
	for i := len(mds) - 1; i >= 0; i-- {
		h = mds[i](h)
	}
	return h
}

func NewRouter(
	userService userService,
	announcementService announcementService,
	tokens tokenIssuer,
	logger logger.Logger,
) http.Handler {
	mux := http.NewServeMux()

	// Resource paths keep their trailing slash, '{$}' pins patterns to the
	// exact path so '/user/' doesn't swallow '/user/1/'
	mux.Handle("POST /user/{$}", handleCreateUser(userService, logger))
	mux.Handle("GET /user/{id}/{$}", handleGetUser(userService, logger))
	mux.Handle("PATCH /user/{id}/{$}", handleUpdateUser(userService, logger))
	mux.Handle("DELETE /user/{id}/{$}", handleDeleteUser(userService, logger))

	mux.Handle("POST /announcement/{$}", handleCreateAnnouncement(announcementService, logger))
	mux.Handle("GET /announcement/{id}/{$}", handleGetAnnouncement(announcementService, logger))
	mux.Handle("PATCH /announcement/{id}/{$}", handleUpdateAnnouncement(announcementService, logger))
	mux.Handle("DELETE /announcement/{id}/{$}", handleDeleteAnnouncement(announcementService, logger))

	mux.Handle("POST /login/{$}", handleLogin(userService, tokens, logger))

	handler := chain(mux,
		middleware.RequestIDMiddleware(),
		middleware.LoggerMiddleware(logger),
	)

	return handler
}

// pathID parses the '{id}' path segment
// Non integer segment is treated the same as an unknown id
func pathID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

type userService interface {
	// Create user with hashed password
	// Has to return apperrors.ErrUserAlreadyExists if name is taken
	CreateUser(ctx context.Context, name string, password string) (models.User, error)

	// Has to return apperrors.ErrUserNotFound if user not found
	GetUserByID(ctx context.Context, id int64) (models.User, error)

	// Apply present fields only, re-hash password if it is present
	UpdateUser(ctx context.Context, id int64, params user.UpdateUserParams) (models.User, error)

	DeleteUser(ctx context.Context, id int64) error

	// Has to return apperrors.ErrInvalidCredentials on unknown name or wrong password
	Login(ctx context.Context, name string, password string) (models.User, error)
}

type announcementService interface {
	// Has to return apperrors.ErrAnnouncementOwnerMissing if user_id is unknown
	CreateAnnouncement(ctx context.Context, params repository.CreateAnnouncementParams) (models.Announcement, error)

	// Has to return apperrors.ErrAnnouncementNotFound if announcement not found
	GetAnnouncementByID(ctx context.Context, id int64) (models.Announcement, error)

	UpdateAnnouncement(ctx context.Context, id int64, params repository.UpdateAnnouncementParams) (models.Announcement, error)

	DeleteAnnouncement(ctx context.Context, id int64) error
}

type tokenIssuer interface {
	Generate(user models.User) (string, error)
}
