package handlers

import (
	"errors"
	"net/http"

	"github.com/nkiryanov/boardsvc/internal/apperrors"
	"github.com/nkiryanov/boardsvc/internal/handlers/render"
	"github.com/nkiryanov/boardsvc/internal/logger"
	"github.com/nkiryanov/boardsvc/internal/service/user"
)

// userResponse is the canonical user projection
// Password hash never leaves the service
type userResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func handleCreateUser(userService userService, l logger.Logger) http.Handler {
	type request struct {
		Name     string `json:"name" validate:"required,max=64"`
		Password string `json:"password" validate:"required,min=8"`
	}
	type response struct {
		ID int64 `json:"id"`
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, err := render.BindAndValidate[request](w, r)
		if err != nil {
			return
		}

		created, err := userService.CreateUser(r.Context(), data.Name, data.Password)

		switch {
		case err == nil:
			render.JSON(w, response{ID: created.ID})
		case errors.Is(err, apperrors.ErrUserAlreadyExists):
			render.Error(w, "user already exists", http.StatusConflict)
		default:
			l.Error("Failed to create user", "error", err)
			render.Error(w, "internal server error", http.StatusInternalServerError)
		}
	})
}

func handleGetUser(userService userService, l logger.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r)
		if !ok {
			render.Error(w, "user not found", http.StatusNotFound)
			return
		}

		u, err := userService.GetUserByID(r.Context(), id)

		switch {
		case err == nil:
			render.JSON(w, userResponse{ID: u.ID, Name: u.Name})
		case errors.Is(err, apperrors.ErrUserNotFound):
			render.Error(w, "user not found", http.StatusNotFound)
		default:
			l.Error("Failed to get user", "error", err)
			render.Error(w, "internal server error", http.StatusInternalServerError)
		}
	})
}

func handleUpdateUser(userService userService, l logger.Logger) http.Handler {
	type request struct {
		Name     *string `json:"name" validate:"omitempty,min=1,max=64"`
		Password *string `json:"password" validate:"omitempty,min=8"`
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r)
		if !ok {
			render.Error(w, "user not found", http.StatusNotFound)
			return
		}

		data, err := render.BindAndValidate[request](w, r)
		if err != nil {
			return
		}

		updated, err := userService.UpdateUser(r.Context(), id, user.UpdateUserParams{
			Name:     data.Name,
			Password: data.Password,
		})

		switch {
		case err == nil:
			render.JSON(w, userResponse{ID: updated.ID, Name: updated.Name})
		case errors.Is(err, apperrors.ErrUserNotFound):
			render.Error(w, "user not found", http.StatusNotFound)
		case errors.Is(err, apperrors.ErrUserAlreadyExists):
			render.Error(w, "user already exists", http.StatusConflict)
		default:
			l.Error("Failed to update user", "error", err)
			render.Error(w, "internal server error", http.StatusInternalServerError)
		}
	})
}

func handleDeleteUser(userService userService, l logger.Logger) http.Handler {
	type response struct {
		Status string `json:"status"`
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r)
		if !ok {
			render.Error(w, "user not found", http.StatusNotFound)
			return
		}

		err := userService.DeleteUser(r.Context(), id)

		switch {
		case err == nil:
			render.JSON(w, response{Status: "deleted"})
		case errors.Is(err, apperrors.ErrUserNotFound):
			render.Error(w, "user not found", http.StatusNotFound)
		default:
			l.Error("Failed to delete user", "error", err)
			render.Error(w, "internal server error", http.StatusInternalServerError)
		}
	})
}
