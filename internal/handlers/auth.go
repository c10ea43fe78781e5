package handlers

import (
	"errors"
	"net/http"

	"github.com/nkiryanov/boardsvc/internal/apperrors"
	"github.com/nkiryanov/boardsvc/internal/handlers/render"
	"github.com/nkiryanov/boardsvc/internal/logger"
)

func handleLogin(userService userService, tokens tokenIssuer, l logger.Logger) http.Handler {
	type request struct {
		Name     string `json:"name" validate:"required"`
		Password string `json:"password" validate:"required"`
	}
	type response struct {
		Token string `json:"token"`
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, err := render.BindAndValidate[request](w, r)
		if err != nil {
			return
		}

		u, err := userService.Login(r.Context(), data.Name, data.Password)
		if err != nil {
			switch {
			case errors.Is(err, apperrors.ErrInvalidCredentials):
				render.Error(w, "invalid credentials", http.StatusUnauthorized)
			default:
				l.Error("Failed to login user", "error", err)
				render.Error(w, "internal server error", http.StatusInternalServerError)
			}
			return
		}

		token, err := tokens.Generate(u)
		if err != nil {
			l.Error("Failed to sign token", "error", err)
			render.Error(w, "internal server error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, response{Token: token})
	})
}
