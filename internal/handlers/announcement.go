package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/nkiryanov/boardsvc/internal/apperrors"
	"github.com/nkiryanov/boardsvc/internal/handlers/render"
	"github.com/nkiryanov/boardsvc/internal/logger"
	"github.com/nkiryanov/boardsvc/internal/models"
	"github.com/nkiryanov/boardsvc/internal/repository"
)

// announcementResponse is the canonical announcement projection
type announcementResponse struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	CreatedOn   time.Time `json:"created_on"`
	UserID      int64     `json:"user_id"`
}

func toAnnouncementResponse(a models.Announcement) announcementResponse {
	return announcementResponse{
		ID:          a.ID,
		Title:       a.Title,
		Description: a.Description,
		CreatedOn:   a.CreatedOn,
		UserID:      a.UserID,
	}
}

func handleCreateAnnouncement(announcementService announcementService, l logger.Logger) http.Handler {
	// Pointer fields so a present-but-empty string passes required
	type request struct {
		Title       *string `json:"title" validate:"required,max=100"`
		Description *string `json:"description" validate:"required,max=300"`
		UserID      *int64  `json:"user_id" validate:"required"`
	}
	type response struct {
		ID int64 `json:"id"`
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, err := render.BindAndValidate[request](w, r)
		if err != nil {
			return
		}

		created, err := announcementService.CreateAnnouncement(r.Context(), repository.CreateAnnouncementParams{
			Title:       *data.Title,
			Description: *data.Description,
			UserID:      *data.UserID,
		})

		switch {
		case err == nil:
			render.JSON(w, response{ID: created.ID})
		case errors.Is(err, apperrors.ErrAnnouncementOwnerMissing):
			render.Error(w, "user does not exist", http.StatusConflict)
		default:
			l.Error("Failed to create announcement", "error", err)
			render.Error(w, "internal server error", http.StatusInternalServerError)
		}
	})
}

func handleGetAnnouncement(announcementService announcementService, l logger.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r)
		if !ok {
			render.Error(w, "announcement not found", http.StatusNotFound)
			return
		}

		ann, err := announcementService.GetAnnouncementByID(r.Context(), id)

		switch {
		case err == nil:
			render.JSON(w, toAnnouncementResponse(ann))
		case errors.Is(err, apperrors.ErrAnnouncementNotFound):
			render.Error(w, "announcement not found", http.StatusNotFound)
		default:
			l.Error("Failed to get announcement", "error", err)
			render.Error(w, "internal server error", http.StatusInternalServerError)
		}
	})
}

func handleUpdateAnnouncement(announcementService announcementService, l logger.Logger) http.Handler {
	type request struct {
		Title       *string `json:"title" validate:"omitempty,max=100"`
		Description *string `json:"description" validate:"omitempty,max=300"`
		UserID      *int64  `json:"user_id"`
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r)
		if !ok {
			render.Error(w, "announcement not found", http.StatusNotFound)
			return
		}

		data, err := render.BindAndValidate[request](w, r)
		if err != nil {
			return
		}

		updated, err := announcementService.UpdateAnnouncement(r.Context(), id, repository.UpdateAnnouncementParams{
			Title:       data.Title,
			Description: data.Description,
			UserID:      data.UserID,
		})

		switch {
		case err == nil:
			render.JSON(w, toAnnouncementResponse(updated))
		case errors.Is(err, apperrors.ErrAnnouncementNotFound):
			render.Error(w, "announcement not found", http.StatusNotFound)
		case errors.Is(err, apperrors.ErrAnnouncementOwnerMissing):
			render.Error(w, "user does not exist", http.StatusConflict)
		default:
			l.Error("Failed to update announcement", "error", err)
			render.Error(w, "internal server error", http.StatusInternalServerError)
		}
	})
}

func handleDeleteAnnouncement(announcementService announcementService, l logger.Logger) http.Handler {
	type response struct {
		Status string `json:"status"`
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r)
		if !ok {
			render.Error(w, "announcement not found", http.StatusNotFound)
			return
		}

		err := announcementService.DeleteAnnouncement(r.Context(), id)

		switch {
		case err == nil:
			render.JSON(w, response{Status: "deleted"})
		case errors.Is(err, apperrors.ErrAnnouncementNotFound):
			render.Error(w, "announcement not found", http.StatusNotFound)
		default:
			l.Error("Failed to delete announcement", "error", err)
			render.Error(w, "internal server error", http.StatusInternalServerError)
		}
	})
}
