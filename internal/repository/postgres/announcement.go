package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/nkiryanov/boardsvc/internal/apperrors"
	"github.com/nkiryanov/boardsvc/internal/models"
	"github.com/nkiryanov/boardsvc/internal/repository"
)

type AnnouncementRepo struct {
	DB DBTX
}

const createAnnouncement = `-- name: createAnnouncement
INSERT INTO announcements (title, description, user_id)
VALUES ($1, $2, $3)
RETURNING id, title, description, created_on, user_id
`

func (r *AnnouncementRepo) CreateAnnouncement(ctx context.Context, params repository.CreateAnnouncementParams) (models.Announcement, error) {
	rows, _ := r.DB.Query(ctx, createAnnouncement, params.Title, params.Description, params.UserID)
	ann, err := pgx.CollectOneRow(rows, rowToAnnouncement)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation {
			return ann, apperrors.ErrAnnouncementOwnerMissing
		}

		return ann, fmt.Errorf("db error: %w", err)
	}

	return ann, nil
}

const getAnnouncementByID = `-- name: getAnnouncementByID
SELECT id, title, description, created_on, user_id FROM announcements
WHERE id = $1
`

func (r *AnnouncementRepo) GetAnnouncementByID(ctx context.Context, id int64) (models.Announcement, error) {
	rows, _ := r.DB.Query(ctx, getAnnouncementByID, id)
	ann, err := pgx.CollectOneRow(rows, rowToAnnouncement)

	switch {
	case err == nil:
		return ann, nil
	case errors.Is(err, pgx.ErrNoRows):
		return ann, apperrors.ErrAnnouncementNotFound
	default:
		return ann, fmt.Errorf("db error: %w", err)
	}
}

const updateAnnouncement = `-- name: updateAnnouncement
UPDATE announcements
SET title       = COALESCE($2, title),
    description = COALESCE($3, description),
    user_id     = COALESCE($4, user_id)
WHERE id = $1
RETURNING id, title, description, created_on, user_id
`

func (r *AnnouncementRepo) UpdateAnnouncement(ctx context.Context, id int64, params repository.UpdateAnnouncementParams) (models.Announcement, error) {
	rows, _ := r.DB.Query(ctx, updateAnnouncement, id, params.Title, params.Description, params.UserID)
	ann, err := pgx.CollectOneRow(rows, rowToAnnouncement)

	switch {
	case err == nil:
		return ann, nil
	case errors.Is(err, pgx.ErrNoRows):
		return ann, apperrors.ErrAnnouncementNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation {
		return ann, apperrors.ErrAnnouncementOwnerMissing
	}

	return ann, fmt.Errorf("db error: %w", err)
}

const deleteAnnouncement = `-- name: deleteAnnouncement
DELETE FROM announcements
WHERE id = $1
`

func (r *AnnouncementRepo) DeleteAnnouncement(ctx context.Context, id int64) error {
	tag, err := r.DB.Exec(ctx, deleteAnnouncement, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return apperrors.ErrAnnouncementNotFound
	}

	return nil
}

func rowToAnnouncement(row pgx.CollectableRow) (models.Announcement, error) {
	var a models.Announcement
	err := row.Scan(&a.ID, &a.Title, &a.Description, &a.CreatedOn, &a.UserID)
	return a, err
}
