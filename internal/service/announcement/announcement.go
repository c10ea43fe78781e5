package announcement

import (
	"context"
	"fmt"

	"github.com/nkiryanov/boardsvc/internal/models"
	"github.com/nkiryanov/boardsvc/internal/repository"
)

type AnnouncementService struct {
	storage repository.Storage
}

func NewService(storage repository.Storage) *AnnouncementService {
	return &AnnouncementService{storage: storage}
}

func (s *AnnouncementService) CreateAnnouncement(ctx context.Context, params repository.CreateAnnouncementParams) (models.Announcement, error) {
	ann, err := s.storage.Announcement().CreateAnnouncement(ctx, params)
	if err != nil {
		return ann, fmt.Errorf("can't create announcement. Err: %w", err)
	}

	return ann, nil
}

func (s *AnnouncementService) GetAnnouncementByID(ctx context.Context, id int64) (models.Announcement, error) {
	ann, err := s.storage.Announcement().GetAnnouncementByID(ctx, id)
	if err != nil {
		return ann, fmt.Errorf("can't get announcement. Err: %w", err)
	}

	return ann, nil
}

// UpdateAnnouncement applies present fields only
// Fetch and update run in one transaction so a concurrent delete can't
// produce a half-applied patch
func (s *AnnouncementService) UpdateAnnouncement(ctx context.Context, id int64, params repository.UpdateAnnouncementParams) (models.Announcement, error) {
	var ann models.Announcement

	err := s.storage.InTx(ctx, func(storage repository.Storage) error {
		var err error

		_, err = storage.Announcement().GetAnnouncementByID(ctx, id)
		if err != nil {
			return err
		}

		ann, err = storage.Announcement().UpdateAnnouncement(ctx, id, params)
		return err
	})
	if err != nil {
		return ann, fmt.Errorf("can't update announcement. Err: %w", err)
	}

	return ann, nil
}

func (s *AnnouncementService) DeleteAnnouncement(ctx context.Context, id int64) error {
	err := s.storage.Announcement().DeleteAnnouncement(ctx, id)
	if err != nil {
		return fmt.Errorf("can't delete announcement. Err: %w", err)
	}

	return nil
}
