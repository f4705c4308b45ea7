package repositories

import (
	"context"

	"classboard/internal/domain/models"
)

// AnnouncementRepository persists dashboard announcements.
type AnnouncementRepository interface {
	Create(ctx context.Context, a *models.Announcement) error
	GetByID(ctx context.Context, id string) (*models.Announcement, error)
	Update(ctx context.Context, a *models.Announcement) error
	Delete(ctx context.Context, id string) error
	// List returns all announcements, newest first.
	List(ctx context.Context) ([]models.Announcement, error)
}
