package repositories

import (
	"context"

	"classboard/internal/domain/models"
)

// TimetableRepository persists the weekly timetable.
type TimetableRepository interface {
	Create(ctx context.Context, e *models.TimetableEntry) error
	GetByID(ctx context.Context, id string) (*models.TimetableEntry, error)
	Update(ctx context.Context, e *models.TimetableEntry) error
	Delete(ctx context.Context, id string) error
	// List returns all entries ordered by day then start time.
	List(ctx context.Context) ([]models.TimetableEntry, error)
}
