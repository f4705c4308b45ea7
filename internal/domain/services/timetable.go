package services

import (
	"context"

	"classboard/internal/domain/models"
)

// TimetableInput is the create/update payload for timetable entries.
type TimetableInput struct {
	Day       string `json:"day"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Subject   string `json:"subject"`
	Room      string `json:"room"`
}

// TimetableService manages the weekly class timetable.
type TimetableService interface {
	List(ctx context.Context) ([]models.TimetableEntry, error)
	Create(ctx context.Context, in *TimetableInput) (*models.TimetableEntry, error)
	Update(ctx context.Context, id string, in *TimetableInput) (*models.TimetableEntry, error)
	Delete(ctx context.Context, id string) error
}
