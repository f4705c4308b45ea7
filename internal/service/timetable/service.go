package timetable

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"classboard/internal/domain"
	"classboard/internal/domain/models"
	"classboard/internal/domain/repositories"
	"classboard/internal/domain/services"
)

var timePattern = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

type timetableService struct {
	entries repositories.TimetableRepository
	logger  *slog.Logger
}

// NewService creates the timetable service.
func NewService(entries repositories.TimetableRepository, logger *slog.Logger) services.TimetableService {
	return &timetableService{entries: entries, logger: logger}
}

func (s *timetableService) List(ctx context.Context) ([]models.TimetableEntry, error) {
	entries, err := s.entries.List(ctx)
	if err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []models.TimetableEntry{}
	}
	return entries, nil
}

func (s *timetableService) Create(ctx context.Context, in *services.TimetableInput) (*models.TimetableEntry, error) {
	if err := validateEntry(in); err != nil {
		return nil, err
	}

	e := &models.TimetableEntry{
		Day:       in.Day,
		StartTime: in.StartTime,
		EndTime:   in.EndTime,
		Subject:   in.Subject,
		Room:      in.Room,
	}

	if err := s.entries.Create(ctx, e); err != nil {
		return nil, err
	}

	s.logger.Info("timetable entry created", "id", e.ID, "day", e.Day, "subject", e.Subject)

	return e, nil
}

func (s *timetableService) Update(ctx context.Context, id string, in *services.TimetableInput) (*models.TimetableEntry, error) {
	if err := validateEntry(in); err != nil {
		return nil, err
	}

	e, err := s.entries.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	e.Day = in.Day
	e.StartTime = in.StartTime
	e.EndTime = in.EndTime
	e.Subject = in.Subject
	e.Room = in.Room

	if err := s.entries.Update(ctx, e); err != nil {
		return nil, err
	}

	return e, nil
}

func (s *timetableService) Delete(ctx context.Context, id string) error {
	return s.entries.Delete(ctx, id)
}

func validateEntry(in *services.TimetableInput) error {
	days := make([]interface{}, len(models.TimetableDays))
	for i, d := range models.TimetableDays {
		days[i] = d
	}

	if err := validation.ValidateStruct(in,
		validation.Field(&in.Day, validation.Required, validation.In(days...)),
		validation.Field(&in.StartTime, validation.Required, validation.Match(timePattern)),
		validation.Field(&in.EndTime, validation.Required, validation.Match(timePattern)),
		validation.Field(&in.Subject, validation.Required),
	); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	if in.EndTime <= in.StartTime {
		return fmt.Errorf("%w: end_time must be after start_time", domain.ErrValidation)
	}

	return nil
}
