package timetable

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"classboard/internal/domain"
	"classboard/internal/domain/models"
	"classboard/internal/domain/services"
)

type fakeTimetableRepo struct {
	entries map[string]*models.TimetableEntry
	nextID  int
}

func newFakeTimetableRepo() *fakeTimetableRepo {
	return &fakeTimetableRepo{entries: map[string]*models.TimetableEntry{}}
}

func (r *fakeTimetableRepo) Create(ctx context.Context, e *models.TimetableEntry) error {
	r.nextID++
	e.ID = fmt.Sprintf("t%d", r.nextID)
	stored := *e
	r.entries[e.ID] = &stored
	return nil
}

func (r *fakeTimetableRepo) GetByID(ctx context.Context, id string) (*models.TimetableEntry, error) {
	e, ok := r.entries[id]
	if !ok {
		return nil, fmt.Errorf("timetable entry %s: %w", id, domain.ErrNotFound)
	}
	clone := *e
	return &clone, nil
}

func (r *fakeTimetableRepo) Update(ctx context.Context, e *models.TimetableEntry) error {
	if _, ok := r.entries[e.ID]; !ok {
		return fmt.Errorf("timetable entry %s: %w", e.ID, domain.ErrNotFound)
	}
	stored := *e
	r.entries[e.ID] = &stored
	return nil
}

func (r *fakeTimetableRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.entries[id]; !ok {
		return fmt.Errorf("timetable entry %s: %w", id, domain.ErrNotFound)
	}
	delete(r.entries, id)
	return nil
}

func (r *fakeTimetableRepo) List(ctx context.Context) ([]models.TimetableEntry, error) {
	var out []models.TimetableEntry
	for _, e := range r.entries {
		out = append(out, *e)
	}
	return out, nil
}

func newTestService() (services.TimetableService, *fakeTimetableRepo) {
	repo := newFakeTimetableRepo()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewService(repo, logger), repo
}

func validInput() *services.TimetableInput {
	return &services.TimetableInput{
		Day:       "Monday",
		StartTime: "09:00",
		EndTime:   "10:00",
		Subject:   "MP",
		Room:      "CS-101",
	}
}

func TestCreate(t *testing.T) {
	svc, repo := newTestService()

	e, err := svc.Create(context.Background(), validInput())
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if e.ID == "" {
		t.Error("created entry has no id")
	}
	if len(repo.entries) != 1 {
		t.Errorf("expected 1 stored entry, got %d", len(repo.entries))
	}
}

func TestCreate_Validation(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	tests := []struct {
		name   string
		mutate func(in *services.TimetableInput)
	}{
		{"unknown day", func(in *services.TimetableInput) { in.Day = "Funday" }},
		{"bad start time", func(in *services.TimetableInput) { in.StartTime = "9am" }},
		{"bad end time", func(in *services.TimetableInput) { in.EndTime = "25:00" }},
		{"missing subject", func(in *services.TimetableInput) { in.Subject = "" }},
		{"end before start", func(in *services.TimetableInput) { in.StartTime = "11:00"; in.EndTime = "10:00" }},
		{"end equals start", func(in *services.TimetableInput) { in.EndTime = in.StartTime }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			in := validInput()
			tc.mutate(in)
			if _, err := svc.Create(ctx, in); !errors.Is(err, domain.ErrValidation) {
				t.Errorf("expected validation error, got %v", err)
			}
		})
	}
}

func TestUpdate(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	e, err := svc.Create(ctx, validInput())
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	in := validInput()
	in.Subject = "CN"
	in.Room = "CS-102"
	updated, err := svc.Update(ctx, e.ID, in)
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if updated.Subject != "CN" || updated.Room != "CS-102" {
		t.Errorf("update not applied: %+v", updated)
	}

	if _, err := svc.Update(ctx, "missing", validInput()); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected not found, got %v", err)
	}
}

func TestList_EmptyIsEmptySlice(t *testing.T) {
	svc, _ := newTestService()

	entries, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if entries == nil {
		t.Fatal("expected empty slice, got nil")
	}
}
