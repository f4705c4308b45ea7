package bulletin

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

type fakeAnnouncementRepo struct {
	items  map[string]*models.Announcement
	nextID int
}

func (r *fakeAnnouncementRepo) Create(ctx context.Context, a *models.Announcement) error {
	r.nextID++
	a.ID = fmt.Sprintf("a%d", r.nextID)
	stored := *a
	r.items[a.ID] = &stored
	return nil
}

func (r *fakeAnnouncementRepo) GetByID(ctx context.Context, id string) (*models.Announcement, error) {
	a, ok := r.items[id]
	if !ok {
		return nil, fmt.Errorf("announcement %s: %w", id, domain.ErrNotFound)
	}
	clone := *a
	return &clone, nil
}

func (r *fakeAnnouncementRepo) Update(ctx context.Context, a *models.Announcement) error {
	if _, ok := r.items[a.ID]; !ok {
		return fmt.Errorf("announcement %s: %w", a.ID, domain.ErrNotFound)
	}
	stored := *a
	r.items[a.ID] = &stored
	return nil
}

func (r *fakeAnnouncementRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.items[id]; !ok {
		return fmt.Errorf("announcement %s: %w", id, domain.ErrNotFound)
	}
	delete(r.items, id)
	return nil
}

func (r *fakeAnnouncementRepo) List(ctx context.Context) ([]models.Announcement, error) {
	var out []models.Announcement
	for _, a := range r.items {
		out = append(out, *a)
	}
	return out, nil
}

type fakeNotificationRepo struct {
	items  map[string]*models.Notification
	nextID int
}

func (r *fakeNotificationRepo) Create(ctx context.Context, n *models.Notification) error {
	r.nextID++
	n.ID = fmt.Sprintf("n%d", r.nextID)
	stored := *n
	r.items[n.ID] = &stored
	return nil
}

func (r *fakeNotificationRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.items[id]; !ok {
		return fmt.Errorf("notification %s: %w", id, domain.ErrNotFound)
	}
	delete(r.items, id)
	return nil
}

func (r *fakeNotificationRepo) List(ctx context.Context) ([]models.Notification, error) {
	var out []models.Notification
	for _, n := range r.items {
		out = append(out, *n)
	}
	return out, nil
}

func newTestService() services.BulletinService {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewService(
		&fakeAnnouncementRepo{items: map[string]*models.Announcement{}},
		&fakeNotificationRepo{items: map[string]*models.Notification{}},
		logger,
	)
}

func TestCreateAnnouncement_DefaultsToNormalPriority(t *testing.T) {
	svc := newTestService()

	a, err := svc.CreateAnnouncement(context.Background(), &services.AnnouncementInput{
		Title:   "  Mid-term schedule  ",
		Content: "Exams start on the 15th.",
	})
	if err != nil {
		t.Fatalf("CreateAnnouncement failed: %v", err)
	}
	if a.Priority != models.PriorityNormal {
		t.Errorf("expected default priority %q, got %q", models.PriorityNormal, a.Priority)
	}
	if a.Title != "Mid-term schedule" {
		t.Errorf("expected trimmed title, got %q", a.Title)
	}
}

func TestCreateAnnouncement_Validation(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	tests := []struct {
		name string
		in   services.AnnouncementInput
	}{
		{"missing title", services.AnnouncementInput{Content: "body"}},
		{"missing content", services.AnnouncementInput{Title: "title"}},
		{"unknown priority", services.AnnouncementInput{Title: "title", Content: "body", Priority: "Critical"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			in := tc.in
			if _, err := svc.CreateAnnouncement(ctx, &in); !errors.Is(err, domain.ErrValidation) {
				t.Errorf("expected validation error, got %v", err)
			}
		})
	}
}

func TestUpdateAnnouncement(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	a, err := svc.CreateAnnouncement(ctx, &services.AnnouncementInput{Title: "t", Content: "c"})
	if err != nil {
		t.Fatalf("CreateAnnouncement failed: %v", err)
	}

	updated, err := svc.UpdateAnnouncement(ctx, a.ID, &services.AnnouncementInput{
		Title:    "t2",
		Content:  "c2",
		Priority: models.PriorityUrgent,
	})
	if err != nil {
		t.Fatalf("UpdateAnnouncement failed: %v", err)
	}
	if updated.Title != "t2" || updated.Priority != models.PriorityUrgent {
		t.Errorf("update not applied: %+v", updated)
	}

	_, err = svc.UpdateAnnouncement(ctx, "missing", &services.AnnouncementInput{Title: "t", Content: "c"})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected not found, got %v", err)
	}
}

func TestCreateNotification_DefaultsToInfo(t *testing.T) {
	svc := newTestService()

	n, err := svc.CreateNotification(context.Background(), &services.NotificationInput{
		Title:   "Library closed",
		Message: "Closed this Saturday.",
	})
	if err != nil {
		t.Fatalf("CreateNotification failed: %v", err)
	}
	if n.Type != models.NotificationInfo {
		t.Errorf("expected default type %q, got %q", models.NotificationInfo, n.Type)
	}
}

func TestCreateNotification_RejectsUnknownType(t *testing.T) {
	svc := newTestService()

	_, err := svc.CreateNotification(context.Background(), &services.NotificationInput{
		Title:   "t",
		Message: "m",
		Type:    "shout",
	})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestLists_EmptyAreEmptySlices(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	announcements, err := svc.ListAnnouncements(ctx)
	if err != nil || announcements == nil {
		t.Errorf("expected empty announcement slice, got %v (err %v)", announcements, err)
	}

	notifications, err := svc.ListNotifications(ctx)
	if err != nil || notifications == nil {
		t.Errorf("expected empty notification slice, got %v (err %v)", notifications, err)
	}
}
