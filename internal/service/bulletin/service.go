package bulletin

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"classboard/internal/domain"
	"classboard/internal/domain/models"
	"classboard/internal/domain/repositories"
	"classboard/internal/domain/services"
)

type bulletinService struct {
	announcements repositories.AnnouncementRepository
	notifications repositories.NotificationRepository
	logger        *slog.Logger
}

// NewService creates the announcements/notifications service.
func NewService(
	announcements repositories.AnnouncementRepository,
	notifications repositories.NotificationRepository,
	logger *slog.Logger,
) services.BulletinService {
	return &bulletinService{
		announcements: announcements,
		notifications: notifications,
		logger:        logger,
	}
}

func (s *bulletinService) ListAnnouncements(ctx context.Context) ([]models.Announcement, error) {
	announcements, err := s.announcements.List(ctx)
	if err != nil {
		return nil, err
	}
	if announcements == nil {
		announcements = []models.Announcement{}
	}
	return announcements, nil
}

func (s *bulletinService) CreateAnnouncement(ctx context.Context, in *services.AnnouncementInput) (*models.Announcement, error) {
	if err := validateAnnouncement(in); err != nil {
		return nil, err
	}

	a := &models.Announcement{
		Title:    in.Title,
		Content:  in.Content,
		Priority: in.Priority,
		Date:     in.Date,
		Deadline: in.Deadline,
	}

	if err := s.announcements.Create(ctx, a); err != nil {
		return nil, err
	}

	s.logger.Info("announcement created", "id", a.ID, "title", a.Title, "priority", a.Priority)

	return a, nil
}

func (s *bulletinService) UpdateAnnouncement(ctx context.Context, id string, in *services.AnnouncementInput) (*models.Announcement, error) {
	if err := validateAnnouncement(in); err != nil {
		return nil, err
	}

	a, err := s.announcements.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	a.Title = in.Title
	a.Content = in.Content
	a.Priority = in.Priority
	a.Date = in.Date
	a.Deadline = in.Deadline

	if err := s.announcements.Update(ctx, a); err != nil {
		return nil, err
	}

	return a, nil
}

func (s *bulletinService) DeleteAnnouncement(ctx context.Context, id string) error {
	return s.announcements.Delete(ctx, id)
}

func (s *bulletinService) ListNotifications(ctx context.Context) ([]models.Notification, error) {
	notifications, err := s.notifications.List(ctx)
	if err != nil {
		return nil, err
	}
	if notifications == nil {
		notifications = []models.Notification{}
	}
	return notifications, nil
}

func (s *bulletinService) CreateNotification(ctx context.Context, in *services.NotificationInput) (*models.Notification, error) {
	in.Title = strings.TrimSpace(in.Title)
	if in.Type == "" {
		in.Type = models.NotificationInfo
	}

	if err := validation.ValidateStruct(in,
		validation.Field(&in.Title, validation.Required),
		validation.Field(&in.Message, validation.Required),
		validation.Field(&in.Type, validation.In(
			models.NotificationInfo, models.NotificationWarning, models.NotificationAlert,
		)),
	); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	n := &models.Notification{
		Title:   in.Title,
		Message: in.Message,
		Type:    in.Type,
	}

	if err := s.notifications.Create(ctx, n); err != nil {
		return nil, err
	}

	s.logger.Info("notification created", "id", n.ID, "title", n.Title, "type", n.Type)

	return n, nil
}

func (s *bulletinService) DeleteNotification(ctx context.Context, id string) error {
	return s.notifications.Delete(ctx, id)
}

func validateAnnouncement(in *services.AnnouncementInput) error {
	in.Title = strings.TrimSpace(in.Title)
	if in.Priority == "" {
		in.Priority = models.PriorityNormal
	}

	if err := validation.ValidateStruct(in,
		validation.Field(&in.Title, validation.Required),
		validation.Field(&in.Content, validation.Required),
		validation.Field(&in.Priority, validation.In(
			models.PriorityNormal, models.PriorityImportant, models.PriorityUrgent,
		)),
	); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	return nil
}
