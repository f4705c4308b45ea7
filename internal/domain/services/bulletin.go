package services

import (
	"context"

	"classboard/internal/domain/models"
)

// AnnouncementInput is the create/update payload for announcements.
type AnnouncementInput struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	Priority string `json:"priority"`
	Date     string `json:"date"`
	Deadline string `json:"deadline"`
}

// NotificationInput is the create payload for notifications.
type NotificationInput struct {
	Title   string `json:"title"`
	Message string `json:"message"`
	Type    string `json:"type"`
}

// BulletinService covers the two flat dashboard feeds: announcements
// and notifications. Both list newest first.
type BulletinService interface {
	ListAnnouncements(ctx context.Context) ([]models.Announcement, error)
	CreateAnnouncement(ctx context.Context, in *AnnouncementInput) (*models.Announcement, error)
	UpdateAnnouncement(ctx context.Context, id string, in *AnnouncementInput) (*models.Announcement, error)
	DeleteAnnouncement(ctx context.Context, id string) error

	ListNotifications(ctx context.Context) ([]models.Notification, error)
	CreateNotification(ctx context.Context, in *NotificationInput) (*models.Notification, error)
	DeleteNotification(ctx context.Context, id string) error
}
