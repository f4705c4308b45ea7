package repositories

import (
	"context"

	"classboard/internal/domain/models"
)

// NotificationRepository persists dashboard notifications.
type NotificationRepository interface {
	Create(ctx context.Context, n *models.Notification) error
	Delete(ctx context.Context, id string) error
	// List returns all notifications, newest first.
	List(ctx context.Context) ([]models.Notification, error)
}
