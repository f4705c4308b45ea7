package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"classboard/internal/domain"
	"classboard/internal/domain/models"
	"classboard/internal/domain/repositories"
)

// PostgresNotificationRepository implements NotificationRepository.
type PostgresNotificationRepository struct {
	pool   *pgxpool.Pool
	tables *TableNames
}

// NewNotificationRepository creates a new notification repository.
func NewNotificationRepository(config *RepositoryConfig) repositories.NotificationRepository {
	return &PostgresNotificationRepository{
		pool:   config.Pool,
		tables: config.Tables,
	}
}

// Create inserts a notification.
func (r *PostgresNotificationRepository) Create(ctx context.Context, n *models.Notification) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (title, message, type)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`, r.tables.Notifications)

	err := r.pool.QueryRow(ctx, query,
		n.Title,
		n.Message,
		n.Type,
	).Scan(&n.ID, &n.CreatedAt)

	if err != nil {
		return fmt.Errorf("create notification: %w", err)
	}

	return nil
}

// Delete removes a notification.
func (r *PostgresNotificationRepository) Delete(ctx context.Context, id string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, r.tables.Notifications)

	result, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete notification: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("notification %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// List returns all notifications, newest first.
func (r *PostgresNotificationRepository) List(ctx context.Context) ([]models.Notification, error) {
	query := fmt.Sprintf(`
		SELECT id, title, message, type, created_at
		FROM %s
		ORDER BY created_at DESC
	`, r.tables.Notifications)

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	defer rows.Close()

	var notifications []models.Notification
	for rows.Next() {
		var n models.Notification
		err := rows.Scan(
			&n.ID,
			&n.Title,
			&n.Message,
			&n.Type,
			&n.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan notification: %w", err)
		}
		notifications = append(notifications, n)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate notifications: %w", err)
	}

	return notifications, nil
}
