package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"classboard/internal/domain"
	"classboard/internal/domain/models"
	"classboard/internal/domain/repositories"
)

// PostgresAnnouncementRepository implements AnnouncementRepository.
type PostgresAnnouncementRepository struct {
	pool   *pgxpool.Pool
	tables *TableNames
}

// NewAnnouncementRepository creates a new announcement repository.
func NewAnnouncementRepository(config *RepositoryConfig) repositories.AnnouncementRepository {
	return &PostgresAnnouncementRepository{
		pool:   config.Pool,
		tables: config.Tables,
	}
}

// Create inserts an announcement.
func (r *PostgresAnnouncementRepository) Create(ctx context.Context, a *models.Announcement) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (title, content, priority, date, deadline)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`, r.tables.Announcements)

	err := r.pool.QueryRow(ctx, query,
		a.Title,
		a.Content,
		a.Priority,
		a.Date,
		a.Deadline,
	).Scan(&a.ID, &a.CreatedAt)

	if err != nil {
		return fmt.Errorf("create announcement: %w", err)
	}

	return nil
}

// GetByID retrieves an announcement by ID.
func (r *PostgresAnnouncementRepository) GetByID(ctx context.Context, id string) (*models.Announcement, error) {
	query := fmt.Sprintf(`
		SELECT id, title, content, priority, date, deadline, created_at
		FROM %s
		WHERE id = $1
	`, r.tables.Announcements)

	var a models.Announcement
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&a.ID,
		&a.Title,
		&a.Content,
		&a.Priority,
		&a.Date,
		&a.Deadline,
		&a.CreatedAt,
	)

	if err != nil {
		if isPgNoRowsError(err) {
			return nil, fmt.Errorf("announcement %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get announcement: %w", err)
	}

	return &a, nil
}

// Update updates an announcement.
func (r *PostgresAnnouncementRepository) Update(ctx context.Context, a *models.Announcement) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET title = $1, content = $2, priority = $3, date = $4, deadline = $5
		WHERE id = $6
	`, r.tables.Announcements)

	result, err := r.pool.Exec(ctx, query,
		a.Title,
		a.Content,
		a.Priority,
		a.Date,
		a.Deadline,
		a.ID,
	)

	if err != nil {
		return fmt.Errorf("update announcement: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("announcement %s: %w", a.ID, domain.ErrNotFound)
	}

	return nil
}

// Delete removes an announcement.
func (r *PostgresAnnouncementRepository) Delete(ctx context.Context, id string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, r.tables.Announcements)

	result, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete announcement: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("announcement %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// List returns all announcements, newest first.
func (r *PostgresAnnouncementRepository) List(ctx context.Context) ([]models.Announcement, error) {
	query := fmt.Sprintf(`
		SELECT id, title, content, priority, date, deadline, created_at
		FROM %s
		ORDER BY created_at DESC
	`, r.tables.Announcements)

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list announcements: %w", err)
	}
	defer rows.Close()

	var announcements []models.Announcement
	for rows.Next() {
		var a models.Announcement
		err := rows.Scan(
			&a.ID,
			&a.Title,
			&a.Content,
			&a.Priority,
			&a.Date,
			&a.Deadline,
			&a.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan announcement: %w", err)
		}
		announcements = append(announcements, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate announcements: %w", err)
	}

	return announcements, nil
}
