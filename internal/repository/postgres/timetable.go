package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"classboard/internal/domain"
	"classboard/internal/domain/models"
	"classboard/internal/domain/repositories"
)

// PostgresTimetableRepository implements TimetableRepository.
type PostgresTimetableRepository struct {
	pool   *pgxpool.Pool
	tables *TableNames
}

// NewTimetableRepository creates a new timetable repository.
func NewTimetableRepository(config *RepositoryConfig) repositories.TimetableRepository {
	return &PostgresTimetableRepository{
		pool:   config.Pool,
		tables: config.Tables,
	}
}

// Create inserts a timetable entry.
func (r *PostgresTimetableRepository) Create(ctx context.Context, e *models.TimetableEntry) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (day, start_time, end_time, subject, room)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`, r.tables.TimetableSlots)

	err := r.pool.QueryRow(ctx, query,
		e.Day,
		e.StartTime,
		e.EndTime,
		e.Subject,
		e.Room,
	).Scan(&e.ID)

	if err != nil {
		return fmt.Errorf("create timetable entry: %w", err)
	}

	return nil
}

// GetByID retrieves an entry by ID.
func (r *PostgresTimetableRepository) GetByID(ctx context.Context, id string) (*models.TimetableEntry, error) {
	query := fmt.Sprintf(`
		SELECT id, day, start_time, end_time, subject, room
		FROM %s
		WHERE id = $1
	`, r.tables.TimetableSlots)

	var e models.TimetableEntry
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&e.ID,
		&e.Day,
		&e.StartTime,
		&e.EndTime,
		&e.Subject,
		&e.Room,
	)

	if err != nil {
		if isPgNoRowsError(err) {
			return nil, fmt.Errorf("timetable entry %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get timetable entry: %w", err)
	}

	return &e, nil
}

// Update updates an entry.
func (r *PostgresTimetableRepository) Update(ctx context.Context, e *models.TimetableEntry) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET day = $1, start_time = $2, end_time = $3, subject = $4, room = $5
		WHERE id = $6
	`, r.tables.TimetableSlots)

	result, err := r.pool.Exec(ctx, query,
		e.Day,
		e.StartTime,
		e.EndTime,
		e.Subject,
		e.Room,
		e.ID,
	)

	if err != nil {
		return fmt.Errorf("update timetable entry: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("timetable entry %s: %w", e.ID, domain.ErrNotFound)
	}

	return nil
}

// Delete removes an entry.
func (r *PostgresTimetableRepository) Delete(ctx context.Context, id string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, r.tables.TimetableSlots)

	result, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete timetable entry: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("timetable entry %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// List returns all entries ordered by day then start time. Days are
// ordered Monday first via a position lookup rather than alphabetically.
func (r *PostgresTimetableRepository) List(ctx context.Context) ([]models.TimetableEntry, error) {
	query := fmt.Sprintf(`
		SELECT id, day, start_time, end_time, subject, room
		FROM %s
		ORDER BY array_position(ARRAY['Monday','Tuesday','Wednesday','Thursday','Friday','Saturday'], day), start_time ASC
	`, r.tables.TimetableSlots)

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list timetable: %w", err)
	}
	defer rows.Close()

	var entries []models.TimetableEntry
	for rows.Next() {
		var e models.TimetableEntry
		err := rows.Scan(
			&e.ID,
			&e.Day,
			&e.StartTime,
			&e.EndTime,
			&e.Subject,
			&e.Room,
		)
		if err != nil {
			return nil, fmt.Errorf("scan timetable entry: %w", err)
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate timetable: %w", err)
	}

	return entries, nil
}
