package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// EnsureSchema creates the prefixed tables if they do not exist yet.
// Table names are interpolated before the SQL is sent, so each
// environment prefix gets its own set of tables.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool, tables *TableNames) error {
	statements := []string{
		fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				id uuid PRIMARY KEY DEFAULT gen_random_uuid(),
				type text NOT NULL CHECK (type IN ('folder', 'document')),
				name text NOT NULL,
				parent_id uuid REFERENCES %s(id) ON DELETE CASCADE,
				filename text,
				created_at timestamptz NOT NULL DEFAULT now()
			)
		`, tables.Nodes, tables.Nodes),
		fmt.Sprintf(`CREATE INDEX IF NOT EXISTS %s_parent_idx ON %s(parent_id)`, tables.Nodes, tables.Nodes),
		// Folder names are unique among siblings; COALESCE folds the
		// NULL parent of root-level folders into one bucket.
		fmt.Sprintf(`
			CREATE UNIQUE INDEX IF NOT EXISTS %s_folder_name_idx
			ON %s (COALESCE(parent_id::text, ''), name)
			WHERE type = 'folder'
		`, tables.Nodes, tables.Nodes),
		fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				id uuid PRIMARY KEY DEFAULT gen_random_uuid(),
				title text NOT NULL,
				content text NOT NULL,
				priority text NOT NULL DEFAULT 'Normal',
				date text NOT NULL DEFAULT '',
				deadline text NOT NULL DEFAULT '',
				created_at timestamptz NOT NULL DEFAULT now()
			)
		`, tables.Announcements),
		fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				id uuid PRIMARY KEY DEFAULT gen_random_uuid(),
				title text NOT NULL,
				message text NOT NULL,
				type text NOT NULL DEFAULT 'Info',
				created_at timestamptz NOT NULL DEFAULT now()
			)
		`, tables.Notifications),
		fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				id uuid PRIMARY KEY DEFAULT gen_random_uuid(),
				day text NOT NULL,
				start_time text NOT NULL,
				end_time text NOT NULL,
				subject text NOT NULL,
				room text NOT NULL DEFAULT ''
			)
		`, tables.TimetableSlots),
	}

	for _, stmt := range statements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}

	return nil
}
