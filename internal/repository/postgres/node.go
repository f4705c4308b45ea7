package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"classboard/internal/domain"
	"classboard/internal/domain/models"
	"classboard/internal/domain/repositories"
)

// PostgresNodeRepository implements the NodeRepository interface.
type PostgresNodeRepository struct {
	pool   *pgxpool.Pool
	tables *TableNames
}

// NewNodeRepository creates a new node repository.
func NewNodeRepository(config *RepositoryConfig) repositories.NodeRepository {
	return &PostgresNodeRepository{
		pool:   config.Pool,
		tables: config.Tables,
	}
}

// Create inserts a node. Folder siblings are guarded against duplicate
// names at the application level.
func (r *PostgresNodeRepository) Create(ctx context.Context, node *models.Node) error {
	if node.Type == models.NodeTypeFolder {
		existing, err := r.getFolderByNameAndParent(ctx, node.Name, node.ParentID)
		if err != nil {
			return err
		}
		if existing != nil {
			return fmt.Errorf("folder '%s': %w", node.Name, domain.ErrConflict)
		}
	}

	query := fmt.Sprintf(`
		INSERT INTO %s (type, name, parent_id, filename)
		VALUES ($1, $2, $3, NULLIF($4, ''))
		RETURNING id, created_at
	`, r.tables.Nodes)

	err := r.pool.QueryRow(ctx, query,
		node.Type,
		node.Name,
		node.ParentID,
		node.Filename,
	).Scan(&node.ID, &node.CreatedAt)

	if err != nil {
		if isPgForeignKeyError(err) {
			return fmt.Errorf("parent folder: %w", domain.ErrNotFound)
		}
		if isPgDuplicateError(err) {
			// The unique index catches what the lookup above raced past.
			return fmt.Errorf("folder '%s': %w", node.Name, domain.ErrConflict)
		}
		return fmt.Errorf("create node: %w", err)
	}

	return nil
}

// GetByID retrieves a node by ID.
func (r *PostgresNodeRepository) GetByID(ctx context.Context, id string) (*models.Node, error) {
	query := fmt.Sprintf(`
		SELECT id, type, name, parent_id, COALESCE(filename, ''), created_at
		FROM %s
		WHERE id = $1
	`, r.tables.Nodes)

	var node models.Node
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&node.ID,
		&node.Type,
		&node.Name,
		&node.ParentID,
		&node.Filename,
		&node.CreatedAt,
	)

	if err != nil {
		if isPgNoRowsError(err) {
			return nil, fmt.Errorf("node %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get node: %w", err)
	}

	return &node, nil
}

// ListChildren lists immediate children in creation order. A nil
// parentID lists the root level.
func (r *PostgresNodeRepository) ListChildren(ctx context.Context, parentID *string) ([]models.Node, error) {
	var query string
	var args []interface{}

	if parentID == nil {
		query = fmt.Sprintf(`
			SELECT id, type, name, parent_id, COALESCE(filename, ''), created_at
			FROM %s
			WHERE parent_id IS NULL
			ORDER BY created_at ASC
		`, r.tables.Nodes)
	} else {
		query = fmt.Sprintf(`
			SELECT id, type, name, parent_id, COALESCE(filename, ''), created_at
			FROM %s
			WHERE parent_id = $1
			ORDER BY created_at ASC
		`, r.tables.Nodes)
		args = append(args, *parentID)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list children: %w", err)
	}
	defer rows.Close()

	var nodes []models.Node
	for rows.Next() {
		var node models.Node
		err := rows.Scan(
			&node.ID,
			&node.Type,
			&node.Name,
			&node.ParentID,
			&node.Filename,
			&node.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan node: %w", err)
		}
		nodes = append(nodes, node)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate nodes: %w", err)
	}

	return nodes, nil
}

// DescendantFilenames walks the subtree rooted at id with a recursive
// CTE and returns the storage filenames of every document in it.
func (r *PostgresNodeRepository) DescendantFilenames(ctx context.Context, id string) ([]string, error) {
	query := fmt.Sprintf(`
		WITH RECURSIVE subtree AS (
			SELECT id, type, filename
			FROM %s
			WHERE id = $1
			UNION ALL
			SELECT n.id, n.type, n.filename
			FROM %s n
			JOIN subtree s ON n.parent_id = s.id
		)
		SELECT filename FROM subtree
		WHERE type = 'document' AND filename IS NOT NULL
	`, r.tables.Nodes, r.tables.Nodes)

	rows, err := r.pool.Query(ctx, query, id)
	if err != nil {
		return nil, fmt.Errorf("collect descendant filenames: %w", err)
	}
	defer rows.Close()

	var filenames []string
	for rows.Next() {
		var filename string
		if err := rows.Scan(&filename); err != nil {
			return nil, fmt.Errorf("scan filename: %w", err)
		}
		filenames = append(filenames, filename)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate filenames: %w", err)
	}

	return filenames, nil
}

// Delete removes a node; the ON DELETE CASCADE foreign key takes the
// whole subtree with it.
func (r *PostgresNodeRepository) Delete(ctx context.Context, id string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, r.tables.Nodes)

	result, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete node: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("node %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// getFolderByNameAndParent finds a sibling folder with the given name,
// or nil if there is none.
func (r *PostgresNodeRepository) getFolderByNameAndParent(ctx context.Context, name string, parentID *string) (*models.Node, error) {
	var query string
	var args []interface{}

	if parentID == nil {
		query = fmt.Sprintf(`
			SELECT id, type, name, parent_id, COALESCE(filename, ''), created_at
			FROM %s
			WHERE type = 'folder' AND name = $1 AND parent_id IS NULL
		`, r.tables.Nodes)
		args = append(args, name)
	} else {
		query = fmt.Sprintf(`
			SELECT id, type, name, parent_id, COALESCE(filename, ''), created_at
			FROM %s
			WHERE type = 'folder' AND name = $1 AND parent_id = $2
		`, r.tables.Nodes)
		args = append(args, name, *parentID)
	}

	var node models.Node
	err := r.pool.QueryRow(ctx, query, args...).Scan(
		&node.ID,
		&node.Type,
		&node.Name,
		&node.ParentID,
		&node.Filename,
		&node.CreatedAt,
	)

	if err != nil {
		if isPgNoRowsError(err) {
			return nil, nil // not found, not an error
		}
		return nil, fmt.Errorf("get folder by name and parent: %w", err)
	}

	return &node, nil
}
