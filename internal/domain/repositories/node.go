package repositories

import (
	"context"

	"classboard/internal/domain/models"
)

// NodeRepository persists the notes tree. The parent/child relation is
// a tree: every non-root node has exactly one parent and deleting a
// node deletes its entire subtree.
type NodeRepository interface {
	// Create inserts a node. Folder names must be unique among folder
	// siblings; a duplicate returns domain.ErrConflict.
	Create(ctx context.Context, node *models.Node) error

	// GetByID returns a node or domain.ErrNotFound.
	GetByID(ctx context.Context, id string) (*models.Node, error)

	// ListChildren returns the immediate children of a folder, or the
	// root-level nodes when parentID is nil, in creation order.
	ListChildren(ctx context.Context, parentID *string) ([]models.Node, error)

	// DescendantFilenames returns the storage filenames of every
	// document in the subtree rooted at id, including id itself.
	DescendantFilenames(ctx context.Context, id string) ([]string, error)

	// Delete removes a node and, through the parent foreign key
	// cascade, its whole subtree. Returns domain.ErrNotFound if the
	// node does not exist.
	Delete(ctx context.Context, id string) error
}
