package services

import (
	"context"
	"io"

	"classboard/internal/domain/models"
)

// CreateFolderRequest carries the input for folder creation. ParentID
// nil means the root level.
type CreateFolderRequest struct {
	Name     string  `json:"name"`
	ParentID *string `json:"parent"`
}

// UploadDocumentRequest carries an uploaded file. Content is consumed
// exactly once; Name is the display name shown in the drive.
type UploadDocumentRequest struct {
	Name     string
	ParentID *string
	Content  io.Reader
}

// NotesService implements the notes drive: a tree of folders and PDF
// documents with cascading delete.
type NotesService interface {
	// ListChildren returns the immediate children of parentID (nil =
	// root) in creation order.
	ListChildren(ctx context.Context, parentID *string) ([]models.Node, error)

	// CreateFolder creates a folder. The name is trimmed and must be
	// non-empty; the parent must exist and be a folder.
	CreateFolder(ctx context.Context, req *CreateFolderRequest) (*models.Node, error)

	// UploadDocument stores a PDF and creates its document node. Only
	// PDF content is accepted, whatever the client claimed.
	UploadDocument(ctx context.Context, req *UploadDocumentRequest) (*models.Node, error)

	// DeleteNode deletes a node. Deleting a folder deletes its entire
	// subtree and removes the stored files of every document in it.
	DeleteNode(ctx context.Context, id string) error

	// OpenDocument returns the stored content of a document by its
	// storage filename.
	OpenDocument(ctx context.Context, filename string) (io.ReadCloser, error)
}
