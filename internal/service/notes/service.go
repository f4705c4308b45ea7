package notes

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"classboard/internal/domain"
	"classboard/internal/domain/models"
	"classboard/internal/domain/repositories"
	"classboard/internal/domain/services"
	"classboard/internal/storage"
)

// pdfMagic is the signature every PDF file starts with. The client-side
// accept filter is advisory; this check is the authority.
var pdfMagic = []byte("%PDF-")

const maxNameLength = 120

type notesService struct {
	nodes  repositories.NodeRepository
	store  storage.Store
	logger *slog.Logger
}

// NewService creates the notes drive service.
func NewService(nodes repositories.NodeRepository, store storage.Store, logger *slog.Logger) services.NotesService {
	return &notesService{
		nodes:  nodes,
		store:  store,
		logger: logger,
	}
}

// ListChildren returns the immediate children of a folder, or the root
// level when parentID is nil. The parent must exist and be a folder.
func (s *notesService) ListChildren(ctx context.Context, parentID *string) ([]models.Node, error) {
	if parentID != nil {
		if err := s.requireFolder(ctx, *parentID); err != nil {
			return nil, err
		}
	}

	nodes, err := s.nodes.ListChildren(ctx, parentID)
	if err != nil {
		return nil, err
	}

	// Empty folders list as [], not null.
	if nodes == nil {
		nodes = []models.Node{}
	}

	return nodes, nil
}

// CreateFolder creates a folder under the given parent.
func (s *notesService) CreateFolder(ctx context.Context, req *services.CreateFolderRequest) (*models.Node, error) {
	req.Name = strings.TrimSpace(req.Name)
	normalizeParent(&req.ParentID)

	if err := validation.ValidateStruct(req,
		validation.Field(&req.Name, validation.Required, validation.Length(1, maxNameLength)),
	); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	if req.ParentID != nil {
		if err := s.requireFolder(ctx, *req.ParentID); err != nil {
			return nil, err
		}
	}

	folder := &models.Node{
		Type:     models.NodeTypeFolder,
		Name:     req.Name,
		ParentID: req.ParentID,
	}

	if err := s.nodes.Create(ctx, folder); err != nil {
		return nil, err
	}

	s.logger.Info("folder created",
		"id", folder.ID,
		"name", folder.Name,
		"parent", parentLabel(folder.ParentID),
	)

	return folder, nil
}

// UploadDocument stores the file content and creates its node. The
// content must be a PDF; the stored filename is generated and never
// derived from user input.
func (s *notesService) UploadDocument(ctx context.Context, req *services.UploadDocumentRequest) (*models.Node, error) {
	req.Name = strings.TrimSpace(req.Name)
	normalizeParent(&req.ParentID)

	if err := validation.Validate(req.Name, validation.Required, validation.Length(1, maxNameLength)); err != nil {
		return nil, fmt.Errorf("%w: document name: %v", domain.ErrValidation, err)
	}
	if req.Content == nil {
		return nil, fmt.Errorf("%w: missing file content", domain.ErrValidation)
	}

	if req.ParentID != nil {
		if err := s.requireFolder(ctx, *req.ParentID); err != nil {
			return nil, err
		}
	}

	content := bufio.NewReader(req.Content)
	head, err := content.Peek(len(pdfMagic))
	if err != nil || !bytes.Equal(head, pdfMagic) {
		return nil, fmt.Errorf("%w: only PDF files are accepted", domain.ErrValidation)
	}

	filename := uuid.New().String() + ".pdf"
	if err := s.store.Save(filename, content); err != nil {
		return nil, fmt.Errorf("store document: %w", err)
	}

	doc := &models.Node{
		Type:     models.NodeTypeDocument,
		Name:     req.Name,
		ParentID: req.ParentID,
		Filename: filename,
	}

	if err := s.nodes.Create(ctx, doc); err != nil {
		// Do not leave an orphaned file behind a failed insert.
		if rmErr := s.store.Remove(filename); rmErr != nil {
			s.logger.Warn("orphaned upload not removed", "filename", filename, "error", rmErr)
		}
		return nil, err
	}

	s.logger.Info("document uploaded",
		"id", doc.ID,
		"name", doc.Name,
		"filename", doc.Filename,
		"parent", parentLabel(doc.ParentID),
	)

	return doc, nil
}

// DeleteNode deletes a node. For folders the whole subtree goes with it
// (the repository cascades); stored files of deleted documents are
// removed afterwards, best effort.
func (s *notesService) DeleteNode(ctx context.Context, id string) error {
	if err := validation.Validate(id, validation.Required); err != nil {
		return fmt.Errorf("%w: node id: %v", domain.ErrValidation, err)
	}

	filenames, err := s.nodes.DescendantFilenames(ctx, id)
	if err != nil {
		return err
	}

	if err := s.nodes.Delete(ctx, id); err != nil {
		return err
	}

	for _, filename := range filenames {
		if err := s.store.Remove(filename); err != nil {
			s.logger.Warn("stored file not removed after delete", "filename", filename, "error", err)
		}
	}

	s.logger.Info("node deleted", "id", id, "files_removed", len(filenames))

	return nil
}

// OpenDocument returns the stored content for a storage filename.
func (s *notesService) OpenDocument(ctx context.Context, filename string) (io.ReadCloser, error) {
	rc, err := s.store.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("document %s: %w", filename, domain.ErrNotFound)
	}
	return rc, nil
}

// requireFolder fails unless id names an existing folder node.
func (s *notesService) requireFolder(ctx context.Context, id string) error {
	node, err := s.nodes.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !node.IsFolder() {
		return fmt.Errorf("%w: %s is not a folder", domain.ErrValidation, id)
	}
	return nil
}

// normalizeParent folds the API's empty-string root sentinel into nil.
func normalizeParent(parentID **string) {
	if *parentID != nil && **parentID == "" {
		*parentID = nil
	}
}

func parentLabel(parentID *string) string {
	if parentID == nil {
		return "root"
	}
	return *parentID
}
