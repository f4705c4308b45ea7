package handler

import (
	"io"
	"log/slog"
	"net/http"

	"classboard/internal/domain/services"
	"classboard/internal/httputil"
)

// maxUploadSize caps a single document upload at 25 MB.
const maxUploadSize = 25 << 20

// NotesHandler handles the notes drive HTTP requests.
type NotesHandler struct {
	notesService services.NotesService
	logger       *slog.Logger
}

// NewNotesHandler creates a new notes handler.
func NewNotesHandler(notesService services.NotesService, logger *slog.Logger) *NotesHandler {
	return &NotesHandler{
		notesService: notesService,
		logger:       logger,
	}
}

// List returns the immediate children of a folder.
// GET /api/notes/list?parent=<id|''>
func (h *NotesHandler) List(w http.ResponseWriter, r *http.Request) {
	var parentID *string
	if parent := r.URL.Query().Get("parent"); parent != "" {
		parentID = &parent
	}

	nodes, err := h.notesService.ListChildren(r.Context(), parentID)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, nodes)
}

// CreateFolder creates a folder.
// POST /api/notes/folder
func (h *NotesHandler) CreateFolder(w http.ResponseWriter, r *http.Request) {
	var req services.CreateFolderRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	folder, err := h.notesService.CreateFolder(r.Context(), &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, folder)
}

// Upload accepts a multipart PDF upload.
// POST /api/notes/upload, fields: file, parent
func (h *NotesHandler) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "invalid multipart body")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "missing file field")
		return
	}
	defer file.Close()

	req := services.UploadDocumentRequest{
		Name:    header.Filename,
		Content: file,
	}
	if parent := r.FormValue("parent"); parent != "" {
		req.ParentID = &parent
	}

	doc, err := h.notesService.UploadDocument(r.Context(), &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, doc)
}

// Delete removes a node; folders cascade to their whole subtree.
// DELETE /api/notes/{id}
func (h *NotesHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		httputil.RespondError(w, http.StatusBadRequest, "node ID is required")
		return
	}

	if err := h.notesService.DeleteNode(r.Context(), id); err != nil {
		handleError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ServeDocument streams a stored PDF by its storage filename. Used for
// both viewing in the browser and downloading.
// GET /uploads/{filename}
func (h *NotesHandler) ServeDocument(w http.ResponseWriter, r *http.Request) {
	filename := r.PathValue("filename")
	if filename == "" {
		httputil.RespondError(w, http.StatusBadRequest, "filename is required")
		return
	}

	rc, err := h.notesService.OpenDocument(r.Context(), filename)
	if err != nil {
		handleError(w, err)
		return
	}
	defer rc.Close()

	w.Header().Set("Content-Type", "application/pdf")
	if _, err := io.Copy(w, rc); err != nil {
		h.logger.Warn("document stream interrupted", "filename", filename, "error", err)
	}
}
