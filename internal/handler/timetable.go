package handler

import (
	"log/slog"
	"net/http"

	"classboard/internal/domain/services"
	"classboard/internal/httputil"
)

// TimetableHandler handles the weekly timetable.
type TimetableHandler struct {
	timetableService services.TimetableService
	logger           *slog.Logger
}

// NewTimetableHandler creates a new timetable handler.
func NewTimetableHandler(timetableService services.TimetableService, logger *slog.Logger) *TimetableHandler {
	return &TimetableHandler{
		timetableService: timetableService,
		logger:           logger,
	}
}

// List returns the full timetable.
// GET /api/timetable
func (h *TimetableHandler) List(w http.ResponseWriter, r *http.Request) {
	entries, err := h.timetableService.List(r.Context())
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, entries)
}

// Create adds a timetable entry.
// POST /api/timetable
func (h *TimetableHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in services.TimetableInput
	if err := httputil.ParseJSON(w, r, &in); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	e, err := h.timetableService.Create(r.Context(), &in)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, e)
}

// Update replaces a timetable entry.
// PUT /api/timetable/{id}
func (h *TimetableHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		httputil.RespondError(w, http.StatusBadRequest, "entry ID is required")
		return
	}

	var in services.TimetableInput
	if err := httputil.ParseJSON(w, r, &in); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	e, err := h.timetableService.Update(r.Context(), id, &in)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, e)
}

// Delete removes a timetable entry.
// DELETE /api/timetable/{id}
func (h *TimetableHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		httputil.RespondError(w, http.StatusBadRequest, "entry ID is required")
		return
	}

	if err := h.timetableService.Delete(r.Context(), id); err != nil {
		handleError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
