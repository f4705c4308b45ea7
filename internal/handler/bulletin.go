package handler

import (
	"log/slog"
	"net/http"

	"classboard/internal/domain/services"
	"classboard/internal/httputil"
)

// BulletinHandler handles announcements and notifications.
type BulletinHandler struct {
	bulletinService services.BulletinService
	logger          *slog.Logger
}

// NewBulletinHandler creates a new bulletin handler.
func NewBulletinHandler(bulletinService services.BulletinService, logger *slog.Logger) *BulletinHandler {
	return &BulletinHandler{
		bulletinService: bulletinService,
		logger:          logger,
	}
}

// ListAnnouncements returns all announcements, newest first.
// GET /api/announcements
func (h *BulletinHandler) ListAnnouncements(w http.ResponseWriter, r *http.Request) {
	announcements, err := h.bulletinService.ListAnnouncements(r.Context())
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, announcements)
}

// CreateAnnouncement creates an announcement.
// POST /api/announcements
func (h *BulletinHandler) CreateAnnouncement(w http.ResponseWriter, r *http.Request) {
	var in services.AnnouncementInput
	if err := httputil.ParseJSON(w, r, &in); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	a, err := h.bulletinService.CreateAnnouncement(r.Context(), &in)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, a)
}

// UpdateAnnouncement updates an announcement.
// PUT /api/announcements/{id}
func (h *BulletinHandler) UpdateAnnouncement(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		httputil.RespondError(w, http.StatusBadRequest, "announcement ID is required")
		return
	}

	var in services.AnnouncementInput
	if err := httputil.ParseJSON(w, r, &in); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	a, err := h.bulletinService.UpdateAnnouncement(r.Context(), id, &in)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, a)
}

// DeleteAnnouncement removes an announcement.
// DELETE /api/announcements/{id}
func (h *BulletinHandler) DeleteAnnouncement(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		httputil.RespondError(w, http.StatusBadRequest, "announcement ID is required")
		return
	}

	if err := h.bulletinService.DeleteAnnouncement(r.Context(), id); err != nil {
		handleError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ListNotifications returns all notifications, newest first.
// GET /api/notifications
func (h *BulletinHandler) ListNotifications(w http.ResponseWriter, r *http.Request) {
	notifications, err := h.bulletinService.ListNotifications(r.Context())
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, notifications)
}

// CreateNotification creates a notification.
// POST /api/notifications
func (h *BulletinHandler) CreateNotification(w http.ResponseWriter, r *http.Request) {
	var in services.NotificationInput
	if err := httputil.ParseJSON(w, r, &in); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	n, err := h.bulletinService.CreateNotification(r.Context(), &in)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, n)
}

// DeleteNotification removes a notification.
// DELETE /api/notifications/{id}
func (h *BulletinHandler) DeleteNotification(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		httputil.RespondError(w, http.StatusBadRequest, "notification ID is required")
		return
	}

	if err := h.bulletinService.DeleteNotification(r.Context(), id); err != nil {
		handleError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
