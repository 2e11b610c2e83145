package notifications

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-StudioBooking/internal/api/handlers"
	"github.com/m04kA/SMC-StudioBooking/internal/domain"
	"github.com/m04kA/SMC-StudioBooking/internal/service/access"
	notificationsService "github.com/m04kA/SMC-StudioBooking/internal/service/notifications"
)

const (
	msgForbidden            = "уведомления доступны мастерам"
	msgMissingMasterID      = "укажите master_id"
	msgNotificationNotFound = "уведомление не найдено"
)

type Handler struct {
	inbox  Inbox
	policy AccessPolicy
	logger Logger
}

func NewHandler(inbox Inbox, policy AccessPolicy, logger Logger) *Handler {
	return &Handler{
		inbox:  inbox,
		policy: policy,
		logger: logger,
	}
}

// List GET /api/v1/notifications
// Query params: unread=true только непрочитанные; master_id для администратора
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	masterID, ok := h.masterID(w, r)
	if !ok {
		return
	}

	unreadOnly := r.URL.Query().Get("unread") == "true"
	list := h.inbox.List(r.Context(), masterID, unreadOnly)

	h.logger.Info("GET /notifications - Notifications retrieved: master_id=%s, count=%d", masterID, len(list))
	handlers.RespondJSON(w, http.StatusOK, InboxResponse{
		MasterID:      masterID,
		Unread:        h.inbox.UnreadCount(r.Context(), masterID),
		Notifications: newNotificationList(list),
	})
}

// MarkRead POST /api/v1/notifications/{notificationId}/read
func (h *Handler) MarkRead(w http.ResponseWriter, r *http.Request) {
	masterID, ok := h.masterID(w, r)
	if !ok {
		return
	}
	notificationID := mux.Vars(r)["notificationId"]

	if err := h.inbox.MarkRead(r.Context(), masterID, notificationID); err != nil {
		if errors.Is(err, notificationsService.ErrNotificationNotFound) {
			handlers.RespondNotFound(w, msgNotificationNotFound)
			return
		}
		h.logger.Error("POST /notifications/{id}/read - Failed to mark read: id=%s, error=%v", notificationID, err)
		handlers.RespondInternalError(w)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// MarkAllRead POST /api/v1/notifications/read-all
func (h *Handler) MarkAllRead(w http.ResponseWriter, r *http.Request) {
	masterID, ok := h.masterID(w, r)
	if !ok {
		return
	}

	marked := h.inbox.MarkAllRead(r.Context(), masterID)
	h.logger.Info("POST /notifications/read-all - Marked read: master_id=%s, count=%d", masterID, marked)
	handlers.RespondJSON(w, http.StatusOK, MarkAllReadResponse{Marked: marked})
}

// masterID мастер видит только свои уведомления, администратор указывает мастера явно
func (h *Handler) masterID(w http.ResponseWriter, r *http.Request) (string, bool) {
	actor := handlers.ActorFrom(r.Context())
	if err := h.policy.Check(actor, access.ActionNotifications); err != nil {
		h.logger.Warn("%s %s - Access denied: role=%s", r.Method, r.URL.Path, actor.Role)
		handlers.RespondForbidden(w, msgForbidden)
		return "", false
	}

	if actor.Role == domain.RoleMaster {
		return actor.MasterID, true
	}

	masterID := r.URL.Query().Get("master_id")
	if masterID == "" {
		handlers.RespondBadRequest(w, msgMissingMasterID)
		return "", false
	}
	return masterID, true
}
