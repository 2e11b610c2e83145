package notifications

import (
	"github.com/m04kA/SMC-StudioBooking/internal/api/handlers"
	"github.com/m04kA/SMC-StudioBooking/internal/domain"
)

// NotificationResponse уведомление мастера
type NotificationResponse struct {
	ID            string `json:"id"`
	Type          string `json:"type"`
	Title         string `json:"title"`
	Message       string `json:"message"`
	AppointmentID string `json:"appointmentId"`
	CreatedAt     string `json:"createdAt"`
	Read          bool   `json:"read"`
}

// InboxResponse список уведомлений и счётчик непрочитанных
type InboxResponse struct {
	MasterID      string                 `json:"masterId"`
	Unread        int                    `json:"unread"`
	Notifications []NotificationResponse `json:"notifications"`
}

// MarkAllReadResponse число отмеченных уведомлений
type MarkAllReadResponse struct {
	Marked int `json:"marked"`
}

func newNotificationList(list []domain.Notification) []NotificationResponse {
	result := make([]NotificationResponse, 0, len(list))
	for _, n := range list {
		result = append(result, NotificationResponse{
			ID:            n.ID,
			Type:          string(n.Type),
			Title:         n.Title,
			Message:       n.Message,
			AppointmentID: n.AppointmentID,
			CreatedAt:     handlers.FormatTime(n.CreatedAt),
			Read:          n.Read,
		})
	}
	return result
}
