package domain

import "time"

// NotificationType тип уведомления мастера
type NotificationType string

const (
	NotificationNewAppointment NotificationType = "new-appointment"
)

// Notification уведомление мастера
type Notification struct {
	ID            string
	MasterID      string
	Type          NotificationType
	Title         string
	Message       string
	AppointmentID string
	CreatedAt     time.Time
	Read          bool
}

// EventType тип события записи
type EventType string

const (
	EventAppointmentCreated       EventType = "appointment.created"
	EventAppointmentRelocated     EventType = "appointment.relocated"
	EventAppointmentStatusChanged EventType = "appointment.status_changed"
	EventAppointmentUpdated       EventType = "appointment.updated"
	EventAppointmentDeleted       EventType = "appointment.deleted"
)

// AppointmentEvent событие, публикуемое после успешной мутации записи
type AppointmentEvent struct {
	ID          string
	Type        EventType
	Appointment Appointment
	OccurredAt  time.Time
}
