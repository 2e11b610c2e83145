package domain

import (
	"time"

	"github.com/m04kA/SMC-StudioBooking/pkg/types"
)

// AppointmentStatus статус записи
type AppointmentStatus string

const (
	StatusNew        AppointmentStatus = "new"
	StatusConfirmed  AppointmentStatus = "confirmed"
	StatusInProgress AppointmentStatus = "in-progress"
	StatusCompleted  AppointmentStatus = "completed"
	StatusCancelled  AppointmentStatus = "cancelled"
)

// AllStatuses все допустимые статусы
var AllStatuses = []AppointmentStatus{
	StatusNew,
	StatusConfirmed,
	StatusInProgress,
	StatusCompleted,
	StatusCancelled,
}

// IsValid проверяет, что статус известен
func (s AppointmentStatus) IsValid() bool {
	for _, st := range AllStatuses {
		if s == st {
			return true
		}
	}
	return false
}

// Appointment запись клиента к мастеру
type Appointment struct {
	ID          string
	ClientID    string
	ClientName  string // снимок на момент записи
	ClientPhone string // снимок на момент записи
	MasterID    string
	ServiceIDs  []string
	StartTime   time.Time
	EndTime     time.Time // всегда StartTime + сумма длительностей услуг
	Status      AppointmentStatus
	Notes       string
	CreatedAt   time.Time
	CreatedBy   string
}

// IsCancelled returns true if the appointment has been cancelled
func (a *Appointment) IsCancelled() bool {
	return a.Status == StatusCancelled
}

// OccupiesSlot returns true if the appointment blocks its interval for the master
func (a *Appointment) OccupiesSlot() bool {
	return !a.IsCancelled()
}

// DurationMinutes длительность записи
func (a *Appointment) DurationMinutes() int {
	return int(a.EndTime.Sub(a.StartTime) / time.Minute)
}

// StartTimeOfDay время начала в формате HH:MM
func (a *Appointment) StartTimeOfDay() types.TimeString {
	return types.NewTimeString(a.StartTime)
}

// OnDate проверяет, что запись начинается в указанный календарный день
// (сравнение в часовом поясе date)
func (a *Appointment) OnDate(date time.Time) bool {
	y1, m1, d1 := a.StartTime.In(date.Location()).Date()
	y2, m2, d2 := date.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// Clone возвращает независимую копию
func (a *Appointment) Clone() *Appointment {
	cp := *a
	cp.ServiceIDs = append([]string(nil), a.ServiceIDs...)
	return &cp
}
