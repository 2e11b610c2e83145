package create_appointment

import (
	"time"

	"github.com/m04kA/SMC-StudioBooking/internal/domain"
	"github.com/m04kA/SMC-StudioBooking/pkg/types"
)

// Request данные формы записи
type Request struct {
	ClientName  string
	ClientPhone string
	MasterID    string
	ServiceIDs  []string
	Date        time.Time        // календарный день в часовом поясе студии
	StartTime   types.TimeString // например "10:00"
	Notes       string
	Actor       domain.Actor
}

// Response созданная запись
type Response struct {
	Appointment   *domain.Appointment
	ClientCreated bool
}
