package update_appointment

import (
	"context"

	"github.com/m04kA/SMC-StudioBooking/internal/domain"
	"github.com/m04kA/SMC-StudioBooking/internal/service/appointments/models"
)

type AppointmentStore interface {
	Get(ctx context.Context, id string) (*domain.Appointment, error)
	Update(ctx context.Context, id string, patch models.Patch) (*domain.Appointment, error)
}

type AccessPolicy interface {
	CheckAppointment(actor domain.Actor, appointment *domain.Appointment) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
