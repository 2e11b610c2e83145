package get_appointment

import (
	"context"

	"github.com/m04kA/SMC-StudioBooking/internal/domain"
)

type AppointmentReader interface {
	Get(ctx context.Context, id string) (*domain.Appointment, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
