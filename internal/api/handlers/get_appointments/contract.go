package get_appointments

import (
	"context"
	"time"

	"github.com/m04kA/SMC-StudioBooking/internal/domain"
)

type AppointmentReader interface {
	ForDate(ctx context.Context, date time.Time) []*domain.Appointment
	ForMaster(ctx context.Context, masterID string, date time.Time) []*domain.Appointment
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
