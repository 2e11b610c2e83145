package delete_appointment

import (
	"context"

	"github.com/m04kA/SMC-StudioBooking/internal/domain"
	"github.com/m04kA/SMC-StudioBooking/internal/service/access"
)

type AppointmentStore interface {
	Delete(ctx context.Context, id string) error
}

type AccessPolicy interface {
	Check(actor domain.Actor, action access.Action) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
