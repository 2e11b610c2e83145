package get_client_visits

import (
	"context"

	"github.com/m04kA/SMC-StudioBooking/internal/domain"
	"github.com/m04kA/SMC-StudioBooking/internal/service/access"
	"github.com/m04kA/SMC-StudioBooking/internal/service/analytics/models"
)

type VisitHistory interface {
	Visits(ctx context.Context, clientID string) ([]models.Visit, error)
}

type AccessPolicy interface {
	Check(actor domain.Actor, action access.Action) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
