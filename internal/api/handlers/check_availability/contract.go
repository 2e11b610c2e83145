package check_availability

import (
	"context"

	"github.com/m04kA/SMC-StudioBooking/internal/domain"
	"github.com/m04kA/SMC-StudioBooking/internal/service/availability"
)

type AvailabilityChecker interface {
	IsAvailable(ctx context.Context, req availability.Request) (bool, error)
}

type ServiceCatalog interface {
	Service(id string) (domain.Service, bool)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
