package list_services

import (
	"context"

	"github.com/m04kA/SMC-StudioBooking/internal/domain"
)

type ServiceCatalog interface {
	ListServices(ctx context.Context, activeOnly bool) []domain.Service
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
