package list_masters

import (
	"context"

	"github.com/m04kA/SMC-StudioBooking/internal/domain"
)

type MasterCatalog interface {
	ListMasters(ctx context.Context, activeOnly bool) []domain.Master
	GetMaster(ctx context.Context, id string) (*domain.Master, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
