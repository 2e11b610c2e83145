package get_recommended_services

import (
	"context"

	"github.com/m04kA/SMC-StudioBooking/internal/domain"
)

type Recommender interface {
	Recommended(ctx context.Context, clientID string) ([]domain.Service, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
