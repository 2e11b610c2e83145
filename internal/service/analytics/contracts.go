package analytics

import (
	"context"

	"github.com/m04kA/SMC-StudioBooking/internal/domain"
)

// AppointmentReader чтение записей клиента
type AppointmentReader interface {
	ForClient(ctx context.Context, clientID string) []*domain.Appointment
}

// Catalog чтение услуг
type Catalog interface {
	Service(id string) (domain.Service, bool)
	ListServices(ctx context.Context, activeOnly bool) []domain.Service
}

// ClientReader чтение клиентов
type ClientReader interface {
	Client(id string) (*domain.Client, bool)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
