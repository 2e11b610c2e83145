package get_available_slots

import (
	"context"
	"time"

	"github.com/m04kA/SMC-StudioBooking/internal/domain"
	"github.com/m04kA/SMC-StudioBooking/internal/service/availability"
)

// Catalog чтение мастеров и услуг
type Catalog interface {
	Master(id string) (domain.Master, bool)
	Service(id string) (domain.Service, bool)
}

// AppointmentStore снимок записей на день
type AppointmentStore interface {
	Snapshot(date time.Time) availability.Snapshot
}

// AvailabilityChecker проверка слота
type AvailabilityChecker interface {
	IsAvailable(ctx context.Context, appointments availability.AppointmentReader, req availability.Request) (bool, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
