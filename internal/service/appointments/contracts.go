package appointments

import (
	"context"
	"time"

	"github.com/m04kA/SMC-StudioBooking/internal/domain"
	"github.com/m04kA/SMC-StudioBooking/internal/service/availability"
)

// Repository сохранение записей
type Repository interface {
	SaveAppointment(ctx context.Context, appointment *domain.Appointment) error
	DeleteAppointment(ctx context.Context, id string) error
}

// Catalog чтение мастеров и услуг
type Catalog interface {
	Master(id string) (domain.Master, bool)
	Service(id string) (domain.Service, bool)
}

// ClientRegistry реестр клиентов
type ClientRegistry interface {
	Client(id string) (*domain.Client, bool)
	SaveVisit(ctx context.Context, id string, at time.Time) error
	ApplyVisit(id string, at time.Time)
}

// AvailabilityChecker проверка свободного слота
type AvailabilityChecker interface {
	IsAvailable(ctx context.Context, appointments availability.AppointmentReader, req availability.Request) (bool, error)
}

// TxManager выполнение функции в транзакции хранилища
type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// EventPublisher получатель событий после успешной мутации.
// Вызывается под блокировкой записи хранилища в порядке фиксации:
// не должен блокироваться и обращаться к хранилищу.
type EventPublisher interface {
	Publish(ctx context.Context, event domain.AppointmentEvent)
}

// Metrics счётчики исходов операций с записями
type Metrics interface {
	AppointmentOutcome(outcome string)
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

type noopMetrics struct{}

func (noopMetrics) AppointmentOutcome(string) {}
