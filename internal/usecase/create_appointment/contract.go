package create_appointment

import (
	"context"
	"time"

	"github.com/m04kA/SMC-StudioBooking/internal/domain"
	appointmentModels "github.com/m04kA/SMC-StudioBooking/internal/service/appointments/models"
	clientModels "github.com/m04kA/SMC-StudioBooking/internal/service/clients/models"
)

// ClientRegistry поиск или создание клиента
type ClientRegistry interface {
	Resolve(ctx context.Context, name, phone string) (*clientModels.ResolveResult, error)
	SetFavorites(ctx context.Context, id string, serviceIDs []string) error
}

// AppointmentStore хранилище записей
type AppointmentStore interface {
	Create(ctx context.Context, in *appointmentModels.CreateInput) (*domain.Appointment, error)
}

// FavoritesProvider расчёт любимых услуг клиента
type FavoritesProvider interface {
	FavoriteIDs(ctx context.Context, clientID string) ([]string, error)
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
