package clients

import (
	"context"
	"time"

	"github.com/m04kA/SMC-StudioBooking/internal/domain"
)

// Repository сохранение клиентов
type Repository interface {
	SaveClient(ctx context.Context, client *domain.Client) error
}

// MatchPolicy правило поиска существующего клиента по имени и телефону
type MatchPolicy interface {
	Match(clients []*domain.Client, name, phone string) *domain.Client
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
