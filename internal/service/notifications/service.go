package notifications

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-StudioBooking/internal/domain"
)

// Service входящие уведомления мастеров
type Service struct {
	mu    sync.RWMutex
	items []domain.Notification

	location     *time.Location
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр уведомлений
func NewService(location *time.Location, logger Logger) *Service {
	if location == nil {
		location = time.Local
	}
	return &Service{
		location:     location,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Publish получает события хранилища записей; уведомление создаётся только для новой записи
func (s *Service) Publish(ctx context.Context, event domain.AppointmentEvent) {
	if event.Type != domain.EventAppointmentCreated {
		return
	}

	appt := event.Appointment
	start := appt.StartTime.In(s.location)
	n := domain.Notification{
		ID:            uuid.NewString(),
		MasterID:      appt.MasterID,
		Type:          domain.NotificationNewAppointment,
		Title:         "Новий запис",
		Message:       fmt.Sprintf("%s, %s о %s", appt.ClientName, start.Format("02.01"), start.Format(domain.TimeFormat)),
		AppointmentID: appt.ID,
		CreatedAt:     s.timeProvider.Now(),
	}

	s.mu.Lock()
	s.items = append(s.items, n)
	s.mu.Unlock()

	s.logger.Info("Notify: master=%s, appointment=%s", appt.MasterID, appt.ID)
}

// List уведомления мастера, новые первыми
func (s *Service) List(ctx context.Context, masterID string, unreadOnly bool) []domain.Notification {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]domain.Notification, 0)
	for i := len(s.items) - 1; i >= 0; i-- {
		n := s.items[i]
		if n.MasterID != masterID || (unreadOnly && n.Read) {
			continue
		}
		result = append(result, n)
	}
	return result
}

// UnreadCount число непрочитанных уведомлений мастера
func (s *Service) UnreadCount(ctx context.Context, masterID string) int {
	return len(s.List(ctx, masterID, true))
}

// MarkRead отмечает уведомление мастера прочитанным
func (s *Service) MarkRead(ctx context.Context, masterID, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == id && s.items[i].MasterID == masterID {
			s.items[i].Read = true
			return nil
		}
	}
	s.logger.Warn("MarkRead: notification id=%s not found for master=%s", id, masterID)
	return ErrNotificationNotFound
}

// MarkAllRead отмечает все уведомления мастера прочитанными и возвращает их число
func (s *Service) MarkAllRead(ctx context.Context, masterID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	marked := 0
	for i := range s.items {
		if s.items[i].MasterID == masterID && !s.items[i].Read {
			s.items[i].Read = true
			marked++
		}
	}
	return marked
}
