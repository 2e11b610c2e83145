package ledger

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-StudioBooking/internal/domain"
	"github.com/m04kA/SMC-StudioBooking/internal/service/ledger/models"
)

// Service кассовый журнал. Операции только добавляются.
type Service struct {
	mu           sync.RWMutex
	transactions []domain.CashTransaction

	repo         Repository
	metrics      Metrics
	location     *time.Location
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр кассы; дни считаются в часовом поясе location
func NewService(repo Repository, metrics Metrics, location *time.Location, logger Logger) *Service {
	if metrics == nil {
		metrics = noopMetrics{}
	}
	if location == nil {
		location = time.Local
	}
	return &Service{
		repo:         repo,
		metrics:      metrics,
		location:     location,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Restore загружает сохранённый журнал
func (s *Service) Restore(list []*domain.CashTransaction) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.transactions = make([]domain.CashTransaction, 0, len(list))
	for _, tx := range list {
		restored := *tx
		restored.CreatedAt = restored.CreatedAt.In(s.location)
		s.transactions = append(s.transactions, restored)
	}
	sort.SliceStable(s.transactions, func(i, j int) bool {
		return s.transactions[i].CreatedAt.Before(s.transactions[j].CreatedAt)
	})

	s.logger.Info("Restore: loaded %d cash transactions", len(list))
}

// Record проводит операцию
func (s *Service) Record(ctx context.Context, in *models.RecordInput) (*domain.CashTransaction, error) {
	s.logger.Info("RecordTransaction: type=%s, amount=%d, category=%q", in.Type, in.Amount, in.Category)

	if !in.Type.IsValid() {
		return nil, ErrInvalidType
	}
	if in.Amount <= 0 {
		s.logger.Warn("RecordTransaction: rejected amount=%d", in.Amount)
		return nil, ErrInvalidAmount
	}
	if len(in.Description) > domain.MaxDescriptionLength {
		return nil, fmt.Errorf("%w: description is too long", ErrInvalidInput)
	}

	category := strings.TrimSpace(in.Category)
	if category == "" {
		category = in.Type.DefaultCategory()
	}

	at := s.timeProvider.Now()
	if in.At != nil {
		at = *in.At
	}

	tx := domain.CashTransaction{
		ID:            uuid.NewString(),
		Type:          in.Type,
		Amount:        in.Amount,
		Category:      category,
		Description:   strings.TrimSpace(in.Description),
		MasterID:      in.MasterID,
		AppointmentID: in.AppointmentID,
		CreatedAt:     at,
		CreatedBy:     in.CreatedBy,
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.repo.SaveTransaction(ctx, &tx); err != nil {
		s.logger.Error("RecordTransaction: repository error: %v", err)
		return nil, fmt.Errorf("%w: Record - repository error: %v", ErrInternal, err)
	}
	s.transactions = append(s.transactions, tx)
	s.metrics.LedgerRecorded(string(tx.Type))

	s.logger.Info("RecordTransaction: recorded id=%s", tx.ID)
	return &tx, nil
}

// DailyRevenue сумма приходов за календарный день
func (s *Service) DailyRevenue(ctx context.Context, date time.Time) int64 {
	return s.sum(domain.TransactionIncome, func(tx domain.CashTransaction) bool {
		return s.sameDay(tx.CreatedAt, date)
	})
}

// DailyExpenses сумма расходов за календарный день
func (s *Service) DailyExpenses(ctx context.Context, date time.Time) int64 {
	return s.sum(domain.TransactionExpense, func(tx domain.CashTransaction) bool {
		return s.sameDay(tx.CreatedAt, date)
	})
}

// Balance приходы минус расходы за всё время
func (s *Service) Balance(ctx context.Context) int64 {
	summary := s.Summary(ctx)
	return summary.Balance
}

// Summary итоги по всему журналу
func (s *Service) Summary(ctx context.Context) models.Summary {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var summary models.Summary
	for _, tx := range s.transactions {
		switch tx.Type {
		case domain.TransactionIncome:
			summary.Income += tx.Amount
		case domain.TransactionExpense:
			summary.Expense += tx.Amount
		}
	}
	summary.Balance = summary.Income - summary.Expense
	summary.Count = len(s.transactions)
	return summary
}

// ForDate операции за календарный день, новые первыми
func (s *Service) ForDate(ctx context.Context, date time.Time) []domain.CashTransaction {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]domain.CashTransaction, 0)
	for i := len(s.transactions) - 1; i >= 0; i-- {
		if s.sameDay(s.transactions[i].CreatedAt, date) {
			result = append(result, s.transactions[i])
		}
	}
	return result
}

func (s *Service) sum(txType domain.TransactionType, keep func(tx domain.CashTransaction) bool) int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var total int64
	for _, tx := range s.transactions {
		if tx.Type == txType && keep(tx) {
			total += tx.Amount
		}
	}
	return total
}

// sameDay сравнивает календарные дни в часовом поясе студии
func (s *Service) sameDay(at, date time.Time) bool {
	y1, m1, d1 := at.In(s.location).Date()
	y2, m2, d2 := date.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
