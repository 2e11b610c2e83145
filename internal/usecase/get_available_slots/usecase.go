package get_available_slots

import (
	"context"

	"github.com/m04kA/SMC-StudioBooking/internal/domain"
	"github.com/m04kA/SMC-StudioBooking/internal/service/availability"
	"github.com/m04kA/SMC-StudioBooking/internal/slots"
	"github.com/m04kA/SMC-StudioBooking/pkg/types"
)

// UseCase use case для получения свободных слотов мастера
type UseCase struct {
	catalog      Catalog
	appointments AppointmentStore
	checker      AvailabilityChecker
	grid         Grid
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	catalog Catalog,
	appointments AppointmentStore,
	checker AvailabilityChecker,
	grid Grid,
	logger Logger,
) *UseCase {
	return &UseCase{
		catalog:      catalog,
		appointments: appointments,
		checker:      checker,
		grid:         grid,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute перебирает сетку слотов и оставляет те, где мастер свободен.
// Результат только подсказка: окончательная проверка выполняется при создании записи.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: master=%s, date=%s, services=%v, duration=%d",
		req.MasterID, req.Date.Format(domain.DateFormat), req.ServiceIDs, req.DurationMinutes)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Мастер
	if _, ok := uc.catalog.Master(req.MasterID); !ok {
		uc.logger.Warn("GetAvailableSlots: master id=%s not found", req.MasterID)
		return nil, ErrMasterNotFound
	}

	// 3. Длительность по услугам или явно
	duration := req.DurationMinutes
	if len(req.ServiceIDs) > 0 {
		d, err := uc.durationOf(req.ServiceIDs)
		if err != nil {
			uc.logger.Warn("GetAvailableSlots: services=%v rejected: %v", req.ServiceIDs, err)
			return nil, err
		}
		duration = d
	}

	response := &Response{
		Date:            req.Date,
		MasterID:        req.MasterID,
		DurationMinutes: duration,
		Slots:           []types.TimeString{},
	}

	now := uc.timeProvider.Now()
	if isDateInPast(req.Date, now) {
		uc.logger.Info("GetAvailableSlots: date %s is in the past", req.Date.Format(domain.DateFormat))
		return response, nil
	}

	// 4. Один снимок записей на весь перебор
	snapshot := uc.appointments.Snapshot(req.Date)

	for start := range slots.Grid(uc.grid.StartHour, uc.grid.EndHour, uc.grid.StepMinutes) {
		if !notStarted(start, req.Date, now) {
			continue
		}
		ok, err := uc.checker.IsAvailable(ctx, snapshot, availability.Request{
			MasterID:        req.MasterID,
			Date:            req.Date,
			StartTime:       start,
			DurationMinutes: duration,
		})
		if err != nil {
			uc.logger.Warn("GetAvailableSlots: check failed at %s: %v", start, err)
			return nil, err
		}
		if ok {
			response.Slots = append(response.Slots, start)
		}
	}

	uc.logger.Info("GetAvailableSlots: found %d free slots for master=%s, date=%s",
		len(response.Slots), req.MasterID, req.Date.Format(domain.DateFormat))
	return response, nil
}
