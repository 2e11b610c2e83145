package appointments

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-StudioBooking/internal/domain"
	"github.com/m04kA/SMC-StudioBooking/internal/service/appointments/models"
	"github.com/m04kA/SMC-StudioBooking/internal/service/availability"
	"github.com/m04kA/SMC-StudioBooking/pkg/types"
)

// Исходы операций для метрик
const (
	OutcomeCreated          = "created"
	OutcomeConflict         = "conflict"
	OutcomeRejected         = "rejected"
	OutcomeRelocated        = "relocated"
	OutcomeRelocateConflict = "relocate_conflict"
)

// Options параметры хранилища записей
type Options struct {
	SlotStepMinutes int
	Location        *time.Location
	Policy          TransitionPolicy
}

// Service единственное хранилище записей студии.
// Все мутации выполняют проверку и изменение под одной блокировкой записи.
type Service struct {
	mu           sync.RWMutex
	appointments index

	repo       Repository
	tx         TxManager
	catalog    Catalog
	clients    ClientRegistry
	checker    AvailabilityChecker
	publishers []EventPublisher
	metrics    Metrics

	step         int
	location     *time.Location
	policy       TransitionPolicy
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр хранилища записей
func NewService(
	repo Repository,
	tx TxManager,
	catalog Catalog,
	clients ClientRegistry,
	checker AvailabilityChecker,
	metrics Metrics,
	logger Logger,
	opts Options,
) *Service {
	if metrics == nil {
		metrics = noopMetrics{}
	}
	if opts.SlotStepMinutes <= 0 {
		opts.SlotStepMinutes = domain.DefaultSlotStepMinutes
	}
	if opts.Location == nil {
		opts.Location = time.Local
	}
	if opts.Policy == nil {
		opts.Policy = AllowAll{}
	}

	return &Service{
		appointments: make(index),
		repo:         repo,
		tx:           tx,
		catalog:      catalog,
		clients:      clients,
		checker:      checker,
		metrics:      metrics,
		step:         opts.SlotStepMinutes,
		location:     opts.Location,
		policy:       opts.Policy,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Subscribe добавляет получателя событий; вызывается до начала обслуживания запросов
func (s *Service) Subscribe(p EventPublisher) {
	s.publishers = append(s.publishers, p)
}

// Restore загружает сохранённые записи. Время переводится в часовой пояс студии:
// драйвер возвращает timestamptz в UTC или в зоне сессии.
func (s *Service) Restore(list []*domain.Appointment) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.appointments = make(index, len(list))
	for _, a := range list {
		cp := a.Clone()
		cp.StartTime = cp.StartTime.In(s.location)
		cp.EndTime = cp.EndTime.In(s.location)
		cp.CreatedAt = cp.CreatedAt.In(s.location)
		s.appointments[cp.ID] = cp
	}

	s.logger.Info("Restore: loaded %d appointments", len(list))
}

// Create создаёт запись, если слот свободен
func (s *Service) Create(ctx context.Context, in *models.CreateInput) (*domain.Appointment, error) {
	s.logger.Info("CreateAppointment: client=%s, master=%s, date=%s, time=%s, services=%v",
		in.ClientID, in.MasterID, in.Date.Format(domain.DateFormat), in.StartTime, in.ServiceIDs)

	s.mu.Lock()
	appt, err := s.create(ctx, in)
	if err == nil {
		s.publish(ctx, domain.EventAppointmentCreated, appt)
	}
	s.mu.Unlock()

	if err != nil {
		s.countFailure(err, OutcomeConflict)
		return nil, err
	}

	s.metrics.AppointmentOutcome(OutcomeCreated)
	s.logger.Info("CreateAppointment: created appointment id=%s", appt.ID)
	return appt.Clone(), nil
}

func (s *Service) create(ctx context.Context, in *models.CreateInput) (*domain.Appointment, error) {
	client, ok := s.clients.Client(in.ClientID)
	if !ok {
		s.logger.Warn("CreateAppointment: client id=%s not found", in.ClientID)
		return nil, ErrClientNotFound
	}

	if len(in.ServiceIDs) == 0 {
		return nil, ErrServicesRequired
	}
	if len(in.ServiceIDs) > domain.MaxServicesPerVisit {
		return nil, fmt.Errorf("%w: too many services", ErrInvalidInput)
	}
	if len(in.Notes) > domain.MaxNotesLength {
		return nil, fmt.Errorf("%w: notes are too long", ErrInvalidInput)
	}

	duration, err := s.duration(in.ServiceIDs, true)
	if err != nil {
		s.logger.Warn("CreateAppointment: services=%v rejected: %v", in.ServiceIDs, err)
		return nil, err
	}

	if err := s.checkMaster(in.MasterID); err != nil {
		s.logger.Warn("CreateAppointment: master=%s rejected: %v", in.MasterID, err)
		return nil, err
	}

	if err := s.checkStartTime(in.StartTime); err != nil {
		return nil, err
	}

	date := s.day(in.Date)
	req := availability.Request{
		MasterID:        in.MasterID,
		Date:            date,
		StartTime:       in.StartTime,
		DurationMinutes: duration,
	}

	available, err := s.checker.IsAvailable(ctx, s.appointments, req)
	if err != nil {
		return nil, err
	}
	if !available {
		s.logger.Warn("CreateAppointment: slot master=%s, date=%s, time=%s is not available",
			in.MasterID, date.Format(domain.DateFormat), in.StartTime)
		return nil, ErrSlotNotAvailable
	}

	start, end := req.Interval()
	appt := &domain.Appointment{
		ID:          uuid.NewString(),
		ClientID:    client.ID,
		ClientName:  client.Name,
		ClientPhone: client.Phone,
		MasterID:    in.MasterID,
		ServiceIDs:  append([]string(nil), in.ServiceIDs...),
		StartTime:   start,
		EndTime:     end,
		Status:      domain.StatusNew,
		Notes:       strings.TrimSpace(in.Notes),
		CreatedAt:   s.timeProvider.Now(),
		CreatedBy:   in.CreatedBy,
	}

	err = s.tx.Do(ctx, func(ctx context.Context) error {
		if err := s.repo.SaveAppointment(ctx, appt); err != nil {
			return err
		}
		return s.clients.SaveVisit(ctx, appt.ClientID, appt.StartTime)
	})
	if err != nil {
		s.logger.Error("CreateAppointment: persistence error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	// счётчики клиента меняются в памяти только после фиксации транзакции
	s.clients.ApplyVisit(appt.ClientID, appt.StartTime)
	s.appointments[appt.ID] = appt
	return appt.Clone(), nil
}

// UpdateStatus меняет статус записи по политике переходов
func (s *Service) UpdateStatus(ctx context.Context, id string, status domain.AppointmentStatus) (*domain.Appointment, error) {
	return s.Update(ctx, id, models.Patch{Status: &status})
}

// Update применяет изменения статуса, заметок и услуг атомарно
func (s *Service) Update(ctx context.Context, id string, patch models.Patch) (*domain.Appointment, error) {
	s.logger.Info("UpdateAppointment: id=%s", id)

	s.mu.Lock()
	appt, changed, err := s.update(ctx, id, patch)
	if err == nil && changed {
		event := domain.EventAppointmentUpdated
		if patch.Status != nil && patch.Notes == nil && patch.ServiceIDs == nil {
			event = domain.EventAppointmentStatusChanged
		}
		s.publish(ctx, event, appt)
	}
	s.mu.Unlock()

	if err != nil {
		s.countFailure(err, OutcomeConflict)
		return nil, err
	}
	if !changed {
		return appt, nil
	}
	return appt.Clone(), nil
}

func (s *Service) update(ctx context.Context, id string, patch models.Patch) (*domain.Appointment, bool, error) {
	current, ok := s.appointments[id]
	if !ok {
		s.logger.Warn("UpdateAppointment: appointment id=%s not found", id)
		return nil, false, ErrAppointmentNotFound
	}

	updated := current.Clone()

	if patch.Status != nil {
		status := *patch.Status
		if !status.IsValid() {
			return nil, false, ErrInvalidStatus
		}
		if !s.policy.Allow(current.Status, status) {
			s.logger.Warn("UpdateAppointment: transition %s -> %s not allowed for id=%s", current.Status, status, id)
			return nil, false, ErrTransitionNotAllowed
		}
		updated.Status = status
	}

	if patch.Notes != nil {
		if len(*patch.Notes) > domain.MaxNotesLength {
			return nil, false, fmt.Errorf("%w: notes are too long", ErrInvalidInput)
		}
		updated.Notes = strings.TrimSpace(*patch.Notes)
	}

	servicesChanged := false
	if patch.ServiceIDs != nil {
		if len(patch.ServiceIDs) == 0 {
			return nil, false, ErrServicesRequired
		}
		if len(patch.ServiceIDs) > domain.MaxServicesPerVisit {
			return nil, false, fmt.Errorf("%w: too many services", ErrInvalidInput)
		}
		duration, err := s.duration(patch.ServiceIDs, true)
		if err != nil {
			return nil, false, err
		}
		updated.ServiceIDs = append([]string(nil), patch.ServiceIDs...)
		updated.EndTime = updated.StartTime.Add(time.Duration(duration) * time.Minute)
		servicesChanged = !equalIDs(current.ServiceIDs, updated.ServiceIDs) || !updated.EndTime.Equal(current.EndTime)
	}

	if updated.Status == current.Status && updated.Notes == current.Notes && !servicesChanged {
		return current.Clone(), false, nil
	}

	if updated.OccupiesSlot() {
		switch {
		case servicesChanged:
			date := s.day(updated.StartTime)
			available, err := s.checker.IsAvailable(ctx, s.appointments, availability.Request{
				MasterID:             updated.MasterID,
				Date:                 date,
				StartTime:            updated.StartTimeOfDay(),
				DurationMinutes:      updated.DurationMinutes(),
				ExcludeAppointmentID: id,
			})
			if err != nil {
				return nil, false, err
			}
			if !available {
				s.logger.Warn("UpdateAppointment: new services do not fit for id=%s", id)
				return nil, false, ErrSlotNotAvailable
			}
		case current.IsCancelled():
			date := s.day(updated.StartTime)
			if conflict := availability.FindConflict(
				s.appointments, updated.MasterID, date, updated.StartTime, updated.EndTime, id,
			); conflict != nil {
				s.logger.Warn("UpdateAppointment: cannot restore id=%s, overlaps id=%s", id, conflict.ID)
				return nil, false, ErrSlotNotAvailable
			}
		}
	}

	if err := s.repo.SaveAppointment(ctx, updated); err != nil {
		s.logger.Error("UpdateAppointment: repository error for id=%s: %v", id, err)
		return nil, false, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.appointments[id] = updated
	s.logger.Info("UpdateAppointment: updated id=%s, status=%s", id, updated.Status)
	return updated.Clone(), true, nil
}

// Relocate переносит запись к мастеру и на время целиком или не переносит совсем
func (s *Service) Relocate(ctx context.Context, in *models.RelocateInput) (*domain.Appointment, error) {
	s.logger.Info("RelocateAppointment: id=%s, master=%s, time=%s", in.AppointmentID, in.MasterID, in.StartTime)

	s.mu.Lock()
	appt, err := s.relocate(ctx, in)
	if err == nil {
		s.publish(ctx, domain.EventAppointmentRelocated, appt)
	}
	s.mu.Unlock()

	if err != nil {
		s.countFailure(err, OutcomeRelocateConflict)
		return nil, err
	}

	s.metrics.AppointmentOutcome(OutcomeRelocated)
	return appt.Clone(), nil
}

func (s *Service) relocate(ctx context.Context, in *models.RelocateInput) (*domain.Appointment, error) {
	current, ok := s.appointments[in.AppointmentID]
	if !ok {
		s.logger.Warn("RelocateAppointment: appointment id=%s not found", in.AppointmentID)
		return nil, ErrAppointmentNotFound
	}

	if err := s.checkMaster(in.MasterID); err != nil {
		return nil, err
	}
	if err := s.checkStartTime(in.StartTime); err != nil {
		return nil, err
	}

	duration, err := s.duration(current.ServiceIDs, false)
	if err != nil {
		s.logger.Warn("RelocateAppointment: using stored duration for id=%s: %v", current.ID, err)
		duration = current.DurationMinutes()
	}

	date := s.day(current.StartTime)
	if in.Date != nil {
		date = s.day(*in.Date)
	}

	req := availability.Request{
		MasterID:             in.MasterID,
		Date:                 date,
		StartTime:            in.StartTime,
		DurationMinutes:      duration,
		ExcludeAppointmentID: current.ID,
	}
	available, err := s.checker.IsAvailable(ctx, s.appointments, req)
	if err != nil {
		return nil, err
	}
	if !available {
		s.logger.Warn("RelocateAppointment: slot master=%s, date=%s, time=%s is not available",
			in.MasterID, date.Format(domain.DateFormat), in.StartTime)
		return nil, ErrSlotNotAvailable
	}

	updated := current.Clone()
	updated.MasterID = in.MasterID
	updated.StartTime, updated.EndTime = req.Interval()

	if err := s.repo.SaveAppointment(ctx, updated); err != nil {
		s.logger.Error("RelocateAppointment: repository error for id=%s: %v", current.ID, err)
		return nil, fmt.Errorf("%w: Relocate - repository error: %v", ErrInternal, err)
	}

	s.appointments[updated.ID] = updated
	s.logger.Info("RelocateAppointment: moved id=%s to master=%s at %s", updated.ID, updated.MasterID,
		updated.StartTime.Format(time.RFC3339))
	return updated.Clone(), nil
}

// Delete удаляет запись; счётчики клиента не меняются
func (s *Service) Delete(ctx context.Context, id string) error {
	s.logger.Info("DeleteAppointment: id=%s", id)

	s.mu.Lock()
	current, ok := s.appointments[id]
	if !ok {
		s.mu.Unlock()
		s.logger.Warn("DeleteAppointment: appointment id=%s not found", id)
		return ErrAppointmentNotFound
	}
	if err := s.repo.DeleteAppointment(ctx, id); err != nil {
		s.mu.Unlock()
		s.logger.Error("DeleteAppointment: repository error for id=%s: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}
	delete(s.appointments, id)
	s.publish(ctx, domain.EventAppointmentDeleted, current)
	s.mu.Unlock()

	return nil
}

// IsAvailable проверяет слот относительно текущего состояния хранилища
func (s *Service) IsAvailable(ctx context.Context, req availability.Request) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	req.Date = s.day(req.Date)
	return s.checker.IsAvailable(ctx, s.appointments, req)
}

// Snapshot копия записей на день для многократных проверок без блокировки
func (s *Service) Snapshot(date time.Time) availability.Snapshot {
	return availability.Snapshot(s.ForDate(context.Background(), date))
}

// Get возвращает запись по ID
func (s *Service) Get(ctx context.Context, id string) (*domain.Appointment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	appt, ok := s.appointments[id]
	if !ok {
		return nil, ErrAppointmentNotFound
	}
	return appt.Clone(), nil
}

// ForDate записи всех мастеров за день
func (s *Service) ForDate(ctx context.Context, date time.Time) []*domain.Appointment {
	date = s.day(date)
	return s.filter(func(a *domain.Appointment) bool {
		return a.OnDate(date)
	})
}

// ForMaster записи мастера за день
func (s *Service) ForMaster(ctx context.Context, masterID string, date time.Time) []*domain.Appointment {
	date = s.day(date)
	return s.filter(func(a *domain.Appointment) bool {
		return a.MasterID == masterID && a.OnDate(date)
	})
}

// ForMasterBetween записи мастера в полуинтервале [from, to)
func (s *Service) ForMasterBetween(ctx context.Context, masterID string, from, to time.Time) []*domain.Appointment {
	return s.filter(func(a *domain.Appointment) bool {
		return a.MasterID == masterID && !a.StartTime.Before(from) && a.StartTime.Before(to)
	})
}

// ForClient все записи клиента
func (s *Service) ForClient(ctx context.Context, clientID string) []*domain.Appointment {
	return s.filter(func(a *domain.Appointment) bool {
		return a.ClientID == clientID
	})
}

// All все записи в порядке начала
func (s *Service) All(ctx context.Context) []*domain.Appointment {
	return s.filter(func(*domain.Appointment) bool { return true })
}

func (s *Service) filter(keep func(a *domain.Appointment) bool) []*domain.Appointment {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*domain.Appointment, 0)
	for _, a := range s.appointments {
		if keep(a) {
			result = append(result, a.Clone())
		}
	}
	sortByStart(result)
	return result
}

// duration суммирует длительности услуг из каталога
func (s *Service) duration(serviceIDs []string, requireActive bool) (int, error) {
	total := 0
	for _, id := range serviceIDs {
		svc, ok := s.catalog.Service(id)
		if !ok {
			return 0, fmt.Errorf("%w: id=%s", ErrServiceNotFound, id)
		}
		if requireActive && !svc.IsActive {
			return 0, fmt.Errorf("%w: id=%s", ErrServiceInactive, id)
		}
		total += svc.DurationMinutes
	}
	return total, nil
}

func (s *Service) checkMaster(id string) error {
	master, ok := s.catalog.Master(id)
	if !ok {
		return ErrMasterNotFound
	}
	if !master.IsActive {
		return ErrMasterInactive
	}
	return nil
}

func (s *Service) checkStartTime(start types.TimeString) error {
	minutes := start.Minutes()
	if minutes < 0 {
		return fmt.Errorf("%w: %q is not HH:MM", ErrInvalidTimeSlot, start)
	}
	if minutes%s.step != 0 {
		return fmt.Errorf("%w: %s is not aligned to %d minutes", ErrInvalidTimeSlot, start, s.step)
	}
	return nil
}

// day полночь календарного дня t в часовом поясе студии
func (s *Service) day(t time.Time) time.Time {
	y, m, d := t.In(s.location).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, s.location)
}

func (s *Service) countFailure(err error, conflictOutcome string) {
	switch domain.Kind(err) {
	case domain.KindConflict:
		s.metrics.AppointmentOutcome(conflictOutcome)
	case domain.KindValidation, domain.KindNotFound:
		s.metrics.AppointmentOutcome(OutcomeRejected)
	}
}

// publish вызывается под блокировкой записи, поэтому события доходят в порядке фиксации
func (s *Service) publish(ctx context.Context, eventType domain.EventType, appt *domain.Appointment) {
	if len(s.publishers) == 0 {
		return
	}
	event := domain.AppointmentEvent{
		ID:          uuid.NewString(),
		Type:        eventType,
		Appointment: *appt.Clone(),
		OccurredAt:  s.timeProvider.Now(),
	}
	for _, p := range s.publishers {
		p.Publish(ctx, event)
	}
}

// index записи по ID; читается только под блокировкой
type index map[string]*domain.Appointment

// MasterAppointmentsOn реализует availability.AppointmentReader
func (ix index) MasterAppointmentsOn(masterID string, date time.Time) []*domain.Appointment {
	result := make([]*domain.Appointment, 0)
	for _, a := range ix {
		if a.MasterID == masterID && a.OnDate(date) {
			result = append(result, a)
		}
	}
	return result
}

func sortByStart(list []*domain.Appointment) {
	sort.Slice(list, func(i, j int) bool {
		if list[i].StartTime.Equal(list[j].StartTime) {
			return list[i].ID < list[j].ID
		}
		return list[i].StartTime.Before(list[j].StartTime)
	})
}

func equalIDs(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
