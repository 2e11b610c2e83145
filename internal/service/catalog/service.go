package catalog

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-StudioBooking/internal/domain"
	"github.com/m04kA/SMC-StudioBooking/internal/service/catalog/models"
)

// Service каталог мастеров и услуг студии.
// Мастера и услуги не удаляются, а деактивируются: на них ссылается история записей.
type Service struct {
	mu           sync.RWMutex
	masters      map[string]*domain.Master
	masterOrder  []string
	services     map[string]*domain.Service
	serviceOrder []string

	repo         Repository
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр каталога
func NewService(repo Repository, logger Logger) *Service {
	return &Service{
		masters:      make(map[string]*domain.Master),
		services:     make(map[string]*domain.Service),
		repo:         repo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Restore загружает сохранённое состояние каталога
func (s *Service) Restore(masters []*domain.Master, services []*domain.Service) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sort.SliceStable(masters, func(i, j int) bool {
		if masters[i].CreatedAt.Equal(masters[j].CreatedAt) {
			return masters[i].ID < masters[j].ID
		}
		return masters[i].CreatedAt.Before(masters[j].CreatedAt)
	})
	sort.SliceStable(services, func(i, j int) bool {
		if services[i].CreatedAt.Equal(services[j].CreatedAt) {
			return services[i].ID < services[j].ID
		}
		return services[i].CreatedAt.Before(services[j].CreatedAt)
	})

	s.masters = make(map[string]*domain.Master, len(masters))
	s.masterOrder = s.masterOrder[:0]
	for _, m := range masters {
		cp := *m
		s.masters[m.ID] = &cp
		s.masterOrder = append(s.masterOrder, m.ID)
	}

	s.services = make(map[string]*domain.Service, len(services))
	s.serviceOrder = s.serviceOrder[:0]
	for _, svc := range services {
		cp := *svc
		s.services[svc.ID] = &cp
		s.serviceOrder = append(s.serviceOrder, svc.ID)
	}

	s.logger.Info("Restore: loaded %d masters and %d services", len(masters), len(services))
}

// IsEmpty сообщает, что каталог ещё не заполнен
func (s *Service) IsEmpty() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.masters) == 0 && len(s.services) == 0
}

// Master возвращает копию мастера по ID
func (s *Service) Master(id string) (domain.Master, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	m, ok := s.masters[id]
	if !ok {
		return domain.Master{}, false
	}
	return *m, true
}

// Service возвращает копию услуги по ID
func (s *Service) Service(id string) (domain.Service, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	svc, ok := s.services[id]
	if !ok {
		return domain.Service{}, false
	}
	return *svc, true
}

// ListMasters возвращает мастеров в порядке добавления
func (s *Service) ListMasters(ctx context.Context, activeOnly bool) []domain.Master {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]domain.Master, 0, len(s.masterOrder))
	for _, id := range s.masterOrder {
		m := s.masters[id]
		if activeOnly && !m.IsActive {
			continue
		}
		result = append(result, *m)
	}
	return result
}

// ListServices возвращает услуги в порядке каталога
func (s *Service) ListServices(ctx context.Context, activeOnly bool) []domain.Service {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]domain.Service, 0, len(s.serviceOrder))
	for _, id := range s.serviceOrder {
		svc := s.services[id]
		if activeOnly && !svc.IsActive {
			continue
		}
		result = append(result, *svc)
	}
	return result
}

// GetMaster получает мастера по ID
func (s *Service) GetMaster(ctx context.Context, id string) (*domain.Master, error) {
	m, ok := s.Master(id)
	if !ok {
		s.logger.Warn("GetMaster: master id=%s not found", id)
		return nil, ErrMasterNotFound
	}
	return &m, nil
}

// GetService получает услугу по ID
func (s *Service) GetService(ctx context.Context, id string) (*domain.Service, error) {
	svc, ok := s.Service(id)
	if !ok {
		s.logger.Warn("GetService: service id=%s not found", id)
		return nil, ErrServiceNotFound
	}
	return &svc, nil
}

// CreateMaster добавляет мастера
func (s *Service) CreateMaster(ctx context.Context, req *models.CreateMasterRequest) (*domain.Master, error) {
	s.logger.Info("CreateMaster: name=%q", req.Name)

	name := strings.TrimSpace(req.Name)
	if name == "" || len(name) > domain.MaxNameLength {
		return nil, fmt.Errorf("%w: master name is required", ErrInvalidInput)
	}

	schedule := domain.DefaultWorkSchedule()
	if req.Schedule != nil {
		schedule = *req.Schedule
	}
	if err := schedule.Validate(); err != nil {
		s.logger.Warn("CreateMaster: invalid schedule: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidSchedule, err)
	}

	master := &domain.Master{
		ID:             uuid.NewString(),
		Name:           name,
		Specialization: strings.TrimSpace(req.Specialization),
		Phone:          strings.TrimSpace(req.Phone),
		Color:          req.Color,
		Schedule:       schedule,
		IsActive:       true,
		CreatedAt:      s.timeProvider.Now(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.repo.SaveMaster(ctx, master); err != nil {
		s.logger.Error("CreateMaster: repository error: %v", err)
		return nil, fmt.Errorf("%w: CreateMaster - repository error: %v", ErrInternal, err)
	}

	s.masters[master.ID] = master
	s.masterOrder = append(s.masterOrder, master.ID)

	s.logger.Info("CreateMaster: created master id=%s", master.ID)
	cp := *master
	return &cp, nil
}

// UpdateMaster частично обновляет мастера
func (s *Service) UpdateMaster(ctx context.Context, id string, req *models.UpdateMasterRequest) (*domain.Master, error) {
	s.logger.Info("UpdateMaster: id=%s", id)

	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.masters[id]
	if !ok {
		s.logger.Warn("UpdateMaster: master id=%s not found", id)
		return nil, ErrMasterNotFound
	}

	updated := *current
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" || len(name) > domain.MaxNameLength {
			return nil, fmt.Errorf("%w: master name is required", ErrInvalidInput)
		}
		updated.Name = name
	}
	if req.Specialization != nil {
		updated.Specialization = strings.TrimSpace(*req.Specialization)
	}
	if req.Phone != nil {
		updated.Phone = strings.TrimSpace(*req.Phone)
	}
	if req.Color != nil {
		updated.Color = *req.Color
	}
	if req.Schedule != nil {
		if err := req.Schedule.Validate(); err != nil {
			s.logger.Warn("UpdateMaster: invalid schedule for id=%s: %v", id, err)
			return nil, fmt.Errorf("%w: %v", ErrInvalidSchedule, err)
		}
		updated.Schedule = *req.Schedule
	}
	if req.IsActive != nil {
		updated.IsActive = *req.IsActive
	}

	if err := s.repo.SaveMaster(ctx, &updated); err != nil {
		s.logger.Error("UpdateMaster: repository error for id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateMaster - repository error: %v", ErrInternal, err)
	}

	s.masters[id] = &updated
	cp := updated
	return &cp, nil
}

// DeactivateMaster снимает мастера с записи, сохраняя историю
func (s *Service) DeactivateMaster(ctx context.Context, id string) error {
	inactive := false
	_, err := s.UpdateMaster(ctx, id, &models.UpdateMasterRequest{IsActive: &inactive})
	return err
}

// CreateService добавляет услугу
func (s *Service) CreateService(ctx context.Context, req *models.CreateServiceRequest) (*domain.Service, error) {
	s.logger.Info("CreateService: name=%q, price=%d, duration=%d", req.Name, req.Price, req.DurationMinutes)

	service := &domain.Service{
		ID:              uuid.NewString(),
		Name:            strings.TrimSpace(req.Name),
		Price:           req.Price,
		DurationMinutes: req.DurationMinutes,
		Category:        strings.TrimSpace(req.Category),
		Color:           req.Color,
		IsActive:        true,
		CreatedAt:       s.timeProvider.Now(),
	}
	if err := validateService(service); err != nil {
		s.logger.Warn("CreateService: validation failed: %v", err)
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.repo.SaveService(ctx, service); err != nil {
		s.logger.Error("CreateService: repository error: %v", err)
		return nil, fmt.Errorf("%w: CreateService - repository error: %v", ErrInternal, err)
	}

	s.services[service.ID] = service
	s.serviceOrder = append(s.serviceOrder, service.ID)

	s.logger.Info("CreateService: created service id=%s", service.ID)
	cp := *service
	return &cp, nil
}

// UpdateService частично обновляет услугу.
// Новая цена и длительность сразу отражаются на суммах прошлых записей.
func (s *Service) UpdateService(ctx context.Context, id string, req *models.UpdateServiceRequest) (*domain.Service, error) {
	s.logger.Info("UpdateService: id=%s", id)

	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.services[id]
	if !ok {
		s.logger.Warn("UpdateService: service id=%s not found", id)
		return nil, ErrServiceNotFound
	}

	updated := *current
	if req.Name != nil {
		updated.Name = strings.TrimSpace(*req.Name)
	}
	if req.Price != nil {
		updated.Price = *req.Price
	}
	if req.DurationMinutes != nil {
		updated.DurationMinutes = *req.DurationMinutes
	}
	if req.Category != nil {
		updated.Category = strings.TrimSpace(*req.Category)
	}
	if req.Color != nil {
		updated.Color = *req.Color
	}
	if req.IsActive != nil {
		updated.IsActive = *req.IsActive
	}
	if err := validateService(&updated); err != nil {
		s.logger.Warn("UpdateService: validation failed for id=%s: %v", id, err)
		return nil, err
	}

	if err := s.repo.SaveService(ctx, &updated); err != nil {
		s.logger.Error("UpdateService: repository error for id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateService - repository error: %v", ErrInternal, err)
	}

	s.services[id] = &updated
	cp := updated
	return &cp, nil
}

// DeactivateService убирает услугу из новых записей, сохраняя историю
func (s *Service) DeactivateService(ctx context.Context, id string) error {
	inactive := false
	_, err := s.UpdateService(ctx, id, &models.UpdateServiceRequest{IsActive: &inactive})
	return err
}

func validateService(svc *domain.Service) error {
	if svc.Name == "" || len(svc.Name) > domain.MaxNameLength {
		return fmt.Errorf("%w: service name is required", ErrInvalidInput)
	}
	if svc.Price < 0 {
		return fmt.Errorf("%w: price must not be negative", ErrInvalidInput)
	}
	if svc.DurationMinutes <= 0 || svc.DurationMinutes > domain.MaxServiceDuration {
		return fmt.Errorf("%w: duration must be between 1 and %d minutes", ErrInvalidInput, domain.MaxServiceDuration)
	}
	return nil
}
