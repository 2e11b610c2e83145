package clients

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-StudioBooking/internal/domain"
	"github.com/m04kA/SMC-StudioBooking/internal/service/clients/models"
)

// Service реестр клиентов студии
type Service struct {
	mu      sync.RWMutex
	clients map[string]*domain.Client
	order   []string

	repo         Repository
	policy       MatchPolicy
	location     *time.Location
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр реестра клиентов
func NewService(repo Repository, policy MatchPolicy, location *time.Location, logger Logger) *Service {
	if policy == nil {
		policy = DefaultMatchPolicy{}
	}
	if location == nil {
		location = time.Local
	}
	return &Service{
		clients:      make(map[string]*domain.Client),
		repo:         repo,
		policy:       policy,
		location:     location,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Restore загружает сохранённых клиентов
func (s *Service) Restore(clients []*domain.Client) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sort.SliceStable(clients, func(i, j int) bool {
		if clients[i].CreatedAt.Equal(clients[j].CreatedAt) {
			return clients[i].ID < clients[j].ID
		}
		return clients[i].CreatedAt.Before(clients[j].CreatedAt)
	})

	s.clients = make(map[string]*domain.Client, len(clients))
	s.order = s.order[:0]
	for _, c := range clients {
		cp := c.Clone()
		cp.CreatedAt = cp.CreatedAt.In(s.location)
		if cp.LastVisit != nil {
			lastVisit := cp.LastVisit.In(s.location)
			cp.LastVisit = &lastVisit
		}
		s.clients[cp.ID] = cp
		s.order = append(s.order, cp.ID)
	}

	s.logger.Info("Restore: loaded %d clients", len(clients))
}

// Resolve находит клиента по политике совпадения или создаёт нового
func (s *Service) Resolve(ctx context.Context, name, phone string) (*models.ResolveResult, error) {
	name = strings.TrimSpace(name)
	phone = strings.TrimSpace(phone)

	if name == "" {
		return nil, ErrNameRequired
	}
	if phone == "" {
		return nil, ErrPhoneRequired
	}
	if len(name) > domain.MaxNameLength {
		return nil, fmt.Errorf("%w: name is too long", ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if existing := s.policy.Match(s.ordered(), name, phone); existing != nil {
		s.logger.Info("ResolveClient: matched client id=%s", existing.ID)
		return &models.ResolveResult{ClientID: existing.ID}, nil
	}

	client := &domain.Client{
		ID:               uuid.NewString(),
		Name:             name,
		Phone:            phone,
		FavoriteServices: []string{},
		CreatedAt:        s.timeProvider.Now(),
	}

	if err := s.repo.SaveClient(ctx, client); err != nil {
		s.logger.Error("ResolveClient: repository error: %v", err)
		return nil, fmt.Errorf("%w: Resolve - repository error: %v", ErrInternal, err)
	}

	s.clients[client.ID] = client
	s.order = append(s.order, client.ID)

	s.logger.Info("ResolveClient: created client id=%s", client.ID)
	return &models.ResolveResult{ClientID: client.ID, Created: true}, nil
}

// Client возвращает копию клиента по ID
func (s *Service) Client(id string) (*domain.Client, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.clients[id]
	if !ok {
		return nil, false
	}
	return c.Clone(), true
}

// Get получает клиента по ID
func (s *Service) Get(ctx context.Context, id string) (*domain.Client, error) {
	c, ok := s.Client(id)
	if !ok {
		s.logger.Warn("GetClient: client id=%s not found", id)
		return nil, ErrClientNotFound
	}
	return c, nil
}

// List возвращает клиентов в порядке создания
func (s *Service) List(ctx context.Context) []*domain.Client {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*domain.Client, 0, len(s.order))
	for _, c := range s.ordered() {
		result = append(result, c.Clone())
	}
	return result
}

// Search ищет по подстроке имени (без учёта регистра) или телефона
func (s *Service) Search(ctx context.Context, query string) []*domain.Client {
	query = strings.TrimSpace(query)
	if query == "" {
		return s.List(ctx)
	}

	lowered := strings.ToLower(query)
	digits := NormalizePhone(query)

	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*domain.Client, 0)
	for _, c := range s.ordered() {
		matchName := strings.Contains(strings.ToLower(c.Name), lowered)
		matchPhone := strings.Contains(c.Phone, query) ||
			(digits != "" && strings.Contains(NormalizePhone(c.Phone), digits))
		if matchName || matchPhone {
			result = append(result, c.Clone())
		}
	}
	return result
}

// Update обновляет имя, email и заметки клиента
func (s *Service) Update(ctx context.Context, id string, req *models.UpdateClientRequest) (*domain.Client, error) {
	s.logger.Info("UpdateClient: id=%s", id)

	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.clients[id]
	if !ok {
		return nil, ErrClientNotFound
	}

	updated := current.Clone()
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, ErrNameRequired
		}
		updated.Name = name
	}
	if req.Email != nil {
		email := strings.TrimSpace(*req.Email)
		if email != "" && !strings.Contains(email, "@") {
			return nil, fmt.Errorf("%w: invalid email", ErrInvalidInput)
		}
		updated.Email = email
	}
	if req.Notes != nil {
		if len(*req.Notes) > domain.MaxNotesLength {
			return nil, fmt.Errorf("%w: notes are too long", ErrInvalidInput)
		}
		updated.Notes = *req.Notes
	}

	if err := s.repo.SaveClient(ctx, updated); err != nil {
		s.logger.Error("UpdateClient: repository error for id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.clients[id] = updated
	return updated.Clone(), nil
}

// RecordVisit увеличивает счётчик визитов и дату последнего визита
func (s *Service) RecordVisit(ctx context.Context, id string, at time.Time) error {
	if err := s.SaveVisit(ctx, id, at); err != nil {
		return err
	}
	s.ApplyVisit(id, at)
	return nil
}

// SaveVisit сохраняет клиента с учётом визита, не меняя состояние в памяти.
// Вызывается внутри транзакции; после фиксации нужен ApplyVisit.
func (s *Service) SaveVisit(ctx context.Context, id string, at time.Time) error {
	s.mu.RLock()
	current, ok := s.clients[id]
	var updated *domain.Client
	if ok {
		updated = withVisit(current, at)
	}
	s.mu.RUnlock()

	if !ok {
		return ErrClientNotFound
	}

	if err := s.repo.SaveClient(ctx, updated); err != nil {
		s.logger.Error("SaveVisit: repository error for client id=%s: %v", id, err)
		return fmt.Errorf("%w: SaveVisit - repository error: %v", ErrInternal, err)
	}
	return nil
}

// ApplyVisit учитывает уже сохранённый визит в памяти
func (s *Service) ApplyVisit(id string, at time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.clients[id]
	if !ok {
		s.logger.Warn("ApplyVisit: client id=%s not found", id)
		return
	}
	s.clients[id] = withVisit(current, at)
}

func withVisit(c *domain.Client, at time.Time) *domain.Client {
	updated := c.Clone()
	updated.TotalVisits++
	if updated.LastVisit == nil || at.After(*updated.LastVisit) {
		visit := at
		updated.LastVisit = &visit
	}
	return updated
}

// SetFavorites сохраняет производный список любимых услуг
func (s *Service) SetFavorites(ctx context.Context, id string, serviceIDs []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.clients[id]
	if !ok {
		return ErrClientNotFound
	}

	updated := current.Clone()
	updated.FavoriteServices = append([]string{}, serviceIDs...)

	if err := s.repo.SaveClient(ctx, updated); err != nil {
		s.logger.Error("SetFavorites: repository error for client id=%s: %v", id, err)
		return fmt.Errorf("%w: SetFavorites - repository error: %v", ErrInternal, err)
	}

	s.clients[id] = updated
	return nil
}

// ordered вызывается под блокировкой
func (s *Service) ordered() []*domain.Client {
	result := make([]*domain.Client, 0, len(s.order))
	for _, id := range s.order {
		result = append(result, s.clients[id])
	}
	return result
}
