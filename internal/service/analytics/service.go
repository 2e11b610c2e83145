package analytics

import (
	"context"
	"sort"

	"github.com/m04kA/SMC-StudioBooking/internal/domain"
	"github.com/m04kA/SMC-StudioBooking/internal/service/analytics/models"
)

// Options лимиты выдачи
type Options struct {
	FavoriteLimit       int
	RecommendationLimit int
}

// Service считает показатели клиента по истории записей.
// Цены берутся из каталога на момент запроса, поэтому правка прайса меняет и прошлые суммы.
type Service struct {
	appointments AppointmentReader
	catalog      Catalog
	clients      ClientReader
	logger       Logger

	favoriteLimit       int
	recommendationLimit int
}

// NewService создает новый экземпляр аналитики клиентов
func NewService(appointments AppointmentReader, catalog Catalog, clients ClientReader, logger Logger, opts Options) *Service {
	if opts.FavoriteLimit <= 0 {
		opts.FavoriteLimit = domain.DefaultFavoriteLimit
	}
	if opts.RecommendationLimit <= 0 {
		opts.RecommendationLimit = domain.DefaultRecommendationLimit
	}
	return &Service{
		appointments:        appointments,
		catalog:             catalog,
		clients:             clients,
		logger:              logger,
		favoriteLimit:       opts.FavoriteLimit,
		recommendationLimit: opts.RecommendationLimit,
	}
}

// AnalyticsFor собирает визиты, траты, средний чек, любимые и рекомендуемые услуги
func (s *Service) AnalyticsFor(ctx context.Context, clientID string) (*models.ClientAnalytics, error) {
	s.logger.Info("AnalyticsFor: client=%s", clientID)

	if _, ok := s.clients.Client(clientID); !ok {
		s.logger.Warn("AnalyticsFor: client id=%s not found", clientID)
		return nil, ErrClientNotFound
	}

	visits := s.visits(ctx, clientID)

	result := &models.ClientAnalytics{
		ClientID:    clientID,
		TotalVisits: len(visits),
	}
	for _, v := range visits {
		result.TotalSpent += s.total(v.ServiceIDs)
		if result.LastVisit == nil || v.StartTime.After(*result.LastVisit) {
			last := v.StartTime
			result.LastVisit = &last
		}
	}
	if result.TotalVisits > 0 {
		result.AverageCheck = float64(result.TotalSpent) / float64(result.TotalVisits)
	}

	result.FavoriteServices = s.favorites(visits)
	result.RecommendedServices = s.recommend(ctx, visits, result.FavoriteServices)
	return result, nil
}

// Favorites любимые услуги клиента
func (s *Service) Favorites(ctx context.Context, clientID string) ([]models.FavoriteService, error) {
	if _, ok := s.clients.Client(clientID); !ok {
		return nil, ErrClientNotFound
	}
	return s.favorites(s.visits(ctx, clientID)), nil
}

// FavoriteIDs идентификаторы любимых услуг для карточки клиента
func (s *Service) FavoriteIDs(ctx context.Context, clientID string) ([]string, error) {
	favorites, err := s.Favorites(ctx, clientID)
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(favorites))
	for _, f := range favorites {
		ids = append(ids, f.ServiceID)
	}
	return ids, nil
}

// Visits неотменённые визиты клиента, новые первыми
func (s *Service) Visits(ctx context.Context, clientID string) ([]models.Visit, error) {
	if _, ok := s.clients.Client(clientID); !ok {
		s.logger.Warn("Visits: client id=%s not found", clientID)
		return nil, ErrClientNotFound
	}

	history := s.visits(ctx, clientID)
	result := make([]models.Visit, 0, len(history))
	for i := len(history) - 1; i >= 0; i-- {
		a := history[i]
		visit := models.Visit{
			AppointmentID: a.ID,
			MasterID:      a.MasterID,
			StartTime:     a.StartTime,
			EndTime:       a.EndTime,
			Status:        a.Status,
			Services:      make([]models.VisitService, 0, len(a.ServiceIDs)),
		}
		for _, id := range a.ServiceIDs {
			name, price := s.lookup(id)
			visit.Services = append(visit.Services, models.VisitService{ServiceID: id, Name: name, Price: price})
			visit.Total += price
		}
		result = append(result, visit)
	}
	return result, nil
}

// Recommended активные услуги вне любимых, сначала из знакомых клиенту категорий
func (s *Service) Recommended(ctx context.Context, clientID string) ([]domain.Service, error) {
	if _, ok := s.clients.Client(clientID); !ok {
		return nil, ErrClientNotFound
	}
	visits := s.visits(ctx, clientID)
	return s.recommend(ctx, visits, s.favorites(visits)), nil
}

// visits неотменённые записи в порядке начала
func (s *Service) visits(ctx context.Context, clientID string) []*domain.Appointment {
	all := s.appointments.ForClient(ctx, clientID)
	result := make([]*domain.Appointment, 0, len(all))
	for _, a := range all {
		if !a.IsCancelled() {
			result = append(result, a)
		}
	}
	return result
}

func (s *Service) favorites(visits []*domain.Appointment) []models.FavoriteService {
	counts := make(map[string]int)
	order := make([]string, 0)
	for _, a := range visits {
		for _, id := range a.ServiceIDs {
			if _, seen := counts[id]; !seen {
				order = append(order, id)
			}
			counts[id]++
		}
	}

	result := make([]models.FavoriteService, 0, len(order))
	for _, id := range order {
		name, _ := s.lookup(id)
		result = append(result, models.FavoriteService{ServiceID: id, Name: name, Count: counts[id]})
	}

	// при равных счётчиках остаётся порядок первого появления
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Count > result[j].Count
	})

	if len(result) > s.favoriteLimit {
		result = result[:s.favoriteLimit]
	}
	return result
}

func (s *Service) recommend(ctx context.Context, visits []*domain.Appointment, favorites []models.FavoriteService) []domain.Service {
	excluded := make(map[string]bool, len(favorites))
	for _, f := range favorites {
		excluded[f.ServiceID] = true
	}

	known := make(map[string]bool)
	for _, a := range visits {
		for _, id := range a.ServiceIDs {
			if svc, ok := s.catalog.Service(id); ok {
				known[svc.Category] = true
			}
		}
	}

	familiar := make([]domain.Service, 0)
	other := make([]domain.Service, 0)
	for _, svc := range s.catalog.ListServices(ctx, true) {
		if excluded[svc.ID] {
			continue
		}
		if known[svc.Category] {
			familiar = append(familiar, svc)
		} else {
			other = append(other, svc)
		}
	}

	result := append(familiar, other...)
	if len(result) > s.recommendationLimit {
		result = result[:s.recommendationLimit]
	}
	return result
}

func (s *Service) total(serviceIDs []string) int64 {
	var sum int64
	for _, id := range serviceIDs {
		_, price := s.lookup(id)
		sum += price
	}
	return sum
}

// lookup имя и текущая цена; удалённая из каталога услуга стоит 0 и показывается по ID
func (s *Service) lookup(id string) (string, int64) {
	svc, ok := s.catalog.Service(id)
	if !ok {
		return id, 0
	}
	return svc.Name, svc.Price
}
