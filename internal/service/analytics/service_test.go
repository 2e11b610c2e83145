package analytics

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-StudioBooking/internal/domain"
	"github.com/m04kA/SMC-StudioBooking/pkg/logger"
)

type fakeAppointments []*domain.Appointment

func (f fakeAppointments) ForClient(ctx context.Context, clientID string) []*domain.Appointment {
	result := make([]*domain.Appointment, 0)
	for _, a := range f {
		if a.ClientID == clientID {
			result = append(result, a.Clone())
		}
	}
	return result
}

type fakeCatalog struct {
	services []domain.Service
}

func (c *fakeCatalog) Service(id string) (domain.Service, bool) {
	for _, svc := range c.services {
		if svc.ID == id {
			return svc, true
		}
	}
	return domain.Service{}, false
}

func (c *fakeCatalog) ListServices(ctx context.Context, activeOnly bool) []domain.Service {
	result := make([]domain.Service, 0, len(c.services))
	for _, svc := range c.services {
		if activeOnly && !svc.IsActive {
			continue
		}
		result = append(result, svc)
	}
	return result
}

type fakeClients map[string]*domain.Client

func (f fakeClients) Client(id string) (*domain.Client, bool) {
	c, ok := f[id]
	return c, ok
}

func newCatalog() *fakeCatalog {
	return &fakeCatalog{services: []domain.Service{
		{ID: "manicure", Name: "Манікюр класичний", Price: 350, DurationMinutes: 60, Category: "Манікюр", IsActive: true},
		{ID: "gel", Name: "Покриття гель-лак", Price: 450, DurationMinutes: 90, Category: "Манікюр", IsActive: true},
		{ID: "brows", Name: "Корекція брів", Price: 200, DurationMinutes: 30, Category: "Брови", IsActive: true},
		{ID: "lashes", Name: "Ламінування вій", Price: 600, DurationMinutes: 60, Category: "Вії", IsActive: true},
		{ID: "design", Name: "Дизайн нігтів", Price: 100, DurationMinutes: 15, Category: "Манікюр", IsActive: true},
		{ID: "paraffin", Name: "Парафінотерапія", Price: 150, DurationMinutes: 30, Category: "Догляд", IsActive: false},
	}}
}

func visit(id, clientID string, day int, status domain.AppointmentStatus, services ...string) *domain.Appointment {
	start := time.Date(2025, time.March, day, 10, 0, 0, 0, time.UTC)
	return &domain.Appointment{
		ID:         id,
		ClientID:   clientID,
		MasterID:   "anna",
		ServiceIDs: services,
		StartTime:  start,
		EndTime:    start.Add(time.Hour),
		Status:     status,
	}
}

func newTestService(history fakeAppointments, catalog *fakeCatalog) *Service {
	clients := fakeClients{
		"olha":  {ID: "olha", Name: "Olha", Phone: "0501112233"},
		"iryna": {ID: "iryna", Name: "Iryna", Phone: "0679998877"},
	}
	return NewService(history, catalog, clients, logger.NewNop(), Options{})
}

func TestAnalyticsFor_OlhaScenario(t *testing.T) {
	history := fakeAppointments{
		visit("a-1", "olha", 3, domain.StatusCompleted, "manicure"),
		visit("a-2", "olha", 10, domain.StatusCompleted, "gel"),
		visit("a-3", "olha", 12, domain.StatusCancelled, "lashes"),
		visit("a-4", "iryna", 4, domain.StatusCompleted, "brows"),
	}
	s := newTestService(history, newCatalog())

	got, err := s.AnalyticsFor(context.Background(), "olha")
	require.NoError(t, err)

	assert.Equal(t, 2, got.TotalVisits)
	assert.Equal(t, int64(800), got.TotalSpent)
	assert.Equal(t, 400.0, got.AverageCheck)
	require.NotNil(t, got.LastVisit)
	assert.Equal(t, time.Date(2025, time.March, 10, 10, 0, 0, 0, time.UTC), *got.LastVisit)
}

func TestAnalyticsFor_NoVisits(t *testing.T) {
	history := fakeAppointments{visit("a-1", "iryna", 3, domain.StatusCancelled, "gel")}
	s := newTestService(history, newCatalog())

	got, err := s.AnalyticsFor(context.Background(), "iryna")
	require.NoError(t, err)
	assert.Equal(t, 0, got.TotalVisits)
	assert.Equal(t, int64(0), got.TotalSpent)
	assert.Equal(t, 0.0, got.AverageCheck)
	assert.Nil(t, got.LastVisit)
	assert.Empty(t, got.FavoriteServices)
	assert.Len(t, got.RecommendedServices, domain.DefaultRecommendationLimit)
}

func TestAnalyticsFor_UnknownClient(t *testing.T) {
	s := newTestService(nil, newCatalog())

	_, err := s.AnalyticsFor(context.Background(), "ghost")
	assert.ErrorIs(t, err, ErrClientNotFound)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = s.Visits(context.Background(), "ghost")
	assert.ErrorIs(t, err, ErrClientNotFound)

	_, err = s.Recommended(context.Background(), "ghost")
	assert.ErrorIs(t, err, ErrClientNotFound)
}

func TestAnalyticsFor_LivePrices(t *testing.T) {
	catalog := newCatalog()
	history := fakeAppointments{
		visit("a-1", "olha", 3, domain.StatusCompleted, "manicure", "ghost-service"),
	}
	s := newTestService(history, catalog)

	got, err := s.AnalyticsFor(context.Background(), "olha")
	require.NoError(t, err)
	assert.Equal(t, int64(350), got.TotalSpent, "unknown service counts as zero")

	catalog.services[0].Price = 400
	got, err = s.AnalyticsFor(context.Background(), "olha")
	require.NoError(t, err)
	assert.Equal(t, int64(400), got.TotalSpent, "catalog edits change historical totals")

	visits, err := s.Visits(context.Background(), "olha")
	require.NoError(t, err)
	require.Len(t, visits, 1)
	assert.Equal(t, "ghost-service", visits[0].Services[1].Name)
	assert.Equal(t, int64(0), visits[0].Services[1].Price)
}

func TestFavorites_OrderAndTies(t *testing.T) {
	history := fakeAppointments{
		visit("a-1", "olha", 3, domain.StatusCompleted, "brows", "manicure"),
		visit("a-2", "olha", 5, domain.StatusCompleted, "gel", "manicure"),
		visit("a-3", "olha", 7, domain.StatusNew, "lashes", "brows"),
		visit("a-4", "olha", 9, domain.StatusCancelled, "gel", "gel"),
	}
	s := newTestService(history, newCatalog())

	favorites, err := s.Favorites(context.Background(), "olha")
	require.NoError(t, err)

	require.Len(t, favorites, 4)
	assert.Equal(t, "brows", favorites[0].ServiceID, "brows appears first among the two-count services")
	assert.Equal(t, 2, favorites[0].Count)
	assert.Equal(t, "manicure", favorites[1].ServiceID)
	assert.Equal(t, "gel", favorites[2].ServiceID)
	assert.Equal(t, 1, favorites[2].Count)
	assert.Equal(t, "lashes", favorites[3].ServiceID)
	assert.Equal(t, "Корекція брів", favorites[0].Name)

	ids, err := s.FavoriteIDs(context.Background(), "olha")
	require.NoError(t, err)
	assert.Equal(t, []string{"brows", "manicure", "gel", "lashes"}, ids)
}

func TestFavorites_Limit(t *testing.T) {
	history := fakeAppointments{
		visit("a-1", "olha", 3, domain.StatusCompleted, "manicure", "gel", "brows"),
		visit("a-2", "olha", 4, domain.StatusCompleted, "lashes", "design"),
	}
	s := NewService(history, newCatalog(), fakeClients{"olha": {ID: "olha"}}, logger.NewNop(), Options{FavoriteLimit: 2})

	favorites, err := s.Favorites(context.Background(), "olha")
	require.NoError(t, err)
	require.Len(t, favorites, 2)
	assert.Equal(t, "manicure", favorites[0].ServiceID)
	assert.Equal(t, "gel", favorites[1].ServiceID)
}

func TestRecommended(t *testing.T) {
	history := fakeAppointments{
		visit("a-1", "olha", 3, domain.StatusCompleted, "manicure"),
	}
	s := newTestService(history, newCatalog())

	recommended, err := s.Recommended(context.Background(), "olha")
	require.NoError(t, err)

	ids := make([]string, 0, len(recommended))
	for _, svc := range recommended {
		ids = append(ids, svc.ID)
	}
	assert.Equal(t, []string{"gel", "design", "brows"}, ids,
		"same category first, favorites and inactive services excluded")
}

func TestVisits_NewestFirst(t *testing.T) {
	history := fakeAppointments{
		visit("a-1", "olha", 3, domain.StatusCompleted, "manicure"),
		visit("a-2", "olha", 10, domain.StatusConfirmed, "gel", "design"),
		visit("a-3", "olha", 12, domain.StatusCancelled, "lashes"),
	}
	s := newTestService(history, newCatalog())

	visits, err := s.Visits(context.Background(), "olha")
	require.NoError(t, err)
	require.Len(t, visits, 2)
	assert.Equal(t, "a-2", visits[0].AppointmentID)
	assert.Equal(t, int64(550), visits[0].Total)
	assert.Equal(t, "a-1", visits[1].AppointmentID)
}
