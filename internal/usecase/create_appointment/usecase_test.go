package create_appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-StudioBooking/internal/domain"
	"github.com/m04kA/SMC-StudioBooking/internal/infra/storage/memory"
	"github.com/m04kA/SMC-StudioBooking/internal/service/analytics"
	"github.com/m04kA/SMC-StudioBooking/internal/service/appointments"
	"github.com/m04kA/SMC-StudioBooking/internal/service/availability"
	"github.com/m04kA/SMC-StudioBooking/internal/service/catalog"
	catalogModels "github.com/m04kA/SMC-StudioBooking/internal/service/catalog/models"
	"github.com/m04kA/SMC-StudioBooking/internal/service/clients"
	"github.com/m04kA/SMC-StudioBooking/pkg/logger"
	"github.com/m04kA/SMC-StudioBooking/pkg/txmanager"
)

type fixedTime struct{ t time.Time }

func (f fixedTime) Now() time.Time { return f.t }

type studio struct {
	uc       *UseCase
	clients  *clients.Service
	store    *appointments.Service
	master   string
	manicure string
	gel      string
}

// 2025-03-03 понедельник
var monday = time.Date(2025, time.March, 3, 0, 0, 0, 0, time.UTC)

func newStudio(t *testing.T) *studio {
	t.Helper()
	ctx := context.Background()
	log := logger.NewNop()

	cat := catalog.NewService(memory.Discard{}, log)
	master, err := cat.CreateMaster(ctx, &catalogModels.CreateMasterRequest{Name: "Olena"})
	require.NoError(t, err)
	manicure, err := cat.CreateService(ctx, &catalogModels.CreateServiceRequest{Name: "Манікюр класичний", Price: 350, DurationMinutes: 60, Category: "Манікюр"})
	require.NoError(t, err)
	gel, err := cat.CreateService(ctx, &catalogModels.CreateServiceRequest{Name: "Покриття гель-лак", Price: 450, DurationMinutes: 90, Category: "Манікюр"})
	require.NoError(t, err)

	registry := clients.NewService(memory.Discard{}, nil, time.UTC, log)
	checker := availability.NewChecker(cat, log)
	store := appointments.NewService(memory.Discard{}, txmanager.Noop{}, cat, registry, checker, nil, log,
		appointments.Options{SlotStepMinutes: 15, Location: time.UTC})
	stats := analytics.NewService(store, cat, registry, log, analytics.Options{})

	uc := NewUseCase(registry, store, stats, log)
	uc.timeProvider = fixedTime{monday.Add(8 * time.Hour)}

	return &studio{
		uc:       uc,
		clients:  registry,
		store:    store,
		master:   master.ID,
		manicure: manicure.ID,
		gel:      gel.ID,
	}
}

func TestExecute_ResolvesThenBooks(t *testing.T) {
	s := newStudio(t)
	ctx := context.Background()

	first, err := s.uc.Execute(ctx, &Request{
		ClientName:  "Olha",
		ClientPhone: "0501112233",
		MasterID:    s.master,
		ServiceIDs:  []string{s.manicure},
		Date:        monday,
		StartTime:   "10:00",
		Actor:       domain.Guest(),
	})
	require.NoError(t, err)
	assert.True(t, first.ClientCreated)
	assert.Equal(t, domain.StatusNew, first.Appointment.Status)

	second, err := s.uc.Execute(ctx, &Request{
		ClientName:  "olha",
		ClientPhone: "+38 050 111 22 33",
		MasterID:    s.master,
		ServiceIDs:  []string{s.gel, s.manicure},
		Date:        monday,
		StartTime:   "11:00",
		Actor:       domain.Guest(),
	})
	require.NoError(t, err)
	assert.False(t, second.ClientCreated, "name and normalized phone match the existing client")
	assert.Equal(t, first.Appointment.ClientID, second.Appointment.ClientID)

	client, ok := s.clients.Client(first.Appointment.ClientID)
	require.True(t, ok)
	assert.Equal(t, 2, client.TotalVisits)
	assert.Equal(t, []string{s.manicure, s.gel}, client.FavoriteServices)
}

func TestExecute_SlotTaken(t *testing.T) {
	s := newStudio(t)
	ctx := context.Background()

	_, err := s.uc.Execute(ctx, &Request{
		ClientName: "Olha", ClientPhone: "0501112233", MasterID: s.master,
		ServiceIDs: []string{s.manicure}, Date: monday, StartTime: "10:00",
	})
	require.NoError(t, err)

	_, err = s.uc.Execute(ctx, &Request{
		ClientName: "Iryna", ClientPhone: "0679998877", MasterID: s.master,
		ServiceIDs: []string{s.manicure}, Date: monday, StartTime: "10:30",
	})
	assert.ErrorIs(t, err, appointments.ErrSlotNotAvailable)
	assert.Equal(t, domain.KindConflict, domain.Kind(err))

	assert.Len(t, s.store.ForDate(ctx, monday), 1)
	assert.Len(t, s.clients.List(ctx), 2, "a client resolved before a rejected booking is kept")
}

func TestExecute_Validation(t *testing.T) {
	s := newStudio(t)

	tests := []struct {
		name string
		req  Request
		want error
	}{
		{"empty name", Request{ClientName: "  ", ClientPhone: "050", MasterID: s.master, ServiceIDs: []string{s.gel}, Date: monday, StartTime: "10:00"}, ErrInvalidInput},
		{"empty phone", Request{ClientName: "Olha", MasterID: s.master, ServiceIDs: []string{s.gel}, Date: monday, StartTime: "10:00"}, ErrInvalidInput},
		{"no services", Request{ClientName: "Olha", ClientPhone: "050", MasterID: s.master, Date: monday, StartTime: "10:00"}, ErrInvalidInput},
		{"no time", Request{ClientName: "Olha", ClientPhone: "050", MasterID: s.master, ServiceIDs: []string{s.gel}, Date: monday}, ErrInvalidInput},
		{"bad time", Request{ClientName: "Olha", ClientPhone: "050", MasterID: s.master, ServiceIDs: []string{s.gel}, Date: monday, StartTime: "9am"}, ErrInvalidInput},
		{"guest in the past", Request{ClientName: "Olha", ClientPhone: "050", MasterID: s.master, ServiceIDs: []string{s.gel}, Date: monday.AddDate(0, 0, -1), StartTime: "10:00"}, ErrInvalidDate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.uc.Execute(context.Background(), &tt.req)
			assert.ErrorIs(t, err, tt.want)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}

	assert.Empty(t, s.clients.List(context.Background()))
}

func TestExecute_AdminMayBookPastDates(t *testing.T) {
	s := newStudio(t)

	res, err := s.uc.Execute(context.Background(), &Request{
		ClientName: "Olha", ClientPhone: "0501112233", MasterID: s.master,
		ServiceIDs: []string{s.manicure}, Date: monday.AddDate(0, 0, -7), StartTime: "10:00",
		Actor: domain.Actor{UserID: "u-1", Role: domain.RoleAdmin},
	})
	require.NoError(t, err)
	assert.Equal(t, "u-1", res.Appointment.CreatedBy)
}
