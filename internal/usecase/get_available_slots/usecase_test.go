package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-StudioBooking/internal/domain"
	"github.com/m04kA/SMC-StudioBooking/internal/service/availability"
	"github.com/m04kA/SMC-StudioBooking/pkg/logger"
	"github.com/m04kA/SMC-StudioBooking/pkg/types"
)

// 2025-03-03 понедельник
var monday = time.Date(2025, time.March, 3, 0, 0, 0, 0, time.UTC)

type fakeCatalog struct{}

func (fakeCatalog) Master(id string) (domain.Master, bool) {
	if id != "olena" {
		return domain.Master{}, false
	}
	return domain.Master{ID: "olena", Name: "Olena", Schedule: domain.DefaultWorkSchedule(), IsActive: true}, true
}

func (fakeCatalog) Service(id string) (domain.Service, bool) {
	switch id {
	case "brows":
		return domain.Service{ID: "brows", DurationMinutes: 30, IsActive: true}, true
	case "old":
		return domain.Service{ID: "old", DurationMinutes: 30, IsActive: false}, true
	}
	return domain.Service{}, false
}

type fakeStore struct {
	snapshot availability.Snapshot
}

func (s fakeStore) Snapshot(date time.Time) availability.Snapshot {
	return s.snapshot
}

type fixedTime struct{ t time.Time }

func (f fixedTime) Now() time.Time { return f.t }

func newTestUseCase(now time.Time) *UseCase {
	start := time.Date(2025, time.March, 3, 10, 0, 0, 0, time.UTC)
	store := fakeStore{snapshot: availability.Snapshot{{
		ID:         "a-1",
		MasterID:   "olena",
		ServiceIDs: []string{"manicure"},
		StartTime:  start,
		EndTime:    start.Add(time.Hour),
		Status:     domain.StatusConfirmed,
	}}}
	checker := availability.NewChecker(fakeCatalog{}, logger.NewNop())
	uc := NewUseCase(fakeCatalog{}, store, checker, Grid{StartHour: 9, EndHour: 20, StepMinutes: 15}, logger.NewNop())
	uc.timeProvider = fixedTime{now}
	return uc
}

func TestExecute_FiltersGridThroughChecker(t *testing.T) {
	uc := newTestUseCase(monday.AddDate(0, 0, -1))

	res, err := uc.Execute(context.Background(), &Request{MasterID: "olena", Date: monday, ServiceIDs: []string{"brows"}})
	require.NoError(t, err)

	assert.Equal(t, 30, res.DurationMinutes)
	assert.Len(t, res.Slots, 30)
	assert.Equal(t, types.TimeString("09:00"), res.Slots[0])
	assert.Equal(t, types.TimeString("17:30"), res.Slots[len(res.Slots)-1])
	assert.Contains(t, res.Slots, types.TimeString("09:30"))
	assert.Contains(t, res.Slots, types.TimeString("11:00"))
	for _, taken := range []types.TimeString{"09:45", "10:00", "10:15", "10:30", "10:45"} {
		assert.NotContains(t, res.Slots, taken)
	}
}

func TestExecute_Today(t *testing.T) {
	uc := newTestUseCase(time.Date(2025, time.March, 3, 12, 5, 0, 0, time.UTC))

	res, err := uc.Execute(context.Background(), &Request{MasterID: "olena", Date: monday, DurationMinutes: 30})
	require.NoError(t, err)
	require.NotEmpty(t, res.Slots)
	assert.Equal(t, types.TimeString("12:15"), res.Slots[0])
	assert.Len(t, res.Slots, 22)
}

func TestExecute_PastAndClosedDays(t *testing.T) {
	uc := newTestUseCase(monday.AddDate(0, 0, 1))

	res, err := uc.Execute(context.Background(), &Request{MasterID: "olena", Date: monday, DurationMinutes: 30})
	require.NoError(t, err)
	assert.Empty(t, res.Slots)

	res, err = uc.Execute(context.Background(), &Request{MasterID: "olena", Date: monday.AddDate(0, 0, 6), DurationMinutes: 30})
	require.NoError(t, err)
	assert.Empty(t, res.Slots, "sunday is a day off")
}

func TestExecute_Errors(t *testing.T) {
	uc := newTestUseCase(monday)
	ctx := context.Background()

	_, err := uc.Execute(ctx, &Request{MasterID: "olena", Date: monday})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(ctx, &Request{MasterID: "nobody", Date: monday, DurationMinutes: 30})
	assert.ErrorIs(t, err, ErrMasterNotFound)

	_, err = uc.Execute(ctx, &Request{MasterID: "olena", Date: monday, ServiceIDs: []string{"laser"}})
	assert.ErrorIs(t, err, ErrServiceNotFound)

	_, err = uc.Execute(ctx, &Request{MasterID: "olena", Date: monday, ServiceIDs: []string{"old"}})
	assert.ErrorIs(t, err, ErrServiceInactive)
}
