package calendar

import (
	"context"
	"strings"
	"testing"
	"time"

	ical "github.com/arran4/golang-ical"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-StudioBooking/internal/domain"
)

type fakeAppointments []*domain.Appointment

func (f fakeAppointments) ForMasterBetween(ctx context.Context, masterID string, from, to time.Time) []*domain.Appointment {
	result := make([]*domain.Appointment, 0)
	for _, a := range f {
		if a.MasterID == masterID && !a.StartTime.Before(from) && a.StartTime.Before(to) {
			result = append(result, a)
		}
	}
	return result
}

type fakeCatalog struct{}

func (fakeCatalog) Master(id string) (domain.Master, bool) {
	if id != "anna" {
		return domain.Master{}, false
	}
	return domain.Master{ID: "anna", Name: "Анна"}, true
}

func (fakeCatalog) Service(id string) (domain.Service, bool) {
	if id != "manicure" {
		return domain.Service{}, false
	}
	return domain.Service{ID: "manicure", Name: "Манікюр класичний"}, true
}

var monday = time.Date(2025, time.March, 3, 0, 0, 0, 0, time.UTC)

func appointment(id string, hour int, status domain.AppointmentStatus) *domain.Appointment {
	start := monday.Add(time.Duration(hour) * time.Hour)
	return &domain.Appointment{
		ID:          id,
		ClientName:  "Olena",
		ClientPhone: "0501112233",
		MasterID:    "anna",
		ServiceIDs:  []string{"manicure"},
		StartTime:   start,
		EndTime:     start.Add(time.Hour),
		Status:      status,
		CreatedAt:   monday,
	}
}

func TestExport(t *testing.T) {
	e := NewExporter(fakeAppointments{
		appointment("a-1", 10, domain.StatusNew),
		appointment("a-2", 12, domain.StatusCancelled),
		appointment("a-3", 14, domain.StatusConfirmed),
	}, fakeCatalog{}, "Beauty Studio")

	body, err := e.Export(context.Background(), "anna", monday, monday.AddDate(0, 0, 1))
	require.NoError(t, err)

	cal, err := ical.ParseCalendar(strings.NewReader(body))
	require.NoError(t, err)

	events := cal.Events()
	require.Len(t, events, 2, "cancelled appointment is not exported")

	assert.Equal(t, "a-1@studio", events[0].Id())
	assert.Equal(t, "Olena: Манікюр класичний", events[0].GetProperty(ical.ComponentPropertySummary).Value)
	assert.Equal(t, "TENTATIVE", events[0].GetProperty(ical.ComponentPropertyStatus).Value)

	start, err := events[1].GetStartAt()
	require.NoError(t, err)
	assert.True(t, start.Equal(monday.Add(14*time.Hour)))
}

func TestExport_Errors(t *testing.T) {
	e := NewExporter(fakeAppointments{}, fakeCatalog{}, "Beauty Studio")

	_, err := e.Export(context.Background(), "ghost", monday, monday.AddDate(0, 0, 1))
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = e.Export(context.Background(), "anna", monday, monday)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestParseRange(t *testing.T) {
	now := monday.Add(15 * time.Hour)

	from, to, err := ParseRange("", "", now, time.UTC)
	require.NoError(t, err)
	assert.Equal(t, monday, from)
	assert.Equal(t, monday.AddDate(0, 0, 30), to)

	from, to, err = ParseRange("2025-03-10", "2025-03-10", now, time.UTC)
	require.NoError(t, err)
	assert.Equal(t, monday.AddDate(0, 0, 7), from)
	assert.Equal(t, monday.AddDate(0, 0, 8), to, "end date is inclusive")

	_, _, err = ParseRange("03.03.2025", "", now, time.UTC)
	assert.ErrorIs(t, err, ErrInvalidRange)

	_, _, err = ParseRange("2025-03-10", "2025-03-01", now, time.UTC)
	assert.ErrorIs(t, err, ErrInvalidRange)
}
