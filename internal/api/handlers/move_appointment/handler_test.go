package move_appointment

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-StudioBooking/internal/api/handlers"
	"github.com/m04kA/SMC-StudioBooking/internal/domain"
	"github.com/m04kA/SMC-StudioBooking/internal/service/access"
	"github.com/m04kA/SMC-StudioBooking/internal/service/appointments"
	"github.com/m04kA/SMC-StudioBooking/internal/service/appointments/models"
	"github.com/m04kA/SMC-StudioBooking/pkg/logger"
)

var start = time.Date(2025, time.March, 3, 10, 0, 0, 0, time.UTC)

type fakeStore struct {
	got *models.RelocateInput
	err error
}

func (f *fakeStore) Get(ctx context.Context, id string) (*domain.Appointment, error) {
	if id != "a-1" {
		return nil, appointments.ErrAppointmentNotFound
	}
	return &domain.Appointment{ID: "a-1", MasterID: "anna", StartTime: start, EndTime: start.Add(time.Hour), Status: domain.StatusNew}, nil
}

func (f *fakeStore) Relocate(ctx context.Context, in *models.RelocateInput) (*domain.Appointment, error) {
	f.got = in
	if f.err != nil {
		return nil, f.err
	}
	moved := in.StartTime.On(start)
	if in.Date != nil {
		moved = in.StartTime.On(*in.Date)
	}
	return &domain.Appointment{ID: "a-1", MasterID: in.MasterID, StartTime: moved, EndTime: moved.Add(time.Hour), Status: domain.StatusNew}, nil
}

func serve(store *fakeStore, actor domain.Actor, id, body string) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.HandleFunc("/appointments/{appointmentId}/move", NewHandler(store, access.Policy{}, time.UTC, logger.NewNop()).Handle)
	req := httptest.NewRequest(http.MethodPost, "/appointments/"+id+"/move", strings.NewReader(body))
	req = req.WithContext(handlers.WithActor(req.Context(), actor))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

var (
	admin = domain.Actor{UserID: "u-1", Role: domain.RoleAdmin}
	anna  = domain.Actor{UserID: "u-2", Role: domain.RoleMaster, MasterID: "anna"}
)

func TestHandle_AdminMovesToAnotherMaster(t *testing.T) {
	store := &fakeStore{}
	rec := serve(store, admin, "a-1", `{"masterId":"bohdana","date":"2025-03-04","startTime":"12:00"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "bohdana", store.got.MasterID)
	require.NotNil(t, store.got.Date)
	assert.Equal(t, time.Date(2025, time.March, 4, 0, 0, 0, 0, time.UTC), *store.got.Date)
	assert.Contains(t, rec.Body.String(), `"startTime":"12:00"`)
}

func TestHandle_OwnerMovesWithinDay(t *testing.T) {
	store := &fakeStore{}
	rec := serve(store, anna, "a-1", `{"startTime":"15:00"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "anna", store.got.MasterID, "master defaults to the current one")
	assert.Nil(t, store.got.Date)
}

func TestHandle_Rejected(t *testing.T) {
	tests := []struct {
		name  string
		actor domain.Actor
		id    string
		body  string
		err   error
		want  int
	}{
		{"guest", domain.Guest(), "a-1", `{"startTime":"12:00"}`, nil, http.StatusForbidden},
		{"master hands over", anna, "a-1", `{"masterId":"bohdana","startTime":"12:00"}`, nil, http.StatusForbidden},
		{"unknown appointment", admin, "a-9", `{"startTime":"12:00"}`, nil, http.StatusNotFound},
		{"bad time", admin, "a-1", `{"startTime":"noon"}`, nil, http.StatusBadRequest},
		{"bad date", admin, "a-1", `{"date":"04.03.2025","startTime":"12:00"}`, nil, http.StatusBadRequest},
		{"busy", admin, "a-1", `{"startTime":"12:00"}`, appointments.ErrSlotNotAvailable, http.StatusConflict},
		{"unknown master", admin, "a-1", `{"masterId":"ghost","startTime":"12:00"}`, appointments.ErrMasterNotFound, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(&fakeStore{err: tt.err}, tt.actor, tt.id, tt.body)
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}
