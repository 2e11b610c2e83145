package update_appointment

import (
	"context"
	"encoding/json"
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

type fakeStore struct {
	appointment *domain.Appointment
	patch       *models.Patch
	updateErr   error
}

func (f *fakeStore) Get(ctx context.Context, id string) (*domain.Appointment, error) {
	if f.appointment == nil || f.appointment.ID != id {
		return nil, appointments.ErrAppointmentNotFound
	}
	return f.appointment.Clone(), nil
}

func (f *fakeStore) Update(ctx context.Context, id string, patch models.Patch) (*domain.Appointment, error) {
	f.patch = &patch
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	updated := f.appointment.Clone()
	if patch.Status != nil {
		updated.Status = *patch.Status
	}
	if patch.Notes != nil {
		updated.Notes = *patch.Notes
	}
	return updated, nil
}

func newStore() *fakeStore {
	start := time.Date(2025, time.March, 3, 10, 0, 0, 0, time.UTC)
	return &fakeStore{appointment: &domain.Appointment{
		ID:         "a-1",
		ClientID:   "c-1",
		MasterID:   "anna",
		ServiceIDs: []string{"manicure"},
		StartTime:  start,
		EndTime:    start.Add(time.Hour),
		Status:     domain.StatusNew,
	}}
}

func serve(store *fakeStore, actor domain.Actor, id, body string) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.HandleFunc("/appointments/{appointmentId}", NewHandler(store, access.Policy{}, logger.NewNop()).Handle)
	req := httptest.NewRequest(http.MethodPatch, "/appointments/"+id, strings.NewReader(body))
	req = req.WithContext(handlers.WithActor(req.Context(), actor))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

var (
	admin      = domain.Actor{UserID: "u-1", Role: domain.RoleAdmin}
	anna       = domain.Actor{UserID: "u-2", Role: domain.RoleMaster, MasterID: "anna"}
	otherOwner = domain.Actor{UserID: "u-3", Role: domain.RoleMaster, MasterID: "bohdana"}
)

func TestHandle_StatusByOwner(t *testing.T) {
	store := newStore()
	rec := serve(store, anna, "a-1", `{"status":"confirmed"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, store.patch)
	assert.Equal(t, domain.StatusConfirmed, *store.patch.Status)
	assert.Nil(t, store.patch.Notes)

	var resp handlers.AppointmentResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "confirmed", resp.Status)
}

func TestHandle_NotesByAdmin(t *testing.T) {
	store := newStore()
	rec := serve(store, admin, "a-1", `{"notes":"принести лампу"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "принести лампу", *store.patch.Notes)
	assert.Nil(t, store.patch.Status)
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
		{"guest", domain.Guest(), "a-1", `{"status":"cancelled"}`, nil, http.StatusForbidden},
		{"other master", otherOwner, "a-1", `{"status":"cancelled"}`, nil, http.StatusForbidden},
		{"unknown appointment", admin, "a-9", `{"status":"cancelled"}`, nil, http.StatusNotFound},
		{"empty patch", admin, "a-1", `{}`, nil, http.StatusBadRequest},
		{"broken json", admin, "a-1", `{"status":`, nil, http.StatusBadRequest},
		{"bad status", admin, "a-1", `{"status":"lost"}`, appointments.ErrInvalidStatus, http.StatusBadRequest},
		{"locked", admin, "a-1", `{"status":"new"}`, appointments.ErrTransitionNotAllowed, http.StatusBadRequest},
		{"longer services collide", admin, "a-1", `{"serviceIds":["manicure","gel"]}`, appointments.ErrSlotNotAvailable, http.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newStore()
			store.updateErr = tt.err
			rec := serve(store, tt.actor, tt.id, tt.body)
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}
