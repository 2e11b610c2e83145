package create_appointment

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-StudioBooking/internal/api/handlers"
	"github.com/m04kA/SMC-StudioBooking/internal/domain"
	"github.com/m04kA/SMC-StudioBooking/internal/service/appointments"
	createAppointment "github.com/m04kA/SMC-StudioBooking/internal/usecase/create_appointment"
	"github.com/m04kA/SMC-StudioBooking/pkg/logger"
)

type fakeUseCase struct {
	got *createAppointment.Request
	err error
}

func (f *fakeUseCase) Execute(ctx context.Context, req *createAppointment.Request) (*createAppointment.Response, error) {
	f.got = req
	if f.err != nil {
		return nil, f.err
	}
	start := req.StartTime.On(req.Date)
	return &createAppointment.Response{
		Appointment: &domain.Appointment{
			ID:         "a-1",
			ClientID:   "c-1",
			ClientName: req.ClientName,
			MasterID:   req.MasterID,
			ServiceIDs: req.ServiceIDs,
			StartTime:  start,
			EndTime:    start.Add(time.Hour),
			Status:     domain.StatusNew,
		},
		ClientCreated: true,
	}, nil
}

const body = `{"clientName":"Olena","clientPhone":"0501112233","masterId":"anna",
"serviceIds":["manicure"],"date":"2025-03-03","startTime":"10:00"}`

func serve(t *testing.T, uc *fakeUseCase, payload string, actor domain.Actor) *httptest.ResponseRecorder {
	t.Helper()
	h := NewHandler(uc, time.UTC, logger.NewNop())
	req := httptest.NewRequest(http.MethodPost, "/api/v1/appointments", strings.NewReader(payload))
	req = req.WithContext(handlers.WithActor(req.Context(), actor))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle_Created(t *testing.T) {
	uc := &fakeUseCase{}
	rec := serve(t, uc, body, domain.Guest())

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, time.Date(2025, time.March, 3, 0, 0, 0, 0, time.UTC), uc.got.Date)
	assert.Equal(t, domain.RoleGuest, uc.got.Actor.Role)

	var resp CreateAppointmentResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.True(t, resp.ClientCreated)
	assert.Equal(t, "10:00", resp.Appointment.StartTime)
	assert.Equal(t, "11:00", resp.Appointment.EndTime)
	assert.Equal(t, "new", resp.Appointment.Status)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		err     error
		want    int
	}{
		{"broken json", `{`, nil, http.StatusBadRequest},
		{"bad date", strings.Replace(body, "2025-03-03", "03.03.2025", 1), nil, http.StatusBadRequest},
		{"bad time", strings.Replace(body, "10:00", "10am", 1), nil, http.StatusBadRequest},
		{"slot taken", body, appointments.ErrSlotNotAvailable, http.StatusConflict},
		{"unknown master", body, appointments.ErrMasterNotFound, http.StatusNotFound},
		{"past date", body, createAppointment.ErrInvalidDate, http.StatusBadRequest},
		{"inactive service", body, appointments.ErrServiceInactive, http.StatusBadRequest},
		{"unknown client", body, appointments.ErrClientNotFound, http.StatusNotFound},
		{"storage failure", body, fmt.Errorf("%w: db down", appointments.ErrInternal), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(t, &fakeUseCase{err: tt.err}, tt.payload, domain.Guest())
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}
