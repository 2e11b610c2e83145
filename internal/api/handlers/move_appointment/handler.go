package move_appointment

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-StudioBooking/internal/api/handlers"
	"github.com/m04kA/SMC-StudioBooking/internal/domain"
	"github.com/m04kA/SMC-StudioBooking/internal/service/access"
	"github.com/m04kA/SMC-StudioBooking/internal/service/appointments"
)

const (
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgInvalidDate         = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidTime         = "некорректный формат времени, ожидается HH:MM"
	msgAppointmentNotFound = "запись не найдена"
	msgMasterNotFound      = "мастер не найден"
	msgMasterInactive      = "мастер не принимает записи"
	msgForbidden           = "недостаточно прав для переноса записи"
	msgNotOwner            = "мастер может переносить только свои записи к себе"
	msgSlotNotAvailable    = "выбранное время недоступно"
	msgInvalidTimeSlot     = "время начала не совпадает с сеткой слотов"
	msgInvalidInput        = "некорректные данные переноса"
)

type Handler struct {
	store    AppointmentStore
	policy   AccessPolicy
	location *time.Location
	logger   Logger
}

func NewHandler(store AppointmentStore, policy AccessPolicy, location *time.Location, logger Logger) *Handler {
	return &Handler{
		store:    store,
		policy:   policy,
		location: location,
		logger:   logger,
	}
}

// Handle POST /api/v1/appointments/{appointmentId}/move
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	appointmentID := mux.Vars(r)["appointmentId"]
	actor := handlers.ActorFrom(r.Context())

	var req MoveAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments/{id}/move - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	in, err := req.ToRelocateInput(appointmentID, h.location)
	if err != nil {
		if errors.Is(err, errInvalidTime) {
			handlers.RespondBadRequest(w, msgInvalidTime)
		} else {
			handlers.RespondBadRequest(w, msgInvalidDate)
		}
		return
	}

	current, err := h.store.Get(r.Context(), appointmentID)
	if err != nil {
		h.respondError(w, appointmentID, err)
		return
	}

	if err := h.policy.CheckAppointment(actor, current); err != nil {
		h.respondError(w, appointmentID, err)
		return
	}
	if in.MasterID == "" {
		in.MasterID = current.MasterID
	}
	// мастер не может передать запись коллеге
	if actor.Role == domain.RoleMaster && in.MasterID != actor.MasterID {
		h.respondError(w, appointmentID, access.ErrNotOwner)
		return
	}

	moved, err := h.store.Relocate(r.Context(), in)
	if err != nil {
		h.respondError(w, appointmentID, err)
		return
	}

	h.logger.Info("POST /appointments/{id}/move - Appointment moved successfully: appointment_id=%s, master_id=%s, start=%s",
		appointmentID, moved.MasterID, handlers.FormatTime(moved.StartTime))
	handlers.RespondJSON(w, http.StatusOK, handlers.NewAppointmentResponse(moved))
}

func (h *Handler) respondError(w http.ResponseWriter, appointmentID string, err error) {
	switch {
	case errors.Is(err, appointments.ErrAppointmentNotFound):
		h.logger.Warn("POST /appointments/{id}/move - Appointment not found: appointment_id=%s", appointmentID)
		handlers.RespondNotFound(w, msgAppointmentNotFound)
	case errors.Is(err, appointments.ErrMasterNotFound):
		handlers.RespondNotFound(w, msgMasterNotFound)
	case errors.Is(err, appointments.ErrMasterInactive):
		handlers.RespondBadRequest(w, msgMasterInactive)
	case errors.Is(err, access.ErrNotOwner):
		h.logger.Warn("POST /appointments/{id}/move - Not owner: appointment_id=%s", appointmentID)
		handlers.RespondForbidden(w, msgNotOwner)
	case errors.Is(err, access.ErrForbidden):
		handlers.RespondForbidden(w, msgForbidden)
	case errors.Is(err, appointments.ErrSlotNotAvailable):
		h.logger.Warn("POST /appointments/{id}/move - Slot not available: appointment_id=%s", appointmentID)
		handlers.RespondConflict(w, msgSlotNotAvailable)
	case errors.Is(err, appointments.ErrInvalidTimeSlot):
		handlers.RespondBadRequest(w, msgInvalidTimeSlot)
	default:
		if handlers.StatusFor(err) == http.StatusInternalServerError {
			h.logger.Error("POST /appointments/{id}/move - Failed to move appointment: appointment_id=%s, error=%v", appointmentID, err)
		}
		handlers.RespondDomainError(w, err, msgInvalidInput)
	}
}
