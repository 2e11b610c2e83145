package update_appointment

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-StudioBooking/internal/api/handlers"
	"github.com/m04kA/SMC-StudioBooking/internal/service/access"
	"github.com/m04kA/SMC-StudioBooking/internal/service/appointments"
)

const (
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgEmptyPatch           = "нет изменений"
	msgAppointmentNotFound  = "запись не найдена"
	msgForbidden            = "недостаточно прав для изменения записи"
	msgNotOwner             = "мастер может менять только свои записи"
	msgInvalidStatus        = "некорректный статус записи"
	msgTransitionNotAllowed = "смена статуса запрещена"
	msgSlotNotAvailable     = "новый набор услуг не помещается в расписание"
	msgServiceNotFound      = "услуга не найдена"
	msgServiceInactive      = "услуга недоступна"
	msgInvalidInput         = "некорректные данные записи"
)

type Handler struct {
	store  AppointmentStore
	policy AccessPolicy
	logger Logger
}

func NewHandler(store AppointmentStore, policy AccessPolicy, logger Logger) *Handler {
	return &Handler{
		store:  store,
		policy: policy,
		logger: logger,
	}
}

// Handle PATCH /api/v1/appointments/{appointmentId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	appointmentID := mux.Vars(r)["appointmentId"]
	actor := handlers.ActorFrom(r.Context())

	var req UpdateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /appointments/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	patch := req.ToPatch()
	if patch.IsEmpty() {
		handlers.RespondBadRequest(w, msgEmptyPatch)
		return
	}

	current, err := h.store.Get(r.Context(), appointmentID)
	if err != nil {
		h.respondError(w, appointmentID, err)
		return
	}

	if err := h.policy.CheckAppointment(actor, current); err != nil {
		h.logger.Warn("PATCH /appointments/{id} - Access denied: appointment_id=%s, role=%s, master_id=%s",
			appointmentID, actor.Role, actor.MasterID)
		h.respondError(w, appointmentID, err)
		return
	}

	updated, err := h.store.Update(r.Context(), appointmentID, patch)
	if err != nil {
		h.respondError(w, appointmentID, err)
		return
	}

	h.logger.Info("PATCH /appointments/{id} - Appointment updated successfully: appointment_id=%s, status=%s",
		appointmentID, updated.Status)
	handlers.RespondJSON(w, http.StatusOK, handlers.NewAppointmentResponse(updated))
}

func (h *Handler) respondError(w http.ResponseWriter, appointmentID string, err error) {
	switch {
	case errors.Is(err, appointments.ErrAppointmentNotFound):
		h.logger.Warn("PATCH /appointments/{id} - Appointment not found: appointment_id=%s", appointmentID)
		handlers.RespondNotFound(w, msgAppointmentNotFound)
	case errors.Is(err, access.ErrNotOwner):
		handlers.RespondForbidden(w, msgNotOwner)
	case errors.Is(err, access.ErrForbidden):
		handlers.RespondForbidden(w, msgForbidden)
	case errors.Is(err, appointments.ErrInvalidStatus):
		handlers.RespondBadRequest(w, msgInvalidStatus)
	case errors.Is(err, appointments.ErrTransitionNotAllowed):
		h.logger.Warn("PATCH /appointments/{id} - Transition rejected: appointment_id=%s, error=%v", appointmentID, err)
		handlers.RespondBadRequest(w, msgTransitionNotAllowed)
	case errors.Is(err, appointments.ErrSlotNotAvailable):
		handlers.RespondConflict(w, msgSlotNotAvailable)
	case errors.Is(err, appointments.ErrServiceNotFound):
		handlers.RespondNotFound(w, msgServiceNotFound)
	case errors.Is(err, appointments.ErrServiceInactive):
		handlers.RespondBadRequest(w, msgServiceInactive)
	default:
		if handlers.StatusFor(err) == http.StatusInternalServerError {
			h.logger.Error("PATCH /appointments/{id} - Failed to update appointment: appointment_id=%s, error=%v", appointmentID, err)
		}
		handlers.RespondDomainError(w, err, msgInvalidInput)
	}
}
