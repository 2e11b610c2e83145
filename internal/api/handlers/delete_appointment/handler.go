package delete_appointment

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-StudioBooking/internal/api/handlers"
	"github.com/m04kA/SMC-StudioBooking/internal/service/access"
	"github.com/m04kA/SMC-StudioBooking/internal/service/appointments"
)

const (
	msgForbidden           = "удалять записи может только администратор"
	msgAppointmentNotFound = "запись не найдена"
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

// Handle DELETE /api/v1/appointments/{appointmentId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	appointmentID := mux.Vars(r)["appointmentId"]
	actor := handlers.ActorFrom(r.Context())

	if err := h.policy.Check(actor, access.ActionDeleteAppointment); err != nil {
		h.logger.Warn("DELETE /appointments/{id} - Access denied: appointment_id=%s, role=%s", appointmentID, actor.Role)
		handlers.RespondForbidden(w, msgForbidden)
		return
	}

	if err := h.store.Delete(r.Context(), appointmentID); err != nil {
		if errors.Is(err, appointments.ErrAppointmentNotFound) {
			h.logger.Warn("DELETE /appointments/{id} - Appointment not found: appointment_id=%s", appointmentID)
			handlers.RespondNotFound(w, msgAppointmentNotFound)
			return
		}
		h.logger.Error("DELETE /appointments/{id} - Failed to delete appointment: appointment_id=%s, error=%v", appointmentID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /appointments/{id} - Appointment deleted successfully: appointment_id=%s, user_id=%s", appointmentID, actor.UserID)
	w.WriteHeader(http.StatusNoContent)
}
