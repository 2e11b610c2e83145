package update_appointment

import (
	"github.com/m04kA/SMC-StudioBooking/internal/domain"
	"github.com/m04kA/SMC-StudioBooking/internal/service/appointments/models"
)

// UpdateAppointmentRequest HTTP request model, отсутствующие поля не меняются
type UpdateAppointmentRequest struct {
	Status     *string  `json:"status,omitempty"`
	Notes      *string  `json:"notes,omitempty"`
	ServiceIDs []string `json:"serviceIds,omitempty"`
}

// ToPatch конвертирует HTTP запрос в изменение записи
func (r *UpdateAppointmentRequest) ToPatch() models.Patch {
	patch := models.Patch{
		Notes:      r.Notes,
		ServiceIDs: r.ServiceIDs,
	}
	if r.Status != nil {
		status := domain.AppointmentStatus(*r.Status)
		patch.Status = &status
	}
	return patch
}
