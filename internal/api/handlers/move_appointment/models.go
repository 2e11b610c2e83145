package move_appointment

import (
	"errors"
	"time"

	"github.com/m04kA/SMC-StudioBooking/internal/api/handlers"
	"github.com/m04kA/SMC-StudioBooking/internal/service/appointments/models"
	"github.com/m04kA/SMC-StudioBooking/pkg/types"
)

var (
	errInvalidDate = errors.New("invalid date")
	errInvalidTime = errors.New("invalid time")
)

// MoveAppointmentRequest HTTP request model
type MoveAppointmentRequest struct {
	MasterID  string `json:"masterId,omitempty"` // пусто - тот же мастер
	Date      string `json:"date,omitempty"` // пусто - тот же день
	StartTime string `json:"startTime"`
}

// ToRelocateInput конвертирует HTTP запрос в перенос записи
func (r *MoveAppointmentRequest) ToRelocateInput(appointmentID string, loc *time.Location) (*models.RelocateInput, error) {
	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, errInvalidTime
	}

	in := &models.RelocateInput{
		AppointmentID: appointmentID,
		MasterID:      r.MasterID,
		StartTime:     startTime,
	}

	if r.Date != "" {
		date, err := handlers.ParseDate(r.Date, loc)
		if err != nil {
			return nil, errInvalidDate
		}
		in.Date = &date
	}
	return in, nil
}
