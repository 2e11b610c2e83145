package create_appointment

import (
	"time"

	"github.com/m04kA/SMC-StudioBooking/internal/api/handlers"
	"github.com/m04kA/SMC-StudioBooking/internal/domain"
	createAppointment "github.com/m04kA/SMC-StudioBooking/internal/usecase/create_appointment"
	"github.com/m04kA/SMC-StudioBooking/pkg/types"
)

// CreateAppointmentRequest HTTP request model
type CreateAppointmentRequest struct {
	ClientName  string   `json:"clientName"`
	ClientPhone string   `json:"clientPhone"`
	MasterID    string   `json:"masterId"`
	ServiceIDs  []string `json:"serviceIds"`
	Date        string   `json:"date"`      // "2025-03-03"
	StartTime   string   `json:"startTime"` // "10:00"
	Notes       string   `json:"notes,omitempty"`
}

// CreateAppointmentResponse HTTP response model
type CreateAppointmentResponse struct {
	Appointment   handlers.AppointmentResponse `json:"appointment"`
	ClientCreated bool                         `json:"clientCreated"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateAppointmentRequest) ToUseCaseRequest(loc *time.Location, actor domain.Actor) (*createAppointment.Request, error) {
	date, err := handlers.ParseDate(r.Date, loc)
	if err != nil {
		return nil, errInvalidDate
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, errInvalidTime
	}

	return &createAppointment.Request{
		ClientName:  r.ClientName,
		ClientPhone: r.ClientPhone,
		MasterID:    r.MasterID,
		ServiceIDs:  r.ServiceIDs,
		Date:        date,
		StartTime:   startTime,
		Notes:       r.Notes,
		Actor:       actor,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createAppointment.Response) *CreateAppointmentResponse {
	return &CreateAppointmentResponse{
		Appointment:   handlers.NewAppointmentResponse(resp.Appointment),
		ClientCreated: resp.ClientCreated,
	}
}
