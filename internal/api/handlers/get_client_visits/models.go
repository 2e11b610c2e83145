package get_client_visits

import (
	"github.com/m04kA/SMC-StudioBooking/internal/api/handlers"
	"github.com/m04kA/SMC-StudioBooking/internal/service/analytics/models"
)

// VisitResponse визит клиента
type VisitResponse struct {
	AppointmentID string         `json:"appointmentId"`
	MasterID      string         `json:"masterId"`
	Start         string         `json:"start"`
	End           string         `json:"end"`
	Status        string         `json:"status"`
	Services      []VisitService `json:"services"`
	Total         int64          `json:"total"`
}

// VisitService услуга визита по текущему прайсу
type VisitService struct {
	ServiceID string `json:"serviceId"`
	Name      string `json:"name"`
	Price     int64  `json:"price"`
}

// FromVisits конвертирует историю визитов в HTTP response
func FromVisits(visits []models.Visit) []VisitResponse {
	result := make([]VisitResponse, 0, len(visits))
	for _, v := range visits {
		resp := VisitResponse{
			AppointmentID: v.AppointmentID,
			MasterID:      v.MasterID,
			Start:         handlers.FormatTime(v.StartTime),
			End:           handlers.FormatTime(v.EndTime),
			Status:        string(v.Status),
			Services:      make([]VisitService, 0, len(v.Services)),
			Total:         v.Total,
		}
		for _, s := range v.Services {
			resp.Services = append(resp.Services, VisitService{ServiceID: s.ServiceID, Name: s.Name, Price: s.Price})
		}
		result = append(result, resp)
	}
	return result
}
