package get_appointments

import (
	"net/http"
	"time"

	"github.com/m04kA/SMC-StudioBooking/internal/api/handlers"
	"github.com/m04kA/SMC-StudioBooking/internal/domain"
)

const (
	msgMissingDate = "дата обязательна"
	msgInvalidDate = "некорректный формат даты, ожидается YYYY-MM-DD"
)

// AppointmentListResponse записи за день
type AppointmentListResponse struct {
	Date         string                         `json:"date"`
	MasterID     string                         `json:"masterId,omitempty"`
	Appointments []handlers.AppointmentResponse `json:"appointments"`
	Total        int                            `json:"total"`
}

type Handler struct {
	appointments AppointmentReader
	location     *time.Location
	logger       Logger
}

func NewHandler(appointments AppointmentReader, location *time.Location, logger Logger) *Handler {
	return &Handler{
		appointments: appointments,
		location:     location,
		logger:       logger,
	}
}

// Handle GET /api/v1/appointments
// Query params: date (required, YYYY-MM-DD), master_id (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	dateStr := query.Get("date")
	if dateStr == "" {
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}
	date, err := handlers.ParseDate(dateStr, h.location)
	if err != nil {
		h.logger.Warn("GET /appointments - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	masterID := query.Get("master_id")

	var list []*domain.Appointment
	if masterID != "" {
		list = h.appointments.ForMaster(r.Context(), masterID, date)
	} else {
		list = h.appointments.ForDate(r.Context(), date)
	}

	h.logger.Info("GET /appointments - Appointments retrieved successfully: date=%s, master_id=%s, count=%d",
		dateStr, masterID, len(list))
	handlers.RespondJSON(w, http.StatusOK, AppointmentListResponse{
		Date:         dateStr,
		MasterID:     masterID,
		Appointments: handlers.NewAppointmentList(list),
		Total:        len(list),
	})
}
