package check_availability

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-StudioBooking/internal/api/handlers"
	"github.com/m04kA/SMC-StudioBooking/internal/service/availability"
	"github.com/m04kA/SMC-StudioBooking/pkg/types"
)

const (
	msgMissingParams   = "дата и время обязательны"
	msgInvalidDate     = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidTime     = "некорректный формат времени, ожидается HH:MM"
	msgInvalidDuration = "длительность должна быть положительной"
	msgServiceNotFound = "услуга не найдена"
	msgMasterNotFound  = "мастер не найден"
	msgCheckFailed     = "не удалось проверить доступность"
)

// AvailabilityResponse ответ проверки слота
type AvailabilityResponse struct {
	MasterID        string `json:"masterId"`
	Date            string `json:"date"`
	StartTime       string `json:"startTime"`
	DurationMinutes int    `json:"durationMinutes"`
	Available       bool   `json:"available"`
}

type Handler struct {
	checker  AvailabilityChecker
	catalog  ServiceCatalog
	location *time.Location
	logger   Logger
}

func NewHandler(checker AvailabilityChecker, catalog ServiceCatalog, location *time.Location, logger Logger) *Handler {
	return &Handler{
		checker:  checker,
		catalog:  catalog,
		location: location,
		logger:   logger,
	}
}

// Handle GET /api/v1/masters/{masterId}/availability
// Query params: date, time (HH:MM), duration (минуты) или service_ids, exclude (ID переносимой записи)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	masterID := mux.Vars(r)["masterId"]
	query := r.URL.Query()

	dateStr, timeStr := query.Get("date"), query.Get("time")
	if dateStr == "" || timeStr == "" {
		h.logger.Warn("GET /masters/{id}/availability - Missing date or time")
		handlers.RespondBadRequest(w, msgMissingParams)
		return
	}

	date, err := handlers.ParseDate(dateStr, h.location)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	startTime, err := types.NewTimeStringFromString(timeStr)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	duration, ok := h.duration(query.Get("duration"), query.Get("service_ids"))
	if !ok {
		h.logger.Warn("GET /masters/{id}/availability - Unknown service: service_ids=%s", query.Get("service_ids"))
		handlers.RespondNotFound(w, msgServiceNotFound)
		return
	}

	req := availability.Request{
		MasterID:             masterID,
		Date:                 date,
		StartTime:            startTime,
		DurationMinutes:      duration,
		ExcludeAppointmentID: query.Get("exclude"),
	}

	available, err := h.checker.IsAvailable(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, availability.ErrInvalidDuration):
			handlers.RespondBadRequest(w, msgInvalidDuration)
		case errors.Is(err, availability.ErrInvalidStartTime):
			handlers.RespondBadRequest(w, msgInvalidTime)
		case errors.Is(err, availability.ErrMasterNotFound):
			handlers.RespondNotFound(w, msgMasterNotFound)
		default:
			h.logger.Error("GET /masters/{id}/availability - Failed to check: master_id=%s, error=%v", masterID, err)
			handlers.RespondDomainError(w, err, msgCheckFailed)
		}
		return
	}

	h.logger.Info("GET /masters/{id}/availability - Checked: master_id=%s, date=%s, time=%s, duration=%d, available=%t",
		masterID, dateStr, timeStr, duration, available)
	handlers.RespondJSON(w, http.StatusOK, AvailabilityResponse{
		MasterID:        masterID,
		Date:            dateStr,
		StartTime:       startTime.String(),
		DurationMinutes: duration,
		Available:       available,
	})
}

// duration берёт явную длительность или сумму длительностей услуг.
// Некорректное число передаётся как 0, его отклонит проверка.
func (h *Handler) duration(raw, serviceIDs string) (int, bool) {
	if raw != "" {
		minutes, err := strconv.Atoi(raw)
		if err != nil {
			return 0, true
		}
		return minutes, true
	}

	total := 0
	for _, id := range strings.Split(serviceIDs, ",") {
		if id = strings.TrimSpace(id); id == "" {
			continue
		}
		svc, ok := h.catalog.Service(id)
		if !ok {
			return 0, false
		}
		total += svc.DurationMinutes
	}
	return total, true
}
