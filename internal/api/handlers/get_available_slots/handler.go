package get_available_slots

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-StudioBooking/internal/api/handlers"
	getAvailableSlots "github.com/m04kA/SMC-StudioBooking/internal/usecase/get_available_slots"
)

const (
	msgMissingDate         = "дата обязательна"
	msgInvalidDate         = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidDuration     = "некорректная длительность"
	msgMissingServices     = "укажите услуги (service_ids) или длительность (duration)"
	msgMasterNotFound      = "мастер не найден"
	msgServiceNotFound     = "услуга не найдена"
	msgServiceNotAvailable = "услуга недоступна"
)

var (
	errInvalidDate     = errors.New("invalid date")
	errInvalidDuration = errors.New("invalid duration")
)

type Handler struct {
	useCase  GetAvailableSlotsUseCase
	location *time.Location
	logger   Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, location *time.Location, logger Logger) *Handler {
	return &Handler{
		useCase:  useCase,
		location: location,
		logger:   logger,
	}
}

// Handle GET /api/v1/masters/{masterId}/slots
// Query params: date (required, YYYY-MM-DD), service_ids (comma separated) или duration (минуты)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	masterID := mux.Vars(r)["masterId"]
	query := r.URL.Query()

	dateStr := query.Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /masters/{id}/slots - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	// Формируем запрос к use case (с парсингом даты)
	useCaseReq, err := ToUseCaseRequest(masterID, dateStr, query.Get("service_ids"), query.Get("duration"), h.location)
	if err != nil {
		h.logger.Warn("GET /masters/{id}/slots - Invalid query: %v", err)
		if errors.Is(err, errInvalidDuration) {
			handlers.RespondBadRequest(w, msgInvalidDuration)
		} else {
			handlers.RespondBadRequest(w, msgInvalidDate)
		}
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrMasterNotFound):
			h.logger.Warn("GET /masters/{id}/slots - Master not found: master_id=%s", masterID)
			handlers.RespondNotFound(w, msgMasterNotFound)

		case errors.Is(err, getAvailableSlots.ErrServiceNotFound):
			h.logger.Warn("GET /masters/{id}/slots - Service not found: master_id=%s, service_ids=%v", masterID, useCaseReq.ServiceIDs)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, getAvailableSlots.ErrServiceInactive):
			handlers.RespondBadRequest(w, msgServiceNotAvailable)

		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /masters/{id}/slots - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgMissingServices)

		default:
			h.logger.Error("GET /masters/{id}/slots - Failed to get slots: master_id=%s, error=%v", masterID, err)
			handlers.RespondDomainError(w, err, msgMissingServices)
		}
		return
	}

	h.logger.Info("GET /masters/{id}/slots - Slots retrieved successfully: master_id=%s, date=%s, slots_count=%d",
		masterID, dateStr, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
