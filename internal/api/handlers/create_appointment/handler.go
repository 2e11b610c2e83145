package create_appointment

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/SMC-StudioBooking/internal/api/handlers"
	"github.com/m04kA/SMC-StudioBooking/internal/service/appointments"
	createAppointment "github.com/m04kA/SMC-StudioBooking/internal/usecase/create_appointment"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidTime        = "некорректный формат времени начала, ожидается HH:MM"
	msgInvalidInput       = "заполните имя, телефон, мастера, услуги, дату и время"
	msgDateInPast         = "нельзя записаться на прошедшую дату"
	msgSlotNotAvailable   = "выбранное время недоступно"
	msgMasterNotFound     = "мастер не найден"
	msgServiceNotFound    = "услуга не найдена"
	msgMasterInactive     = "мастер не принимает записи"
	msgServiceInactive    = "услуга недоступна"
	msgInvalidTimeSlot    = "время начала не совпадает с сеткой слотов"
	msgValidation         = "некорректные данные записи"
	msgNotFound           = "клиент, мастер или услуга не найдены"
)

var (
	errInvalidDate = errors.New("invalid date")
	errInvalidTime = errors.New("invalid time")
)

type Handler struct {
	useCase  CreateAppointmentUseCase
	location *time.Location
	logger   Logger
}

func NewHandler(useCase CreateAppointmentUseCase, location *time.Location, logger Logger) *Handler {
	return &Handler{
		useCase:  useCase,
		location: location,
		logger:   logger,
	}
}

// Handle POST /api/v1/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	actor := handlers.ActorFrom(r.Context())

	// Конвертируем HTTP запрос в модель use case (с парсингом даты и времени)
	useCaseReq, err := req.ToUseCaseRequest(h.location, actor)
	if err != nil {
		h.logger.Warn("POST /appointments - Failed to parse request: %v", err)
		if errors.Is(err, errInvalidTime) {
			handlers.RespondBadRequest(w, msgInvalidTime)
		} else {
			handlers.RespondBadRequest(w, msgInvalidDate)
		}
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrSlotNotAvailable):
			h.logger.Warn("POST /appointments - Slot not available: master_id=%s, date=%s, time=%s",
				req.MasterID, req.Date, req.StartTime)
			handlers.RespondConflict(w, msgSlotNotAvailable)

		case errors.Is(err, appointments.ErrMasterNotFound):
			handlers.RespondNotFound(w, msgMasterNotFound)

		case errors.Is(err, appointments.ErrServiceNotFound):
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, appointments.ErrMasterInactive):
			handlers.RespondBadRequest(w, msgMasterInactive)

		case errors.Is(err, appointments.ErrServiceInactive):
			handlers.RespondBadRequest(w, msgServiceInactive)

		case errors.Is(err, appointments.ErrInvalidTimeSlot):
			handlers.RespondBadRequest(w, msgInvalidTimeSlot)

		case errors.Is(err, createAppointment.ErrInvalidDate):
			h.logger.Warn("POST /appointments - Date in the past: date=%s, role=%s", req.Date, actor.Role)
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, createAppointment.ErrInvalidInput):
			h.logger.Warn("POST /appointments - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			if handlers.StatusFor(err) == http.StatusInternalServerError {
				h.logger.Error("POST /appointments - Failed to create appointment: master_id=%s, error=%v", req.MasterID, err)
			}
			handlers.RespondDomainError(w, err, messageFor(err))
		}
		return
	}

	h.logger.Info("POST /appointments - Appointment created successfully: appointment_id=%s, client_id=%s, master_id=%s",
		result.Appointment.ID, result.Appointment.ClientID, result.Appointment.MasterID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}

func messageFor(err error) string {
	if handlers.StatusFor(err) == http.StatusNotFound {
		return msgNotFound
	}
	return msgValidation
}
