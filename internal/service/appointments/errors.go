package appointments

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-StudioBooking/internal/domain"
)

var (
	// ErrAppointmentNotFound возвращается, когда запись не найдена
	ErrAppointmentNotFound = fmt.Errorf("appointments.service: %w: appointment not found", domain.ErrNotFound)

	// ErrClientNotFound возвращается для неизвестного клиента
	ErrClientNotFound = fmt.Errorf("appointments.service: %w: client not found", domain.ErrNotFound)

	// ErrMasterNotFound возвращается для неизвестного мастера
	ErrMasterNotFound = fmt.Errorf("appointments.service: %w: master not found", domain.ErrNotFound)

	// ErrServiceNotFound возвращается для неизвестной услуги
	ErrServiceNotFound = fmt.Errorf("appointments.service: %w: service not found", domain.ErrNotFound)

	// ErrServicesRequired возвращается для пустого списка услуг
	ErrServicesRequired = fmt.Errorf("appointments.service: %w: at least one service is required", domain.ErrValidation)

	// ErrServiceInactive возвращается, когда услуга деактивирована
	ErrServiceInactive = fmt.Errorf("appointments.service: %w: service is not active", domain.ErrValidation)

	// ErrMasterInactive возвращается, когда мастер деактивирован
	ErrMasterInactive = fmt.Errorf("appointments.service: %w: master is not active", domain.ErrValidation)

	// ErrInvalidTimeSlot возвращается, когда время начала не лежит на сетке слотов
	ErrInvalidTimeSlot = fmt.Errorf("appointments.service: %w: invalid time slot", domain.ErrValidation)

	// ErrInvalidStatus возвращается для неизвестного статуса
	ErrInvalidStatus = fmt.Errorf("appointments.service: %w: invalid status", domain.ErrValidation)

	// ErrTransitionNotAllowed возвращается, когда политика запрещает смену статуса
	ErrTransitionNotAllowed = fmt.Errorf("appointments.service: %w: status transition is not allowed", domain.ErrValidation)

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = fmt.Errorf("appointments.service: %w", domain.ErrValidation)

	// ErrSlotNotAvailable возвращается, когда слот занят или вне рабочего времени мастера
	ErrSlotNotAvailable = fmt.Errorf("appointments.service: %w: slot is not available", domain.ErrConflict)

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("appointments.service: internal error")
)
