package catalog

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-StudioBooking/internal/domain"
)

var (
	// ErrMasterNotFound возвращается, когда мастер не найден
	ErrMasterNotFound = fmt.Errorf("catalog.service: %w: master not found", domain.ErrNotFound)

	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = fmt.Errorf("catalog.service: %w: service not found", domain.ErrNotFound)

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = fmt.Errorf("catalog.service: %w", domain.ErrValidation)

	// ErrInvalidSchedule возвращается, когда в рабочий день начало позже конца
	ErrInvalidSchedule = fmt.Errorf("catalog.service: %w: invalid work schedule", domain.ErrValidation)

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("catalog.service: internal error")
)
