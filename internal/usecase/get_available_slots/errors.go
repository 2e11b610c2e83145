package get_available_slots

import (
	"fmt"

	"github.com/m04kA/SMC-StudioBooking/internal/domain"
)

var (
	// ErrMasterNotFound возвращается, когда мастер не найден
	ErrMasterNotFound = fmt.Errorf("get_available_slots: %w: master not found", domain.ErrNotFound)

	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = fmt.Errorf("get_available_slots: %w: service not found", domain.ErrNotFound)

	// ErrServiceInactive возвращается для деактивированной услуги
	ErrServiceInactive = fmt.Errorf("get_available_slots: %w: service is not active", domain.ErrValidation)

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = fmt.Errorf("get_available_slots: %w", domain.ErrValidation)
)
