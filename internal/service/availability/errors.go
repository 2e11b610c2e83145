package availability

import (
	"fmt"

	"github.com/m04kA/SMC-StudioBooking/internal/domain"
)

var (
	// ErrInvalidDuration возвращается при нулевой или отрицательной длительности
	ErrInvalidDuration = fmt.Errorf("availability.checker: %w: duration must be positive", domain.ErrValidation)

	// ErrInvalidStartTime возвращается, когда время начала не в формате HH:MM
	ErrInvalidStartTime = fmt.Errorf("availability.checker: %w: invalid start time", domain.ErrValidation)

	// ErrMasterNotFound возвращается для неизвестного мастера
	ErrMasterNotFound = fmt.Errorf("availability.checker: %w: master not found", domain.ErrNotFound)
)
