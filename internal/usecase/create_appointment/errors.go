package create_appointment

import (
	"fmt"

	"github.com/m04kA/SMC-StudioBooking/internal/domain"
)

var (
	// ErrInvalidDate возвращается, когда гость записывается на прошедший день
	ErrInvalidDate = fmt.Errorf("create_appointment: %w: invalid appointment date", domain.ErrValidation)

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = fmt.Errorf("create_appointment: %w", domain.ErrValidation)
)
