package ledger

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-StudioBooking/internal/domain"
)

var (
	// ErrInvalidAmount возвращается для нулевой или отрицательной суммы
	ErrInvalidAmount = fmt.Errorf("ledger.service: %w: amount must be positive", domain.ErrValidation)

	// ErrInvalidType возвращается для неизвестного типа операции
	ErrInvalidType = fmt.Errorf("ledger.service: %w: unknown transaction type", domain.ErrValidation)

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = fmt.Errorf("ledger.service: %w", domain.ErrValidation)

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("ledger.service: internal error")
)
