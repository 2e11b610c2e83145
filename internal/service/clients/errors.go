package clients

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-StudioBooking/internal/domain"
)

var (
	// ErrClientNotFound возвращается, когда клиент не найден
	ErrClientNotFound = fmt.Errorf("clients.service: %w: client not found", domain.ErrNotFound)

	// ErrNameRequired возвращается для пустого имени клиента
	ErrNameRequired = fmt.Errorf("clients.service: %w: client name is required", domain.ErrValidation)

	// ErrPhoneRequired возвращается для пустого телефона клиента
	ErrPhoneRequired = fmt.Errorf("clients.service: %w: client phone is required", domain.ErrValidation)

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = fmt.Errorf("clients.service: %w", domain.ErrValidation)

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("clients.service: internal error")
)
