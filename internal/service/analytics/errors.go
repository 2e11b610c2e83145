package analytics

import (
	"fmt"

	"github.com/m04kA/SMC-StudioBooking/internal/domain"
)

var (
	// ErrClientNotFound возвращается для неизвестного клиента
	ErrClientNotFound = fmt.Errorf("analytics.service: %w: client not found", domain.ErrNotFound)
)
