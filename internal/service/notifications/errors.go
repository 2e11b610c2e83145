package notifications

import (
	"fmt"

	"github.com/m04kA/SMC-StudioBooking/internal/domain"
)

var (
	// ErrNotificationNotFound возвращается, когда уведомления нет у этого мастера
	ErrNotificationNotFound = fmt.Errorf("notifications.service: %w: notification not found", domain.ErrNotFound)
)
