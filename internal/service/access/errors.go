package access

import (
	"fmt"

	"github.com/m04kA/SMC-StudioBooking/internal/domain"
)

var (
	// ErrForbidden возвращается, когда роли не хватает прав
	ErrForbidden = fmt.Errorf("access.policy: %w: operation is not allowed for this role", domain.ErrForbidden)

	// ErrNotOwner возвращается мастеру, который меняет чужую запись
	ErrNotOwner = fmt.Errorf("access.policy: %w: appointment belongs to another master", domain.ErrForbidden)
)
