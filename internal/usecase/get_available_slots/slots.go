package get_available_slots

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-StudioBooking/pkg/types"
)

// durationOf суммирует длительности активных услуг
func (uc *UseCase) durationOf(serviceIDs []string) (int, error) {
	total := 0
	for _, id := range serviceIDs {
		svc, ok := uc.catalog.Service(id)
		if !ok {
			return 0, fmt.Errorf("%w: id=%s", ErrServiceNotFound, id)
		}
		if !svc.IsActive {
			return 0, fmt.Errorf("%w: id=%s", ErrServiceInactive, id)
		}
		total += svc.DurationMinutes
	}
	return total, nil
}

// notStarted отбрасывает на сегодня слоты, время которых уже прошло
func notStarted(slot types.TimeString, date, now time.Time) bool {
	if !isSameDay(date, now) {
		return true
	}
	current := types.NewTimeString(now.In(date.Location()))
	return !slot.IsBefore(current)
}
