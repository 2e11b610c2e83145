// Package slots содержит чистые функции работы со временем:
// сетку слотов, пересечение интервалов и проверку рабочих часов.
package slots

import (
	"iter"
	"time"

	"github.com/m04kA/SMC-StudioBooking/internal/domain"
	"github.com/m04kA/SMC-StudioBooking/pkg/types"
)

// Grid генерирует метки времени с startHour (включительно) до endHour (не включительно)
// с шагом stepMinutes. Последовательность ленивая и перезапускаемая.
func Grid(startHour, endHour, stepMinutes int) iter.Seq[types.TimeString] {
	return func(yield func(types.TimeString) bool) {
		if stepMinutes <= 0 || endHour <= startHour || startHour < 0 || endHour > 24 {
			return
		}
		for m := startHour * 60; m < endHour*60; m += stepMinutes {
			ts, err := types.NewTimeStringFromMinutes(m)
			if err != nil {
				return
			}
			if !yield(ts) {
				return
			}
		}
	}
}

// DefaultGrid сетка 09:00-20:00 с шагом 15 минут
func DefaultGrid() iter.Seq[types.TimeString] {
	return Grid(domain.DefaultSlotStartHour, domain.DefaultSlotEndHour, domain.DefaultSlotStepMinutes)
}

// Overlaps проверяет пересечение полуоткрытых интервалов [aStart, aEnd) и [bStart, bEnd).
// Касание концами пересечением не считается.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}

// WithinWorkingHours проверяет, что интервал [startMinute, endMinute) (минуты от полуночи)
// целиком попадает в рабочее время дня
func WithinWorkingHours(schedule domain.WorkSchedule, weekday time.Weekday, startMinute, endMinute int) bool {
	day := schedule.ForDay(weekday)
	if !day.IsWorking {
		return false
	}

	dayStart, dayEnd := day.Start.Minutes(), day.End.Minutes()
	if dayStart < 0 || dayEnd < 0 {
		return false
	}

	return startMinute >= dayStart && endMinute <= dayEnd && startMinute < endMinute
}
