package domain

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-StudioBooking/pkg/types"
)

// DaySchedule рабочее время мастера в один день недели
type DaySchedule struct {
	Start     types.TimeString `json:"start"`
	End       types.TimeString `json:"end"`
	IsWorking bool             `json:"isWorking"`
}

// WorkSchedule недельное расписание мастера
type WorkSchedule struct {
	Monday    DaySchedule `json:"monday"`
	Tuesday   DaySchedule `json:"tuesday"`
	Wednesday DaySchedule `json:"wednesday"`
	Thursday  DaySchedule `json:"thursday"`
	Friday    DaySchedule `json:"friday"`
	Saturday  DaySchedule `json:"saturday"`
	Sunday    DaySchedule `json:"sunday"`
}

// ForDay возвращает расписание на указанный день недели
func (s WorkSchedule) ForDay(weekday time.Weekday) DaySchedule {
	switch weekday {
	case time.Monday:
		return s.Monday
	case time.Tuesday:
		return s.Tuesday
	case time.Wednesday:
		return s.Wednesday
	case time.Thursday:
		return s.Thursday
	case time.Friday:
		return s.Friday
	case time.Saturday:
		return s.Saturday
	case time.Sunday:
		return s.Sunday
	default:
		return DaySchedule{IsWorking: false}
	}
}

// Validate проверяет, что в рабочие дни начало не позже конца
func (s WorkSchedule) Validate() error {
	for _, day := range []time.Weekday{
		time.Monday, time.Tuesday, time.Wednesday, time.Thursday,
		time.Friday, time.Saturday, time.Sunday,
	} {
		d := s.ForDay(day)
		if !d.IsWorking {
			continue
		}
		if err := d.Start.Validate(); err != nil {
			return fmt.Errorf("%s: start: %w", day, err)
		}
		if err := d.End.Validate(); err != nil {
			return fmt.Errorf("%s: end: %w", day, err)
		}
		if d.Start.IsAfter(d.End) {
			return fmt.Errorf("%s: start %s is after end %s", day, d.Start, d.End)
		}
	}
	return nil
}

// DefaultWorkSchedule Пн-Пт 09:00-18:00, Сб 10:00-16:00, Вс выходной
func DefaultWorkSchedule() WorkSchedule {
	weekday := DaySchedule{Start: "09:00", End: "18:00", IsWorking: true}
	return WorkSchedule{
		Monday:    weekday,
		Tuesday:   weekday,
		Wednesday: weekday,
		Thursday:  weekday,
		Friday:    weekday,
		Saturday:  DaySchedule{Start: "10:00", End: "16:00", IsWorking: true},
		Sunday:    DaySchedule{Start: "00:00", End: "00:00", IsWorking: false},
	}
}

// Master мастер студии
type Master struct {
	ID             string
	Name           string
	Specialization string
	Phone          string
	Color          string
	Schedule       WorkSchedule
	IsActive       bool
	CreatedAt      time.Time
}
