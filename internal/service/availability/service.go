package availability

import (
	"context"
	"time"

	"github.com/m04kA/SMC-StudioBooking/internal/domain"
	"github.com/m04kA/SMC-StudioBooking/internal/slots"
	"github.com/m04kA/SMC-StudioBooking/pkg/types"
)

// Request кандидат на запись
type Request struct {
	MasterID             string
	Date                 time.Time // календарный день в часовом поясе студии
	StartTime            types.TimeString
	DurationMinutes      int
	ExcludeAppointmentID string // запись, которую переносят, в проверке не участвует
}

// Interval абсолютный интервал кандидата
func (r Request) Interval() (time.Time, time.Time) {
	start := r.StartTime.On(r.Date)
	return start, start.Add(time.Duration(r.DurationMinutes) * time.Minute)
}

// Checker решает, можно ли записаться к мастеру на указанное время.
// Только чтение, без побочных эффектов.
type Checker struct {
	masters MasterReader
	logger  Logger
}

// NewChecker создает новый экземпляр проверки доступности
func NewChecker(masters MasterReader, logger Logger) *Checker {
	return &Checker{
		masters: masters,
		logger:  logger,
	}
}

// IsAvailable проверяет доступность относительно переданного набора записей.
// Занятый слот это (false, nil); ошибка только для некорректного запроса.
func (c *Checker) IsAvailable(ctx context.Context, appointments AppointmentReader, req Request) (bool, error) {
	if req.DurationMinutes <= 0 {
		c.logger.Warn("IsAvailable: master=%s, invalid duration=%d", req.MasterID, req.DurationMinutes)
		return false, ErrInvalidDuration
	}

	if err := req.StartTime.Validate(); err != nil {
		c.logger.Warn("IsAvailable: master=%s, invalid start time=%q", req.MasterID, req.StartTime)
		return false, ErrInvalidStartTime
	}

	master, ok := c.masters.Master(req.MasterID)
	if !ok {
		c.logger.Warn("IsAvailable: master=%s not found", req.MasterID)
		return false, ErrMasterNotFound
	}

	if !master.IsActive {
		return false, nil
	}

	startMinute := req.StartTime.Minutes()
	endMinute := startMinute + req.DurationMinutes
	if !slots.WithinWorkingHours(master.Schedule, req.Date.Weekday(), startMinute, endMinute) {
		return false, nil
	}

	start, end := req.Interval()
	if conflict := FindConflict(appointments, req.MasterID, req.Date, start, end, req.ExcludeAppointmentID); conflict != nil {
		return false, nil
	}

	return true, nil
}

// FindConflict возвращает первую неотменённую запись мастера, пересекающую [start, end)
func FindConflict(
	appointments AppointmentReader,
	masterID string,
	date time.Time,
	start, end time.Time,
	excludeID string,
) *domain.Appointment {
	if appointments == nil {
		return nil
	}

	for _, appt := range appointments.MasterAppointmentsOn(masterID, date) {
		if appt.ID == excludeID || !appt.OccupiesSlot() {
			continue
		}
		if slots.Overlaps(start, end, appt.StartTime, appt.EndTime) {
			return appt
		}
	}
	return nil
}

// Snapshot неизменяемый набор записей, снятый целиком до или после мутации
type Snapshot []*domain.Appointment

// MasterAppointmentsOn реализует AppointmentReader
func (s Snapshot) MasterAppointmentsOn(masterID string, date time.Time) []*domain.Appointment {
	result := make([]*domain.Appointment, 0)
	for _, appt := range s {
		if appt.MasterID == masterID && appt.OnDate(date) {
			result = append(result, appt)
		}
	}
	return result
}
