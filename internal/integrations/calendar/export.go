// Package calendar выгрузка записей мастера в формате iCalendar.
package calendar

import (
	"context"
	"fmt"
	"strings"
	"time"

	ical "github.com/arran4/golang-ical"

	"github.com/m04kA/SMC-StudioBooking/internal/domain"
)

// ErrMasterNotFound мастер неизвестен
var ErrMasterNotFound = fmt.Errorf("calendar: %w: master not found", domain.ErrNotFound)

// ErrInvalidRange конец периода раньше начала
var ErrInvalidRange = fmt.Errorf("calendar: %w: invalid range", domain.ErrValidation)

// AppointmentReader источник записей мастера
type AppointmentReader interface {
	ForMasterBetween(ctx context.Context, masterID string, from, to time.Time) []*domain.Appointment
}

// Catalog справочник мастеров и услуг
type Catalog interface {
	Master(id string) (domain.Master, bool)
	Service(id string) (domain.Service, bool)
}

// Exporter собирает ленту календаря
type Exporter struct {
	appointments AppointmentReader
	catalog      Catalog
	studioName   string
}

// NewExporter создает экспортер
func NewExporter(appointments AppointmentReader, catalog Catalog, studioName string) *Exporter {
	return &Exporter{appointments: appointments, catalog: catalog, studioName: studioName}
}

// Export VEVENT на каждую неотменённую запись мастера в [from, to)
func (e *Exporter) Export(ctx context.Context, masterID string, from, to time.Time) (string, error) {
	master, ok := e.catalog.Master(masterID)
	if !ok {
		return "", ErrMasterNotFound
	}
	if !to.After(from) {
		return "", ErrInvalidRange
	}

	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId("-//SMC-StudioBooking//Appointments//UK")
	cal.SetXWRCalName(fmt.Sprintf("%s: %s", e.studioName, master.Name))

	for _, a := range e.appointments.ForMasterBetween(ctx, masterID, from, to) {
		if a.IsCancelled() {
			continue
		}
		event := cal.AddEvent(a.ID + "@studio")
		event.SetDtStampTime(a.CreatedAt)
		event.SetStartAt(a.StartTime)
		event.SetEndAt(a.EndTime)
		event.SetSummary(fmt.Sprintf("%s: %s", a.ClientName, e.serviceNames(a.ServiceIDs)))
		event.SetDescription(description(a))
		event.SetProperty(ical.ComponentPropertyStatus, icalStatus(a.Status))
	}

	return cal.Serialize(), nil
}

func (e *Exporter) serviceNames(ids []string) string {
	names := make([]string, 0, len(ids))
	for _, id := range ids {
		if svc, ok := e.catalog.Service(id); ok {
			names = append(names, svc.Name)
		} else {
			names = append(names, id)
		}
	}
	return strings.Join(names, ", ")
}

func description(a *domain.Appointment) string {
	lines := []string{"Телефон: " + a.ClientPhone}
	if a.Notes != "" {
		lines = append(lines, a.Notes)
	}
	return strings.Join(lines, "\n")
}

func icalStatus(status domain.AppointmentStatus) string {
	if status == domain.StatusNew {
		return "TENTATIVE"
	}
	return "CONFIRMED"
}

// ParseRange разбирает from/to из запроса; по умолчанию 30 дней от начала сегодняшнего дня
func ParseRange(fromRaw, toRaw string, now time.Time, loc *time.Location) (time.Time, time.Time, error) {
	y, m, d := now.In(loc).Date()
	from := time.Date(y, m, d, 0, 0, 0, 0, loc)
	to := from.AddDate(0, 0, 30)

	var err error
	if fromRaw != "" {
		if from, err = time.ParseInLocation(domain.DateFormat, fromRaw, loc); err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("%w: from: %v", ErrInvalidRange, err)
		}
		if toRaw == "" {
			to = from.AddDate(0, 0, 30)
		}
	}
	if toRaw != "" {
		if to, err = time.ParseInLocation(domain.DateFormat, toRaw, loc); err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("%w: to: %v", ErrInvalidRange, err)
		}
		// конец периода включительно
		to = to.AddDate(0, 0, 1)
	}
	if !to.After(from) {
		return time.Time{}, time.Time{}, ErrInvalidRange
	}
	return from, to, nil
}
