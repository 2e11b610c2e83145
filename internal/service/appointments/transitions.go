package appointments

import "github.com/m04kA/SMC-StudioBooking/internal/domain"

// TransitionPolicy решает, допустима ли смена статуса записи
type TransitionPolicy interface {
	Allow(from, to domain.AppointmentStatus) bool
}

// AllowAll разрешает любой переход между известными статусами
type AllowAll struct{}

// Allow реализует TransitionPolicy
func (AllowAll) Allow(from, to domain.AppointmentStatus) bool {
	return true
}

// TerminalLocked запрещает выходить из завершённой или отменённой записи
type TerminalLocked struct{}

// Allow реализует TransitionPolicy
func (TerminalLocked) Allow(from, to domain.AppointmentStatus) bool {
	if from == to {
		return true
	}
	return from != domain.StatusCompleted && from != domain.StatusCancelled
}

// PolicyFor возвращает политику по флагу конфигурации
func PolicyFor(strict bool) TransitionPolicy {
	if strict {
		return TerminalLocked{}
	}
	return AllowAll{}
}
