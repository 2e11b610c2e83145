package availability

import (
	"time"

	"github.com/m04kA/SMC-StudioBooking/internal/domain"
)

// MasterReader чтение мастеров из каталога
type MasterReader interface {
	Master(id string) (domain.Master, bool)
}

// AppointmentReader чтение записей мастера за день
type AppointmentReader interface {
	MasterAppointmentsOn(masterID string, date time.Time) []*domain.Appointment
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
