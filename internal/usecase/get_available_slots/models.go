package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-StudioBooking/pkg/types"
)

// Request модель запроса свободных слотов
type Request struct {
	MasterID        string
	Date            time.Time // календарный день в часовом поясе студии
	ServiceIDs      []string  // длительность считается по активным услугам
	DurationMinutes int       // используется, если услуги не указаны
}

// Response свободные времена начала
type Response struct {
	Date            time.Time
	MasterID        string
	DurationMinutes int
	Slots           []types.TimeString
}

// Grid параметры сетки слотов
type Grid struct {
	StartHour   int
	EndHour     int
	StepMinutes int
}
