package models

import (
	"time"

	"github.com/m04kA/SMC-StudioBooking/internal/domain"
	"github.com/m04kA/SMC-StudioBooking/pkg/types"
)

// CreateInput данные новой записи; клиент уже определён
type CreateInput struct {
	ClientID   string
	MasterID   string
	ServiceIDs []string
	Date       time.Time
	StartTime  types.TimeString
	Notes      string
	CreatedBy  string
}

// Patch частичное изменение записи, nil поля не меняются
type Patch struct {
	Status     *domain.AppointmentStatus
	Notes      *string
	ServiceIDs []string
}

// IsEmpty сообщает, что изменений нет
func (p Patch) IsEmpty() bool {
	return p.Status == nil && p.Notes == nil && p.ServiceIDs == nil
}

// RelocateInput перенос записи к мастеру и на время
type RelocateInput struct {
	AppointmentID string
	MasterID      string
	Date          *time.Time // nil - тот же день
	StartTime     types.TimeString
}
