package models

import (
	"time"

	"github.com/m04kA/SMC-StudioBooking/internal/domain"
)

// RecordInput новая кассовая операция
type RecordInput struct {
	Type          domain.TransactionType
	Amount        int64
	Category      string
	Description   string
	MasterID      string
	AppointmentID string
	At            *time.Time // nil - текущее время
	CreatedBy     string
}

// Summary итоги кассы
type Summary struct {
	Income  int64
	Expense int64
	Balance int64
	Count   int
}
