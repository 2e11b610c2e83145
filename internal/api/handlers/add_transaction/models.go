package add_transaction

import (
	"github.com/m04kA/SMC-StudioBooking/internal/api/handlers"
	"github.com/m04kA/SMC-StudioBooking/internal/domain"
	"github.com/m04kA/SMC-StudioBooking/internal/service/ledger/models"
)

// AddTransactionRequest HTTP request model
type AddTransactionRequest struct {
	Type          string `json:"type"` // income | expense
	Amount        int64  `json:"amount"`
	Category      string `json:"category,omitempty"`
	Description   string `json:"description,omitempty"`
	MasterID      string `json:"masterId,omitempty"`
	AppointmentID string `json:"appointmentId,omitempty"`
}

// TransactionResponse кассовая операция
type TransactionResponse struct {
	ID            string `json:"id"`
	Type          string `json:"type"`
	Amount        int64  `json:"amount"`
	Category      string `json:"category"`
	Description   string `json:"description,omitempty"`
	MasterID      string `json:"masterId,omitempty"`
	AppointmentID string `json:"appointmentId,omitempty"`
	CreatedAt     string `json:"createdAt"`
	CreatedBy     string `json:"createdBy,omitempty"`
}

// ToRecordInput конвертирует HTTP запрос в операцию кассы
func (r *AddTransactionRequest) ToRecordInput(createdBy string) *models.RecordInput {
	return &models.RecordInput{
		Type:          domain.TransactionType(r.Type),
		Amount:        r.Amount,
		Category:      r.Category,
		Description:   r.Description,
		MasterID:      r.MasterID,
		AppointmentID: r.AppointmentID,
		CreatedBy:     createdBy,
	}
}

// NewTransactionResponse конвертирует операцию в HTTP response
func NewTransactionResponse(tx *domain.CashTransaction) TransactionResponse {
	return TransactionResponse{
		ID:            tx.ID,
		Type:          string(tx.Type),
		Amount:        tx.Amount,
		Category:      tx.Category,
		Description:   tx.Description,
		MasterID:      tx.MasterID,
		AppointmentID: tx.AppointmentID,
		CreatedAt:     handlers.FormatTime(tx.CreatedAt),
		CreatedBy:     tx.CreatedBy,
	}
}
