package domain

import "time"

// TransactionType тип кассовой операции
type TransactionType string

const (
	TransactionIncome  TransactionType = "income"
	TransactionExpense TransactionType = "expense"
)

// IsValid проверяет, что тип известен
func (t TransactionType) IsValid() bool {
	return t == TransactionIncome || t == TransactionExpense
}

// DefaultCategory категория по умолчанию для типа операции
func (t TransactionType) DefaultCategory() string {
	if t == TransactionExpense {
		return DefaultExpenseCategory
	}
	return DefaultIncomeCategory
}

// CashTransaction кассовая операция. Журнал только дополняется.
type CashTransaction struct {
	ID            string
	Type          TransactionType
	Amount        int64 // > 0, в минимальных единицах валюты
	Category      string
	Description   string
	MasterID      string
	AppointmentID string
	CreatedAt     time.Time
	CreatedBy     string
}
