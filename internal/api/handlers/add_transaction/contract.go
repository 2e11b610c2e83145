package add_transaction

import (
	"context"

	"github.com/m04kA/SMC-StudioBooking/internal/domain"
	"github.com/m04kA/SMC-StudioBooking/internal/service/access"
	"github.com/m04kA/SMC-StudioBooking/internal/service/ledger/models"
)

type CashLedger interface {
	Record(ctx context.Context, in *models.RecordInput) (*domain.CashTransaction, error)
}

type AccessPolicy interface {
	Check(actor domain.Actor, action access.Action) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
