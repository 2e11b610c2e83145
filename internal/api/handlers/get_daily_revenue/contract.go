package get_daily_revenue

import (
	"context"
	"time"

	"github.com/m04kA/SMC-StudioBooking/internal/domain"
	"github.com/m04kA/SMC-StudioBooking/internal/service/access"
	"github.com/m04kA/SMC-StudioBooking/internal/service/ledger/models"
)

type CashReport interface {
	DailyRevenue(ctx context.Context, date time.Time) int64
	DailyExpenses(ctx context.Context, date time.Time) int64
	Summary(ctx context.Context) models.Summary
	ForDate(ctx context.Context, date time.Time) []domain.CashTransaction
}

type AccessPolicy interface {
	Check(actor domain.Actor, action access.Action) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
