package notifications

import (
	"context"

	"github.com/m04kA/SMC-StudioBooking/internal/domain"
	"github.com/m04kA/SMC-StudioBooking/internal/service/access"
)

type Inbox interface {
	List(ctx context.Context, masterID string, unreadOnly bool) []domain.Notification
	UnreadCount(ctx context.Context, masterID string) int
	MarkRead(ctx context.Context, masterID, id string) error
	MarkAllRead(ctx context.Context, masterID string) int
}

type AccessPolicy interface {
	Check(actor domain.Actor, action access.Action) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
