package master_calendar

import (
	"context"
	"time"
)

type CalendarExporter interface {
	Export(ctx context.Context, masterID string, from, to time.Time) (string, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
