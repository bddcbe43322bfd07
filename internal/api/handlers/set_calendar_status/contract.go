package set_calendar_status

import (
	"context"
	"time"
)

// CalendarService интерфейс сервиса календаря
type CalendarService interface {
	SetStatus(ctx context.Context, date time.Time, status string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
