package calendar

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// CalendarRepository интерфейс репозитория календаря открытых дат
type CalendarRepository interface {
	SetStatus(ctx context.Context, date time.Time, status domain.DayStatus) error
	GetRange(ctx context.Context, start, end time.Time) ([]*domain.CalendarDay, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
