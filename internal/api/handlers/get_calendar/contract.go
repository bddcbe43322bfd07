package get_calendar

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// CalendarService интерфейс сервиса календаря
type CalendarService interface {
	GetRange(ctx context.Context, start, end time.Time) ([]*domain.CalendarDay, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
