package check_availability

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// SubmissionRepository интерфейс репозитория заявок
type SubmissionRepository interface {
	List(ctx context.Context, filter domain.SubmissionFilter) ([]*domain.Submission, error)
}

// CalendarRepository интерфейс репозитория календаря открытых дат
type CalendarRepository interface {
	GetByDate(ctx context.Context, date time.Time) (*domain.CalendarDay, error)
}

// LimitsResolver интерфейс политики лимитов вместимости
type LimitsResolver interface {
	ResolveLimits(ctx context.Context) (*domain.CapacityLimits, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
