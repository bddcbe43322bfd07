package find_next_slot

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// SubmissionRepository интерфейс репозитория заявок
type SubmissionRepository interface {
	// CountActiveGroupedByDate возвращает количество неархивных заявок по датам
	// диапазона одним запросом
	CountActiveGroupedByDate(ctx context.Context, start, end time.Time) (map[string]int, error)
}

// CalendarRepository интерфейс репозитория календаря открытых дат
type CalendarRepository interface {
	GetRange(ctx context.Context, start, end time.Time) ([]*domain.CalendarDay, error)
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
