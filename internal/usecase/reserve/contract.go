package reserve

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// SubmissionRepository интерфейс репозитория заявок
type SubmissionRepository interface {
	Create(ctx context.Context, sub *domain.Submission) (*domain.Submission, error)
	List(ctx context.Context, filter domain.SubmissionFilter) ([]*domain.Submission, error)
}

// CalendarRepository интерфейс репозитория календаря открытых дат
type CalendarRepository interface {
	GetByDate(ctx context.Context, date time.Time) (*domain.CalendarDay, error)
}

// LimitsResolver интерфейс политики лимитов вместимости
// Лимиты читаются заново на каждую операцию, без кэширования
type LimitsResolver interface {
	ResolveLimits(ctx context.Context) (*domain.CapacityLimits, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// IdentityExtractor вычисляет дедупликационный ключ из контактных данных заявки
// Реализация поставляется вызывающим слоем, usecase её не определяет
type IdentityExtractor interface {
	Extract(name, phone string) string
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
