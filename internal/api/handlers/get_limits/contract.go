package get_limits

import (
	"context"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// SettingsService интерфейс сервиса лимитов
type SettingsService interface {
	ResolveLimits(ctx context.Context) (*domain.CapacityLimits, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
