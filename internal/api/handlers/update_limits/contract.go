package update_limits

import (
	"context"

	settingsService "github.com/m04kA/SMC-ReservationService/internal/service/settings"
)

// SettingsService интерфейс сервиса лимитов
type SettingsService interface {
	UpdateLimits(ctx context.Context, req *settingsService.UpdateLimitsRequest) (*settingsService.LimitsResponse, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
