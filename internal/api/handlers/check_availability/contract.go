package check_availability

import (
	"context"

	checkUC "github.com/m04kA/SMC-ReservationService/internal/usecase/check_availability"
)

// CheckAvailabilityUseCase интерфейс use case проверки доступности
type CheckAvailabilityUseCase interface {
	Execute(ctx context.Context, req *checkUC.Request) (*checkUC.Response, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
