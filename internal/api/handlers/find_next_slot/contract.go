package find_next_slot

import (
	"context"

	findUC "github.com/m04kA/SMC-ReservationService/internal/usecase/find_next_slot"
)

// FindNextSlotUseCase интерфейс use case поиска ближайшего свободного дня
type FindNextSlotUseCase interface {
	Execute(ctx context.Context, req *findUC.Request) (*findUC.Response, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
