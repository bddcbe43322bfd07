package create_reservation

import (
	"context"

	reserveUC "github.com/m04kA/SMC-ReservationService/internal/usecase/reserve"
)

// ReserveUseCase интерфейс use case приема заявки
type ReserveUseCase interface {
	Execute(ctx context.Context, req *reserveUC.Request) (*reserveUC.Response, error)
}

// MetricsRecorder интерфейс для учета решений по заявкам
type MetricsRecorder interface {
	IncReservation(result string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
