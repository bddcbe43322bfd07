package update_submission_status

import (
	"context"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// SubmissionsService интерфейс сервиса заявок
type SubmissionsService interface {
	UpdateStatus(ctx context.Context, id string, status string) (*domain.Submission, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
