package submissions

import (
	"context"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// SubmissionRepository интерфейс репозитория заявок
type SubmissionRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Submission, error)
	UpdateStatus(ctx context.Context, id string, status domain.SubmissionStatus) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
