package export

import (
	"context"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// SubmissionRepository интерфейс репозитория заявок
type SubmissionRepository interface {
	List(ctx context.Context, filter domain.SubmissionFilter) ([]*domain.Submission, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
