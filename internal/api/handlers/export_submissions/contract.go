package export_submissions

import (
	"context"
	"time"
)

// ExportService интерфейс сервиса выгрузки заявок
type ExportService interface {
	ExportSubmissions(ctx context.Context, start, end time.Time) ([]byte, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
