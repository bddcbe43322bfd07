package export

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/pkg/ptr"
)

type stubSubmissionRepo struct {
	subs []*domain.Submission
}

func (r *stubSubmissionRepo) List(_ context.Context, _ domain.SubmissionFilter) ([]*domain.Submission, error) {
	return r.subs, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestExportSubmissions(t *testing.T) {
	date := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)
	repo := &stubSubmissionRepo{subs: []*domain.Submission{
		{
			ID:          "sub-1",
			BookingDate: date,
			Identity:    "79001111111",
			Name:        "Иван",
			Phone:       "+79001111111",
			Note:        ptr.Ptr("перезвонить вечером"),
			Status:      domain.StatusPending,
			Source:      "web",
			CreatedAt:   time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC),
		},
		{
			ID:          "sub-2",
			BookingDate: date,
			Identity:    "79002222222",
			Name:        "Петр",
			Phone:       "+79002222222",
			Status:      domain.StatusReviewed,
			Source:      "admin",
			CreatedAt:   time.Date(2026, 1, 11, 9, 0, 0, 0, time.UTC),
		},
	}}

	svc := NewService(repo, nopLogger{})

	data, err := svc.ExportSubmissions(context.Background(), date, date)
	require.NoError(t, err)
	require.NotEmpty(t, data)

	// Выгрузка - валидный xlsx с заголовком и строками заявок
	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	sheet := f.GetSheetName(f.GetActiveSheetIndex())
	rows, err := f.GetRows(sheet)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, "id", rows[0][0])
	assert.Equal(t, "sub-1", rows[1][0])
	assert.Equal(t, "2026-01-15", rows[1][1])
	assert.Equal(t, "перезвонить вечером", rows[1][4])
	assert.Equal(t, "sub-2", rows[2][0])
	// Пустая заметка выгружается пустой ячейкой
	assert.Equal(t, "", rows[2][4])
}

func TestExportSubmissions_EmptyPeriod(t *testing.T) {
	svc := NewService(&stubSubmissionRepo{}, nopLogger{})

	start := time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 1, 20, 0, 0, 0, 0, time.UTC)

	// Пустой период дает файл только с заголовком
	data, err := svc.ExportSubmissions(context.Background(), start, end)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(f.GetActiveSheetIndex()))
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestExportSubmissions_InvalidRange(t *testing.T) {
	svc := NewService(&stubSubmissionRepo{}, nopLogger{})

	end := time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)
	start := time.Date(2026, 1, 20, 0, 0, 0, 0, time.UTC)

	_, err := svc.ExportSubmissions(context.Background(), start, end)
	require.ErrorIs(t, err, ErrInvalidRange)
}
