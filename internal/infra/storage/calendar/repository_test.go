package calendar

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

var calendarColumns = []string{"day", "status", "created_at", "updated_at"}

func newMock(t *testing.T) (*Repository, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	return NewRepository(db), mock, func() { db.Close() }
}

func TestSetStatus_OpenUpserts(t *testing.T) {
	repo, mock, cleanup := newMock(t)
	defer cleanup()

	mock.ExpectExec(regexp.QuoteMeta(
		"INSERT INTO calendar_days (day,status) VALUES ($1,$2) "+
			"ON CONFLICT (day) DO UPDATE SET status = EXCLUDED.status, updated_at = NOW()")).
		WithArgs("2026-01-15", "open").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.SetStatus(context.Background(),
		time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC), domain.DayStatusOpen)
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSetStatus_ClosedDeletes(t *testing.T) {
	repo, mock, cleanup := newMock(t)
	defer cleanup()

	// Закрытые дни не хранятся: закрытие удаляет запись
	mock.ExpectExec(regexp.QuoteMeta(
		"DELETE FROM calendar_days WHERE day = $1")).
		WithArgs("2026-01-15").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.SetStatus(context.Background(),
		time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC), domain.DayStatusClosed)
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSetStatus_ClosingAbsentDayIsNoop(t *testing.T) {
	repo, mock, cleanup := newMock(t)
	defer cleanup()

	// Удаление несуществующего дня не является ошибкой
	mock.ExpectExec("DELETE FROM calendar_days").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.SetStatus(context.Background(),
		time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC), domain.DayStatusClosed)
	require.NoError(t, err)
}

func TestGetByDate(t *testing.T) {
	repo, mock, cleanup := newMock(t)
	defer cleanup()

	date := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT day, status, created_at, updated_at FROM calendar_days WHERE day = $1")).
		WithArgs("2026-01-15").
		WillReturnRows(sqlmock.NewRows(calendarColumns).AddRow(date, "open", now, now))

	day, err := repo.GetByDate(context.Background(), date)
	require.NoError(t, err)
	assert.True(t, day.IsOpen())
	assert.Equal(t, date, day.Date)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByDate_NotFound(t *testing.T) {
	repo, mock, cleanup := newMock(t)
	defer cleanup()

	mock.ExpectQuery("SELECT .+ FROM calendar_days WHERE day = ").
		WithArgs("2026-01-15").
		WillReturnRows(sqlmock.NewRows(calendarColumns))

	_, err := repo.GetByDate(context.Background(),
		time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC))
	require.ErrorIs(t, err, ErrDayNotFound)
}

func TestGetRange(t *testing.T) {
	repo, mock, cleanup := newMock(t)
	defer cleanup()

	start := time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 1, 20, 0, 0, 0, 0, time.UTC)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT day, status, created_at, updated_at FROM calendar_days "+
			"WHERE day >= $1 AND day <= $2 ORDER BY day ASC")).
		WithArgs("2026-01-10", "2026-01-20").
		WillReturnRows(sqlmock.NewRows(calendarColumns).
			AddRow(time.Date(2026, 1, 12, 0, 0, 0, 0, time.UTC), "open", now, now).
			AddRow(time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC), "open", now, now))

	days, err := repo.GetRange(context.Background(), start, end)
	require.NoError(t, err)
	require.Len(t, days, 2)
	assert.Equal(t, "2026-01-12", days[0].Date.Format(domain.DateFormat))
	assert.Equal(t, "2026-01-15", days[1].Date.Format(domain.DateFormat))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetRange_Empty(t *testing.T) {
	repo, mock, cleanup := newMock(t)
	defer cleanup()

	mock.ExpectQuery("SELECT .+ FROM calendar_days").
		WillReturnRows(sqlmock.NewRows(calendarColumns))

	days, err := repo.GetRange(context.Background(),
		time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 1, 20, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Empty(t, days)
}
