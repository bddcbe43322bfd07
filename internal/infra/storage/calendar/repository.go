package calendar

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/pkg/psqlbuilder"
	"github.com/m04kA/SMC-ReservationService/pkg/txmanager"
)

// DBExecutor интерфейс для работы с БД (поддерживает *sql.DB и *sql.Tx)
type DBExecutor = txmanager.Executor

// Repository репозиторий календаря открытых дат
// Хранит только открытые дни: установка любого статуса кроме open удаляет запись
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория календаря
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// SetStatus устанавливает статус даты
// status == open: запись создается или обновляется (upsert)
// любой другой статус: запись удаляется, отсутствие записи означает closed
func (r *Repository) SetStatus(ctx context.Context, date time.Time, status domain.DayStatus) error {
	if status == domain.DayStatusOpen {
		return r.upsertOpen(ctx, date)
	}
	return r.deleteDay(ctx, date)
}

// GetByDate получает запись календаря для даты
// Возвращает ErrDayNotFound, если дата не открыта
func (r *Repository) GetByDate(ctx context.Context, date time.Time) (*domain.CalendarDay, error) {
	executor := txmanager.ExecutorFromContext(ctx, r.db)

	query, args, err := psqlbuilder.Select("day", "status", "created_at", "updated_at").
		From("calendar_days").
		Where(squirrel.Eq{"day": date.Format(domain.DateFormat)}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByDate - build select query: %v", ErrBuildQuery, err)
	}

	var day domain.CalendarDay
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&day.Date,
		&day.Status,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrDayNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDate - scan day: %v", ErrScanRow, err)
	}

	day.CreatedAt = createdAt.Time
	day.UpdatedAt = updatedAt.Time

	return &day, nil
}

// GetRange получает открытые дни в диапазоне [start, end], отсортированные по дате
func (r *Repository) GetRange(ctx context.Context, start, end time.Time) ([]*domain.CalendarDay, error) {
	executor := txmanager.ExecutorFromContext(ctx, r.db)

	query, args, err := psqlbuilder.Select("day", "status", "created_at", "updated_at").
		From("calendar_days").
		Where(squirrel.GtOrEq{"day": start.Format(domain.DateFormat)}).
		Where(squirrel.LtOrEq{"day": end.Format(domain.DateFormat)}).
		OrderBy("day ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetRange - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetRange - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	days := make([]*domain.CalendarDay, 0)
	for rows.Next() {
		var day domain.CalendarDay
		var createdAt, updatedAt sql.NullTime

		if err := rows.Scan(&day.Date, &day.Status, &createdAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("%w: GetRange - scan row: %v", ErrScanRow, err)
		}

		day.CreatedAt = createdAt.Time
		day.UpdatedAt = updatedAt.Time

		days = append(days, &day)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetRange - rows error: %v", ErrScanRow, err)
	}

	return days, nil
}

func (r *Repository) upsertOpen(ctx context.Context, date time.Time) error {
	executor := txmanager.ExecutorFromContext(ctx, r.db)

	query, args, err := psqlbuilder.Insert("calendar_days").
		Columns("day", "status").
		Values(date.Format(domain.DateFormat), domain.DayStatusOpen).
		Suffix("ON CONFLICT (day) DO UPDATE SET status = EXCLUDED.status, updated_at = NOW()").
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: SetStatus - build upsert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: SetStatus - execute upsert: %v", ErrExecQuery, err)
	}

	return nil
}

func (r *Repository) deleteDay(ctx context.Context, date time.Time) error {
	executor := txmanager.ExecutorFromContext(ctx, r.db)

	query, args, err := psqlbuilder.Delete("calendar_days").
		Where(squirrel.Eq{"day": date.Format(domain.DateFormat)}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: SetStatus - build delete query: %v", ErrBuildQuery, err)
	}

	// Удаление несуществующего дня не является ошибкой: день и так закрыт
	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: SetStatus - execute delete: %v", ErrExecQuery, err)
	}

	return nil
}
