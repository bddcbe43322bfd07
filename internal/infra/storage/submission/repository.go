package submission

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/pkg/psqlbuilder"
	"github.com/m04kA/SMC-ReservationService/pkg/txmanager"
)

// Repository репозиторий для работы с заявками на бронирование
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория заявок
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую заявку
// Если в контексте передана активная транзакция, использует её.
// id генерируется вызывающей стороной и должен быть уникальным
func (r *Repository) Create(ctx context.Context, sub *domain.Submission) (*domain.Submission, error) {
	executor := txmanager.ExecutorFromContext(ctx, r.db)

	query, args, err := psqlbuilder.Insert("submissions").
		Columns(
			"id",
			"booking_date",
			"identity",
			"name",
			"phone",
			"note",
			"status",
			"source",
		).
		Values(
			sub.ID,
			sub.BookingDate,
			sub.Identity,
			sub.Name,
			sub.Phone,
			sub.Note,
			sub.Status,
			sub.Source,
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return nil, ErrDuplicateID
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	sub.CreatedAt = createdAt.Time
	sub.UpdatedAt = updatedAt.Time

	return sub, nil
}

// GetByID получает заявку по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Submission, error) {
	executor := txmanager.ExecutorFromContext(ctx, r.db)

	query, args, err := selectSubmissions().
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var sub domain.Submission
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&sub.ID,
		&sub.BookingDate,
		&sub.Identity,
		&sub.Name,
		&sub.Phone,
		&sub.Note,
		&sub.Status,
		&sub.Source,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrSubmissionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan submission: %v", ErrScanRow, err)
	}

	sub.CreatedAt = createdAt.Time
	sub.UpdatedAt = updatedAt.Time

	return &sub, nil
}

// List получает заявки по фильтру
// Внутри транзакции выборки по дате или идентичности блокируются через FOR UPDATE:
// это закрывает гонку между подсчетом занятых мест и вставкой новой заявки
func (r *Repository) List(ctx context.Context, filter domain.SubmissionFilter) ([]*domain.Submission, error) {
	executor := txmanager.ExecutorFromContext(ctx, r.db)

	selectBuilder := selectSubmissions()

	if filter.StartDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"booking_date": *filter.StartDate})
	}
	if filter.EndDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"booking_date": *filter.EndDate})
	}
	if filter.Identity != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"identity": *filter.Identity})
	}
	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	}

	selectBuilder = selectBuilder.OrderBy("booking_date ASC", "created_at ASC")

	if txmanager.IsInTransaction(ctx) && (filter.StartDate != nil || filter.Identity != nil) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanSubmissions(rows)
}

// CountActiveGroupedByDate возвращает количество неархивных заявок по каждой дате
// в диапазоне [start, end]. Используется поиском ближайшего свободного дня,
// чтобы не делать отдельный запрос на каждую дату-кандидата
func (r *Repository) CountActiveGroupedByDate(ctx context.Context, start, end time.Time) (map[string]int, error) {
	executor := txmanager.ExecutorFromContext(ctx, r.db)

	query, args, err := psqlbuilder.Select("booking_date", "COUNT(*)").
		From("submissions").
		Where(squirrel.GtOrEq{"booking_date": start.Format(domain.DateFormat)}).
		Where(squirrel.LtOrEq{"booking_date": end.Format(domain.DateFormat)}).
		Where(squirrel.NotEq{"status": domain.StatusArchived}).
		GroupBy("booking_date").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: CountActiveGroupedByDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: CountActiveGroupedByDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var date sql.NullTime
		var count int
		if err := rows.Scan(&date, &count); err != nil {
			return nil, fmt.Errorf("%w: CountActiveGroupedByDate - scan row: %v", ErrScanRow, err)
		}
		counts[date.Time.Format(domain.DateFormat)] = count
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: CountActiveGroupedByDate - rows error: %v", ErrScanRow, err)
	}

	return counts, nil
}

// UpdateStatus обновляет статус заявки (админский workflow: review/archive/reject)
func (r *Repository) UpdateStatus(ctx context.Context, id string, status domain.SubmissionStatus) error {
	executor := txmanager.ExecutorFromContext(ctx, r.db)

	query, args, err := psqlbuilder.Update("submissions").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrSubmissionNotFound
	}

	return nil
}

// selectSubmissions базовый SELECT со всеми колонками заявки
func selectSubmissions() squirrel.SelectBuilder {
	return psqlbuilder.Select(
		"id",
		"booking_date",
		"identity",
		"name",
		"phone",
		"note",
		"status",
		"source",
		"created_at",
		"updated_at",
	).From("submissions")
}

// scanSubmissions сканирует результаты запроса в слайс заявок
func (r *Repository) scanSubmissions(rows *sql.Rows) ([]*domain.Submission, error) {
	submissions := make([]*domain.Submission, 0)

	for rows.Next() {
		var sub domain.Submission
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&sub.ID,
			&sub.BookingDate,
			&sub.Identity,
			&sub.Name,
			&sub.Phone,
			&sub.Note,
			&sub.Status,
			&sub.Source,
			&createdAt,
			&updatedAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: scanSubmissions - scan row: %v", ErrScanRow, err)
		}

		sub.CreatedAt = createdAt.Time
		sub.UpdatedAt = updatedAt.Time

		submissions = append(submissions, &sub)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanSubmissions - rows error: %v", ErrScanRow, err)
	}

	return submissions, nil
}
