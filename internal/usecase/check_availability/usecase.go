package check_availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	calendarRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/calendar"
	"github.com/m04kA/SMC-ReservationService/pkg/ptr"
)

// UseCase use case проверки доступности даты
// Читает без транзакции и без блокировок: ответ пригоден только для отображения
type UseCase struct {
	submissionRepo SubmissionRepository
	calendarRepo   CalendarRepository
	limits         LimitsResolver
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	submissionRepo SubmissionRepository,
	calendarRepo CalendarRepository,
	limits LimitsResolver,
	logger Logger,
) *UseCase {
	return &UseCase{
		submissionRepo: submissionRepo,
		calendarRepo:   calendarRepo,
		limits:         limits,
		logger:         logger,
	}
}

// Execute выполняет use case проверки доступности
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	// 1. Календарный гейт: закрытая дата отвечает нулями без подсчета заявок
	day, err := uc.calendarRepo.GetByDate(ctx, req.Date)
	if err != nil {
		if errors.Is(err, calendarRepo.ErrDayNotFound) {
			return &Response{
				Date:      req.Date,
				Available: false,
				Status:    string(domain.DayStatusClosed),
			}, nil
		}
		uc.logger.Error("CheckAvailability: failed to get calendar day: %v", err)
		return nil, fmt.Errorf("%w: failed to get calendar day: %v", ErrInternal, err)
	}
	if !day.IsOpen() {
		return &Response{
			Date:      req.Date,
			Available: false,
			Status:    string(domain.DayStatusClosed),
		}, nil
	}

	// 2. Действующий дневной лимит
	limits, err := uc.limits.ResolveLimits(ctx)
	if err != nil {
		uc.logger.Error("CheckAvailability: failed to resolve limits: %v", err)
		return nil, fmt.Errorf("%w: failed to resolve limits: %v", ErrInternal, err)
	}

	// 3. Неархивные заявки на дату
	submissions, err := uc.submissionRepo.List(ctx, domain.SubmissionFilter{
		StartDate: ptr.Ptr(req.Date),
		EndDate:   ptr.Ptr(req.Date),
	})
	if err != nil {
		uc.logger.Error("CheckAvailability: failed to list submissions: %v", err)
		return nil, fmt.Errorf("%w: failed to list submissions: %v", ErrInternal, err)
	}

	count := 0
	for _, sub := range submissions {
		if sub.CountsTowardDailyCap() {
			count++
		}
	}

	remaining := limits.MaxPerDay - count
	if remaining < 0 {
		remaining = 0
	}

	return &Response{
		Date:      req.Date,
		Available: count < limits.MaxPerDay,
		Status:    string(domain.DayStatusOpen),
		Count:     count,
		Max:       limits.MaxPerDay,
		Remaining: remaining,
	}, nil
}
