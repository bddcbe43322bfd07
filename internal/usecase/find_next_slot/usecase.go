package find_next_slot

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// UseCase use case поиска ближайшего открытого дня со свободными местами
// Открытые дни и счетчики занятости загружаются по одному запросу на весь
// горизонт, затем дни сканируются в календарном порядке
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

// Execute выполняет use case поиска ближайшего свободного дня
// Возвращает ErrNoSlotAvailable, если горизонт исчерпан без совпадения
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.FromDate.IsZero() {
		return nil, fmt.Errorf("%w: fromDate is required", ErrInvalidInput)
	}

	horizon := req.HorizonDays
	if horizon <= 0 {
		horizon = domain.DefaultSearchHorizonDays
	}
	if horizon > domain.MaxSearchHorizonDays {
		horizon = domain.MaxSearchHorizonDays
	}

	end := req.FromDate.AddDate(0, 0, horizon)

	// 1. Действующий дневной лимит
	limits, err := uc.limits.ResolveLimits(ctx)
	if err != nil {
		uc.logger.Error("FindNextSlot: failed to resolve limits: %v", err)
		return nil, fmt.Errorf("%w: failed to resolve limits: %v", ErrInternal, err)
	}

	// 2. Все открытые дни горизонта одним запросом
	openDays, err := uc.calendarRepo.GetRange(ctx, req.FromDate, end)
	if err != nil {
		uc.logger.Error("FindNextSlot: failed to get calendar range: %v", err)
		return nil, fmt.Errorf("%w: failed to get calendar range: %v", ErrInternal, err)
	}

	if len(openDays) == 0 {
		uc.logger.Info("FindNextSlot: no open days in %s..%s",
			req.FromDate.Format(domain.DateFormat), end.Format(domain.DateFormat))
		return nil, ErrNoSlotAvailable
	}

	// 3. Счетчики занятости по всем датам горизонта одним запросом
	counts, err := uc.submissionRepo.CountActiveGroupedByDate(ctx, req.FromDate, end)
	if err != nil {
		uc.logger.Error("FindNextSlot: failed to count submissions: %v", err)
		return nil, fmt.Errorf("%w: failed to count submissions: %v", ErrInternal, err)
	}

	// 4. Сканируем открытые дни в календарном порядке (GetRange сортирует по дате)
	for _, day := range openDays {
		if !day.IsOpen() {
			continue
		}

		count := counts[day.Date.Format(domain.DateFormat)]
		if count < limits.MaxPerDay {
			uc.logger.Info("FindNextSlot: found %s, %d/%d taken",
				day.Date.Format(domain.DateFormat), count, limits.MaxPerDay)
			return &Response{
				Date:      day.Date,
				Count:     count,
				Remaining: limits.MaxPerDay - count,
			}, nil
		}
	}

	uc.logger.Info("FindNextSlot: all open days full in %s..%s",
		req.FromDate.Format(domain.DateFormat), end.Format(domain.DateFormat))
	return nil, ErrNoSlotAvailable
}
