package reserve

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	calendarRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/calendar"
	"github.com/m04kA/SMC-ReservationService/pkg/ptr"
	"github.com/m04kA/SMC-ReservationService/pkg/txmanager"
)

// UseCase use case приема заявки на бронирование даты
// Единственное место, где заявки создаются. Проверка лимитов и вставка
// выполняются в одной сериализуемой транзакции: два конкурентных запроса
// на одну дату не могут оба увидеть счетчик ниже лимита и оба закоммититься
type UseCase struct {
	submissionRepo SubmissionRepository
	calendarRepo   CalendarRepository
	limits         LimitsResolver
	txManager      TransactionManager
	identity       IdentityExtractor
	timeProvider   TimeProvider
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	submissionRepo SubmissionRepository,
	calendarRepo CalendarRepository,
	limits LimitsResolver,
	txManager TransactionManager,
	identity IdentityExtractor,
	logger Logger,
) *UseCase {
	return &UseCase{
		submissionRepo: submissionRepo,
		calendarRepo:   calendarRepo,
		limits:         limits,
		txManager:      txManager,
		identity:       identity,
		timeProvider:   &RealTimeProvider{},
		logger:         logger,
	}
}

// Execute выполняет use case приема заявки
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("Reserve: date=%s, phone=%s, source=%s",
		req.Date.Format(domain.DateFormat), req.Phone, req.Source)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("Reserve: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверка на прошедшую дату - до входа в сериализуемую секцию,
	// чтобы не занимать транзакцию заведомо отклоняемым запросом
	now := uc.timeProvider.Now()
	if isDateInPast(req.Date, now) {
		uc.logger.Warn("Reserve: past date %s", req.Date.Format(domain.DateFormat))
		return nil, ErrPastDate
	}

	// 3. Вычисляем identity из контактных данных
	identity := uc.identity.Extract(req.Name, req.Phone)

	var result *domain.Submission
	var dailyCount, dailyMax int

	// 4. Все проверки и вставка в одной сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 4.1. Действующие лимиты читаем внутри транзакции, заново на каждый запрос
		limits, err := uc.limits.ResolveLimits(txCtx)
		if err != nil {
			uc.logger.Error("Reserve: failed to resolve limits: %v", err)
			return fmt.Errorf("%w: failed to resolve limits: %v", ErrInternal, err)
		}

		// 4.2. Календарный гейт: дата должна быть явно открыта админом
		day, err := uc.calendarRepo.GetByDate(txCtx, req.Date)
		if err != nil {
			if errors.Is(err, calendarRepo.ErrDayNotFound) {
				uc.logger.Warn("Reserve: date %s is not open", req.Date.Format(domain.DateFormat))
				return ErrDateNotOpen
			}
			uc.logger.Error("Reserve: failed to get calendar day: %v", err)
			return fmt.Errorf("%w: failed to get calendar day: %v", ErrInternal, err)
		}
		if !day.IsOpen() {
			uc.logger.Warn("Reserve: date %s is not open", req.Date.Format(domain.DateFormat))
			return ErrDateNotOpen
		}

		// 4.3. Месячный лимит идентичности (по календарному месяцу даты бронирования)
		monthStart, monthEnd := monthBounds(req.Date)
		monthly, err := uc.submissionRepo.List(txCtx, domain.SubmissionFilter{
			Identity:  ptr.Ptr(identity),
			StartDate: ptr.Ptr(monthStart),
			EndDate:   ptr.Ptr(monthEnd),
		})
		if err != nil {
			uc.logger.Error("Reserve: failed to list monthly submissions: %v", err)
			return fmt.Errorf("%w: failed to list monthly submissions: %v", ErrInternal, err)
		}

		monthlyCount := 0
		for _, sub := range monthly {
			if sub.CountsTowardMonthlyCap() {
				monthlyCount++
			}
		}

		if monthlyCount >= limits.MaxPerMonth {
			uc.logger.Warn("Reserve: monthly capacity exceeded for identity=%s, %d/%d",
				identity, monthlyCount, limits.MaxPerMonth)
			return NewMonthlyCapacityError(monthlyCount, limits.MaxPerMonth)
		}

		// 4.4. Дневной лимит на дату
		daily, err := uc.submissionRepo.List(txCtx, domain.SubmissionFilter{
			StartDate: ptr.Ptr(req.Date),
			EndDate:   ptr.Ptr(req.Date),
		})
		if err != nil {
			uc.logger.Error("Reserve: failed to list daily submissions: %v", err)
			return fmt.Errorf("%w: failed to list daily submissions: %v", ErrInternal, err)
		}

		count := 0
		for _, sub := range daily {
			if sub.CountsTowardDailyCap() {
				count++
			}
		}

		if count >= limits.MaxPerDay {
			uc.logger.Warn("Reserve: daily capacity exceeded for date=%s, %d/%d",
				req.Date.Format(domain.DateFormat), count, limits.MaxPerDay)
			return NewDailyCapacityError(count, limits.MaxPerDay)
		}

		// 4.5. Создаем заявку. id генерируется заново для каждой попытки вставки
		// и никогда не переиспользуется
		sub := &domain.Submission{
			ID:          uuid.NewString(),
			BookingDate: req.Date,
			Identity:    identity,
			Name:        req.Name,
			Phone:       req.Phone,
			Note:        req.Note,
			Status:      domain.StatusPending,
			Source:      req.Source,
		}

		created, err := uc.submissionRepo.Create(txCtx, sub)
		if err != nil {
			uc.logger.Error("Reserve: failed to create submission: %v", err)
			return fmt.Errorf("%w: failed to create submission: %v", ErrInternal, err)
		}

		result = created
		dailyCount = count + 1
		dailyMax = limits.MaxPerDay
		return nil
	})

	if err != nil {
		// Исчерпание повторов сериализации - повторяемый отказ для вызывающего
		if errors.Is(err, txmanager.ErrSerialization) {
			uc.logger.Warn("Reserve: storage busy for date=%s: %v",
				req.Date.Format(domain.DateFormat), err)
			return nil, ErrStorageBusy
		}
		return nil, err
	}

	uc.logger.Info("Reserve: accepted submission id=%s, date=%s, %d/%d",
		result.ID, req.Date.Format(domain.DateFormat), dailyCount, dailyMax)

	return &Response{
		ID:          result.ID,
		BookingDate: result.BookingDate,
		Identity:    result.Identity,
		Name:        result.Name,
		Phone:       result.Phone,
		Note:        result.Note,
		Status:      string(result.Status),
		DailyCount:  dailyCount,
		DailyMax:    dailyMax,
		Remaining:   dailyMax - dailyCount,
		CreatedAt:   result.CreatedAt,
	}, nil
}
