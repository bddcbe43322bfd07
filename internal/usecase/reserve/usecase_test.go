package reserve

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/internal/identity"
	calendarRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/calendar"
	"github.com/m04kA/SMC-ReservationService/pkg/txmanager"
)

// ============================================================
// Фейки
// ============================================================

type memSubmissionRepo struct {
	mu   sync.Mutex
	subs []*domain.Submission
}

func (r *memSubmissionRepo) Create(_ context.Context, sub *domain.Submission) (*domain.Submission, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	created := *sub
	created.CreatedAt = time.Now()
	created.UpdatedAt = created.CreatedAt
	r.subs = append(r.subs, &created)
	return &created, nil
}

func (r *memSubmissionRepo) List(_ context.Context, filter domain.SubmissionFilter) ([]*domain.Submission, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []*domain.Submission
	for _, sub := range r.subs {
		if filter.StartDate != nil && sub.BookingDate.Before(*filter.StartDate) {
			continue
		}
		if filter.EndDate != nil && sub.BookingDate.After(*filter.EndDate) {
			continue
		}
		if filter.Identity != nil && sub.Identity != *filter.Identity {
			continue
		}
		if filter.Status != nil && sub.Status != *filter.Status {
			continue
		}
		out = append(out, sub)
	}
	return out, nil
}

func (r *memSubmissionRepo) seed(date time.Time, ident string, status domain.SubmissionStatus) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.subs = append(r.subs, &domain.Submission{
		ID:          fmt.Sprintf("seed-%d", len(r.subs)),
		BookingDate: date,
		Identity:    ident,
		Name:        "seed",
		Phone:       ident,
		Status:      status,
	})
}

type memCalendarRepo struct {
	days map[string]*domain.CalendarDay
}

func newMemCalendarRepo() *memCalendarRepo {
	return &memCalendarRepo{days: make(map[string]*domain.CalendarDay)}
}

func (r *memCalendarRepo) open(date time.Time) {
	r.days[date.Format(domain.DateFormat)] = &domain.CalendarDay{
		Date:   date,
		Status: domain.DayStatusOpen,
	}
}

func (r *memCalendarRepo) GetByDate(_ context.Context, date time.Time) (*domain.CalendarDay, error) {
	day, ok := r.days[date.Format(domain.DateFormat)]
	if !ok {
		return nil, calendarRepo.ErrDayNotFound
	}
	return day, nil
}

type staticLimits struct {
	limits domain.CapacityLimits
}

func (l *staticLimits) ResolveLimits(_ context.Context) (*domain.CapacityLimits, error) {
	limits := l.limits
	return &limits, nil
}

// serialTxManager последовательно выполняет переданные функции под мьютексом,
// воспроизводя линеаризуемость сериализуемых транзакций
type serialTxManager struct {
	mu sync.Mutex
}

func (m *serialTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return fn(ctx)
}

// busyTxManager имитирует исчерпание повторов при конфликте сериализации
type busyTxManager struct{}

func (m *busyTxManager) DoSerializable(_ context.Context, _ func(ctx context.Context) error) error {
	return fmt.Errorf("%w: transaction failed after 3 attempts", txmanager.ErrSerialization)
}

type fixedClock struct {
	now time.Time
}

func (c *fixedClock) Now() time.Time { return c.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// ============================================================
// Хелперы
// ============================================================

func day(t *testing.T, s string) time.Time {
	t.Helper()
	parsed, err := time.Parse(domain.DateFormat, s)
	require.NoError(t, err)
	return parsed
}

type fixture struct {
	uc       *UseCase
	subs     *memSubmissionRepo
	calendar *memCalendarRepo
	limits   *staticLimits
	clock    *fixedClock
}

func newFixture(maxPerDay, maxPerMonth int) *fixture {
	f := &fixture{
		subs:     &memSubmissionRepo{},
		calendar: newMemCalendarRepo(),
		limits:   &staticLimits{limits: domain.CapacityLimits{MaxPerDay: maxPerDay, MaxPerMonth: maxPerMonth}},
		clock:    &fixedClock{now: time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)},
	}
	f.uc = NewUseCase(f.subs, f.calendar, f.limits, &serialTxManager{}, identity.NewPhoneExtractor(), nopLogger{})
	f.uc.timeProvider = f.clock
	return f
}

func request(date time.Time, name, phone string) *Request {
	return &Request{
		Date:   date,
		Name:   name,
		Phone:  phone,
		Source: "web",
	}
}

// ============================================================
// Тесты
// ============================================================

func TestExecute_FillsDayToCapacity(t *testing.T) {
	f := newFixture(3, 1000)
	date := day(t, "2026-01-15")
	f.calendar.open(date)

	ctx := context.Background()

	// Три заявки заполняют день: остаток 2, 1, 0
	phones := []string{"+7 (900) 111-11-11", "+7 (900) 222-22-22", "+7 (900) 333-33-33"}
	for i, phone := range phones {
		resp, err := f.uc.Execute(ctx, request(date, "Клиент", phone))
		require.NoError(t, err)
		assert.Equal(t, string(domain.StatusPending), resp.Status)
		assert.Equal(t, i+1, resp.DailyCount)
		assert.Equal(t, 3, resp.DailyMax)
		assert.Equal(t, 2-i, resp.Remaining)
		assert.NotEmpty(t, resp.ID)
	}

	// Четвертая заявка отклоняется: мест нет, отказ несет фактическую занятость
	_, err := f.uc.Execute(ctx, request(date, "Клиент", "+7 (900) 444-44-44"))
	require.ErrorIs(t, err, ErrDailyCapacityExceeded)

	var capErr *CapacityError
	require.ErrorAs(t, err, &capErr)
	assert.Equal(t, 3, capErr.Count)
	assert.Equal(t, 3, capErr.Max)

	// В хранилище ровно три заявки
	all, _ := f.subs.List(ctx, domain.SubmissionFilter{})
	assert.Len(t, all, 3)
}

func TestExecute_UniqueIDs(t *testing.T) {
	f := newFixture(3, 1000)
	date := day(t, "2026-01-15")
	f.calendar.open(date)

	ctx := context.Background()
	first, err := f.uc.Execute(ctx, request(date, "A", "+79001111111"))
	require.NoError(t, err)
	second, err := f.uc.Execute(ctx, request(date, "B", "+79002222222"))
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
}

func TestExecute_DateNotOpen(t *testing.T) {
	f := newFixture(3, 1000)
	ctx := context.Background()

	// Дата отсутствует в календаре - отсутствие записи означает closed
	_, err := f.uc.Execute(ctx, request(day(t, "2026-01-20"), "Клиент", "+79001111111"))
	require.ErrorIs(t, err, ErrDateNotOpen)

	// Заявки не создаются
	all, _ := f.subs.List(ctx, domain.SubmissionFilter{})
	assert.Empty(t, all)
}

func TestExecute_PastDate(t *testing.T) {
	f := newFixture(3, 1000)
	past := day(t, "2026-01-09")
	f.calendar.open(past)

	// Вчерашняя дата отклоняется даже если открыта в календаре
	_, err := f.uc.Execute(context.Background(), request(past, "Клиент", "+79001111111"))
	require.ErrorIs(t, err, ErrPastDate)
}

func TestExecute_TodayIsNotPast(t *testing.T) {
	f := newFixture(3, 1000)
	today := day(t, "2026-01-10")
	f.calendar.open(today)

	// Сегодняшняя дата еще принимается
	resp, err := f.uc.Execute(context.Background(), request(today, "Клиент", "+79001111111"))
	require.NoError(t, err)
	assert.Equal(t, 1, resp.DailyCount)
}

func TestExecute_TodayIsNotPastInNonUTCZone(t *testing.T) {
	// Дата бронирования парсится в UTC, текущее время приходит в зоне сервера.
	// Западнее UTC сегодняшняя дата не должна считаться прошедшей
	zones := []*time.Location{
		time.FixedZone("UTC-5", -5*3600),
		time.FixedZone("UTC-11", -11*3600),
		time.FixedZone("UTC+12", 12*3600),
	}

	for _, zone := range zones {
		t.Run(zone.String(), func(t *testing.T) {
			f := newFixture(3, 1000)
			f.clock.now = time.Date(2026, 1, 10, 12, 0, 0, 0, zone)

			today := day(t, "2026-01-10")
			yesterday := day(t, "2026-01-09")
			tomorrow := day(t, "2026-01-11")
			for _, d := range []time.Time{today, yesterday, tomorrow} {
				f.calendar.open(d)
			}

			_, err := f.uc.Execute(context.Background(), request(today, "Клиент", "+79001111111"))
			require.NoError(t, err)

			_, err = f.uc.Execute(context.Background(), request(tomorrow, "Клиент", "+79002222222"))
			require.NoError(t, err)

			// Вчерашняя дата остается прошедшей в любой зоне
			_, err = f.uc.Execute(context.Background(), request(yesterday, "Клиент", "+79003333333"))
			require.ErrorIs(t, err, ErrPastDate)
		})
	}
}

func TestExecute_MonthlyCapacityPerIdentity(t *testing.T) {
	f := newFixture(10, 2)
	ctx := context.Background()

	d1 := day(t, "2026-01-15")
	d2 := day(t, "2026-01-16")
	d3 := day(t, "2026-01-17")
	nextMonth := day(t, "2026-02-05")
	for _, d := range []time.Time{d1, d2, d3, nextMonth} {
		f.calendar.open(d)
	}

	const phone = "+7 (900) 555-55-55"

	// Две заявки одной идентичности в одном месяце проходят
	_, err := f.uc.Execute(ctx, request(d1, "Иван", phone))
	require.NoError(t, err)
	_, err = f.uc.Execute(ctx, request(d2, "Иван", phone))
	require.NoError(t, err)

	// Третья в том же месяце отклоняется, отказ несет счетчики идентичности
	_, err = f.uc.Execute(ctx, request(d3, "Иван", phone))
	require.ErrorIs(t, err, ErrMonthlyCapacityExceeded)

	var capErr *CapacityError
	require.ErrorAs(t, err, &capErr)
	assert.Equal(t, 2, capErr.Count)
	assert.Equal(t, 2, capErr.Max)

	// Другая идентичность не ограничена чужим лимитом
	_, err = f.uc.Execute(ctx, request(d3, "Петр", "+79006666666"))
	require.NoError(t, err)

	// Лимит считается по календарному месяцу даты бронирования:
	// та же идентичность в следующем месяце проходит
	_, err = f.uc.Execute(ctx, request(nextMonth, "Иван", phone))
	require.NoError(t, err)
}

func TestExecute_IdentityIgnoresPhoneFormatting(t *testing.T) {
	f := newFixture(10, 1)
	ctx := context.Background()

	d1 := day(t, "2026-01-15")
	d2 := day(t, "2026-01-16")
	f.calendar.open(d1)
	f.calendar.open(d2)

	_, err := f.uc.Execute(ctx, request(d1, "Иван", "+7 (900) 777-77-77"))
	require.NoError(t, err)

	// Тот же номер в другом написании - та же идентичность
	_, err = f.uc.Execute(ctx, request(d2, "Иван", "79007777777"))
	require.ErrorIs(t, err, ErrMonthlyCapacityExceeded)
}

func TestExecute_ArchivedDoesNotHoldDailySlot(t *testing.T) {
	f := newFixture(3, 1000)
	date := day(t, "2026-01-15")
	f.calendar.open(date)

	// Три архивные заявки на дату место не занимают
	for i := 0; i < 3; i++ {
		f.subs.seed(date, fmt.Sprintf("7900000000%d", i), domain.StatusArchived)
	}

	resp, err := f.uc.Execute(context.Background(), request(date, "Клиент", "+79001111111"))
	require.NoError(t, err)
	assert.Equal(t, 1, resp.DailyCount)
	assert.Equal(t, 2, resp.Remaining)
}

func TestExecute_RejectedDoesNotCountMonthly(t *testing.T) {
	f := newFixture(10, 1)
	date := day(t, "2026-01-15")
	f.calendar.open(date)

	// Отклоненная заявка не входит в месячный лимит идентичности
	f.subs.seed(day(t, "2026-01-12"), "79001111111", domain.StatusRejected)

	_, err := f.uc.Execute(context.Background(), request(date, "Клиент", "+79001111111"))
	require.NoError(t, err)
}

func TestExecute_StorageBusy(t *testing.T) {
	f := newFixture(3, 1000)
	date := day(t, "2026-01-15")
	f.calendar.open(date)

	// Конфликт сериализации после всех повторов - повторяемый отказ
	f.uc.txManager = &busyTxManager{}

	_, err := f.uc.Execute(context.Background(), request(date, "Клиент", "+79001111111"))
	require.ErrorIs(t, err, ErrStorageBusy)
}

func TestExecute_Validation(t *testing.T) {
	f := newFixture(3, 1000)
	date := day(t, "2026-01-15")
	f.calendar.open(date)
	ctx := context.Background()

	cases := []struct {
		name string
		req  *Request
	}{
		{"zero date", &Request{Name: "Иван", Phone: "+79001111111"}},
		{"empty name", &Request{Date: date, Name: "   ", Phone: "+79001111111"}},
		{"empty phone", &Request{Date: date, Name: "Иван", Phone: ""}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := f.uc.Execute(ctx, tc.req)
			require.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestExecute_ConcurrentNeverExceedsCapacity(t *testing.T) {
	f := newFixture(3, 1000)
	date := day(t, "2026-01-15")
	f.calendar.open(date)

	const workers = 20

	var wg sync.WaitGroup
	errs := make([]error, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = f.uc.Execute(context.Background(),
				request(date, "Клиент", fmt.Sprintf("+7900%07d", i)))
		}(i)
	}
	wg.Wait()

	accepted := 0
	for _, err := range errs {
		if err == nil {
			accepted++
			continue
		}
		require.ErrorIs(t, err, ErrDailyCapacityExceeded)
	}
	assert.Equal(t, 3, accepted, "ровно три заявки проходят при любом порядке")

	all, _ := f.subs.List(context.Background(), domain.SubmissionFilter{})
	assert.Len(t, all, 3)
}
