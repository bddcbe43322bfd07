package check_availability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	calendarRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/calendar"
)

type stubSubmissionRepo struct {
	subs []*domain.Submission
}

func (r *stubSubmissionRepo) List(_ context.Context, filter domain.SubmissionFilter) ([]*domain.Submission, error) {
	var out []*domain.Submission
	for _, sub := range r.subs {
		if filter.StartDate != nil && sub.BookingDate.Before(*filter.StartDate) {
			continue
		}
		if filter.EndDate != nil && sub.BookingDate.After(*filter.EndDate) {
			continue
		}
		out = append(out, sub)
	}
	return out, nil
}

type stubCalendarRepo struct {
	days map[string]*domain.CalendarDay
}

func (r *stubCalendarRepo) GetByDate(_ context.Context, date time.Time) (*domain.CalendarDay, error) {
	day, ok := r.days[date.Format(domain.DateFormat)]
	if !ok {
		return nil, calendarRepo.ErrDayNotFound
	}
	return day, nil
}

type stubLimits struct {
	limits domain.CapacityLimits
}

func (l *stubLimits) ResolveLimits(_ context.Context) (*domain.CapacityLimits, error) {
	limits := l.limits
	return &limits, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func day(t *testing.T, s string) time.Time {
	t.Helper()
	parsed, err := time.Parse(domain.DateFormat, s)
	require.NoError(t, err)
	return parsed
}

func newUseCase(calendar *stubCalendarRepo, subs *stubSubmissionRepo, maxPerDay int) *UseCase {
	return NewUseCase(
		subs,
		calendar,
		&stubLimits{limits: domain.CapacityLimits{MaxPerDay: maxPerDay, MaxPerMonth: 1000}},
		nopLogger{},
	)
}

func TestExecute_ClosedDateAnswersZeros(t *testing.T) {
	date := day(t, "2026-01-15")
	calendar := &stubCalendarRepo{days: map[string]*domain.CalendarDay{}}
	subs := &stubSubmissionRepo{subs: []*domain.Submission{
		{BookingDate: date, Status: domain.StatusPending},
	}}

	uc := newUseCase(calendar, subs, 3)

	// Закрытая дата отвечает нулями, заявки не считаются
	resp, err := uc.Execute(context.Background(), &Request{Date: date})
	require.NoError(t, err)
	assert.False(t, resp.Available)
	assert.Equal(t, "closed", resp.Status)
	assert.Zero(t, resp.Count)
	assert.Zero(t, resp.Max)
	assert.Zero(t, resp.Remaining)
}

func TestExecute_OpenDateWithFreeSlots(t *testing.T) {
	date := day(t, "2026-01-15")
	calendar := &stubCalendarRepo{days: map[string]*domain.CalendarDay{
		"2026-01-15": {Date: date, Status: domain.DayStatusOpen},
	}}
	subs := &stubSubmissionRepo{subs: []*domain.Submission{
		{BookingDate: date, Status: domain.StatusPending},
		{BookingDate: date, Status: domain.StatusReviewed},
		// Архивная заявка место не занимает
		{BookingDate: date, Status: domain.StatusArchived},
	}}

	uc := newUseCase(calendar, subs, 3)

	resp, err := uc.Execute(context.Background(), &Request{Date: date})
	require.NoError(t, err)
	assert.True(t, resp.Available)
	assert.Equal(t, "open", resp.Status)
	assert.Equal(t, 2, resp.Count)
	assert.Equal(t, 3, resp.Max)
	assert.Equal(t, 1, resp.Remaining)
}

func TestExecute_FullDateIsUnavailable(t *testing.T) {
	date := day(t, "2026-01-15")
	calendar := &stubCalendarRepo{days: map[string]*domain.CalendarDay{
		"2026-01-15": {Date: date, Status: domain.DayStatusOpen},
	}}
	subs := &stubSubmissionRepo{subs: []*domain.Submission{
		{BookingDate: date, Status: domain.StatusPending},
		{BookingDate: date, Status: domain.StatusPending},
		{BookingDate: date, Status: domain.StatusPending},
	}}

	uc := newUseCase(calendar, subs, 3)

	resp, err := uc.Execute(context.Background(), &Request{Date: date})
	require.NoError(t, err)
	assert.False(t, resp.Available)
	assert.Equal(t, "open", resp.Status)
	assert.Equal(t, 3, resp.Count)
	assert.Zero(t, resp.Remaining)
}

func TestExecute_ReadOnly(t *testing.T) {
	date := day(t, "2026-01-15")
	calendar := &stubCalendarRepo{days: map[string]*domain.CalendarDay{
		"2026-01-15": {Date: date, Status: domain.DayStatusOpen},
	}}
	subs := &stubSubmissionRepo{}

	uc := newUseCase(calendar, subs, 3)

	// Повторные проверки не меняют состояние
	for i := 0; i < 3; i++ {
		resp, err := uc.Execute(context.Background(), &Request{Date: date})
		require.NoError(t, err)
		assert.Zero(t, resp.Count)
		assert.Equal(t, 3, resp.Remaining)
	}
	assert.Empty(t, subs.subs)
}

func TestExecute_ZeroDateRejected(t *testing.T) {
	uc := newUseCase(&stubCalendarRepo{days: map[string]*domain.CalendarDay{}}, &stubSubmissionRepo{}, 3)

	_, err := uc.Execute(context.Background(), &Request{})
	require.ErrorIs(t, err, ErrInvalidInput)
}
