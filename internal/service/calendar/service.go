package calendar

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// Service сервис управления календарем открытых дат (админские операции)
// Авторизация выполняется на уровне HTTP, сервис прав не проверяет
type Service struct {
	repo   CalendarRepository
	logger Logger
}

// NewService создает новый экземпляр сервиса календаря
func NewService(repo CalendarRepository, logger Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// SetStatus устанавливает статус даты
// "open" открывает день для бронирования, любой другой статус закрывает его
// (запись удаляется: закрытые дни в календаре не хранятся)
func (s *Service) SetStatus(ctx context.Context, date time.Time, status string) error {
	if date.IsZero() {
		s.logger.Warn("SetStatus: empty date")
		return fmt.Errorf("%w: date is required", ErrInvalidDate)
	}

	dayStatus := domain.DayStatus(status)
	if dayStatus != domain.DayStatusOpen && dayStatus != domain.DayStatusClosed {
		s.logger.Warn("SetStatus: unknown status %q", status)
		return fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}

	if err := s.repo.SetStatus(ctx, date, dayStatus); err != nil {
		s.logger.Error("SetStatus: repository error for date=%s: %v", date.Format(domain.DateFormat), err)
		return fmt.Errorf("%w: SetStatus - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("SetStatus: date=%s set to %s", date.Format(domain.DateFormat), dayStatus)
	return nil
}

// GetRange возвращает открытые дни в диапазоне [start, end] по возрастанию даты
func (s *Service) GetRange(ctx context.Context, start, end time.Time) ([]*domain.CalendarDay, error) {
	if start.IsZero() || end.IsZero() {
		s.logger.Warn("GetRange: empty range bounds")
		return nil, fmt.Errorf("%w: start and end are required", ErrInvalidDate)
	}

	if end.Before(start) {
		s.logger.Warn("GetRange: end=%s before start=%s",
			end.Format(domain.DateFormat), start.Format(domain.DateFormat))
		return nil, ErrInvalidRange
	}

	days, err := s.repo.GetRange(ctx, start, end)
	if err != nil {
		s.logger.Error("GetRange: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetRange - repository error: %v", ErrInternal, err)
	}

	return days, nil
}
