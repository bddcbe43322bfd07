package submissions

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	submissionRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/submission"
)

// Service админский workflow заявок: просмотр и смена статуса
// Смена статуса влияет на подсчет лимитов: архивная заявка освобождает место
// на дату, отклоненная перестает учитываться в месячном лимите идентичности
type Service struct {
	repo   SubmissionRepository
	logger Logger
}

// NewService создает новый экземпляр сервиса заявок
func NewService(repo SubmissionRepository, logger Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// GetByID возвращает заявку по идентификатору
func (s *Service) GetByID(ctx context.Context, id string) (*domain.Submission, error) {
	sub, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, submissionRepo.ErrSubmissionNotFound) {
			return nil, ErrSubmissionNotFound
		}
		s.logger.Error("GetByID: repository error for id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}
	return sub, nil
}

// UpdateStatus переводит заявку в новый статус и возвращает обновленную заявку
func (s *Service) UpdateStatus(ctx context.Context, id string, status string) (*domain.Submission, error) {
	newStatus := domain.SubmissionStatus(status)
	switch newStatus {
	case domain.StatusPending, domain.StatusReviewed, domain.StatusArchived, domain.StatusRejected:
	default:
		s.logger.Warn("UpdateStatus: unknown status %q for id=%s", status, id)
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}

	if err := s.repo.UpdateStatus(ctx, id, newStatus); err != nil {
		if errors.Is(err, submissionRepo.ErrSubmissionNotFound) {
			return nil, ErrSubmissionNotFound
		}
		s.logger.Error("UpdateStatus: repository error for id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	sub, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	s.logger.Info("UpdateStatus: id=%s set to %s", id, newStatus)
	return sub, nil
}
