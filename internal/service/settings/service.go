package settings

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	settingsRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/settings"
)

// Service сервис лимитов вместимости
// Лимиты читаются из хранилища заново при каждом вызове ResolveLimits,
// без кэширования: админ может поменять их в любой момент
type Service struct {
	repo   SettingsRepository
	logger Logger
}

// NewService создает новый экземпляр сервиса настроек
func NewService(repo SettingsRepository, logger Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// ResolveLimits возвращает действующие лимиты вместимости
// Если настройка не задана или не парсится, используется дефолтное значение
func (s *Service) ResolveLimits(ctx context.Context) (*domain.CapacityLimits, error) {
	maxPerDay, err := s.resolveInt(ctx, domain.SettingMaxBookingsPerDay, domain.DefaultMaxBookingsPerDay)
	if err != nil {
		return nil, err
	}

	maxPerMonth, err := s.resolveInt(ctx, domain.SettingMaxBookingsPerMonth, domain.DefaultMaxBookingsPerMonth)
	if err != nil {
		return nil, err
	}

	return &domain.CapacityLimits{
		MaxPerDay:   maxPerDay,
		MaxPerMonth: maxPerMonth,
	}, nil
}

// UpdateLimits обновляет лимиты вместимости
// Значения за пределами допустимых границ отклоняются
func (s *Service) UpdateLimits(ctx context.Context, req *UpdateLimitsRequest) (*LimitsResponse, error) {
	if req.MaxPerDay == nil && req.MaxPerMonth == nil {
		s.logger.Warn("UpdateLimits: no values provided")
		return nil, fmt.Errorf("%w: at least one limit must be provided", ErrInvalidInput)
	}

	if req.MaxPerDay != nil {
		if *req.MaxPerDay < domain.MinBookingsPerDayLimit || *req.MaxPerDay > domain.MaxBookingsPerDayLimit {
			s.logger.Warn("UpdateLimits: maxPerDay=%d out of range [%d, %d]",
				*req.MaxPerDay, domain.MinBookingsPerDayLimit, domain.MaxBookingsPerDayLimit)
			return nil, fmt.Errorf("%w: maxPerDay must be in [%d, %d]",
				ErrLimitOutOfRange, domain.MinBookingsPerDayLimit, domain.MaxBookingsPerDayLimit)
		}
		if err := s.repo.Set(ctx, domain.SettingMaxBookingsPerDay, strconv.Itoa(*req.MaxPerDay)); err != nil {
			s.logger.Error("UpdateLimits: failed to set %s: %v", domain.SettingMaxBookingsPerDay, err)
			return nil, fmt.Errorf("%w: failed to set %s: %v", ErrInternal, domain.SettingMaxBookingsPerDay, err)
		}
	}

	if req.MaxPerMonth != nil {
		if *req.MaxPerMonth < domain.MinBookingsPerMonthLimit || *req.MaxPerMonth > domain.MaxBookingsPerMonthLimit {
			s.logger.Warn("UpdateLimits: maxPerMonth=%d out of range [%d, %d]",
				*req.MaxPerMonth, domain.MinBookingsPerMonthLimit, domain.MaxBookingsPerMonthLimit)
			return nil, fmt.Errorf("%w: maxPerMonth must be in [%d, %d]",
				ErrLimitOutOfRange, domain.MinBookingsPerMonthLimit, domain.MaxBookingsPerMonthLimit)
		}
		if err := s.repo.Set(ctx, domain.SettingMaxBookingsPerMonth, strconv.Itoa(*req.MaxPerMonth)); err != nil {
			s.logger.Error("UpdateLimits: failed to set %s: %v", domain.SettingMaxBookingsPerMonth, err)
			return nil, fmt.Errorf("%w: failed to set %s: %v", ErrInternal, domain.SettingMaxBookingsPerMonth, err)
		}
	}

	limits, err := s.ResolveLimits(ctx)
	if err != nil {
		return nil, err
	}

	s.logger.Info("UpdateLimits: limits updated, maxPerDay=%d, maxPerMonth=%d",
		limits.MaxPerDay, limits.MaxPerMonth)

	return &LimitsResponse{
		MaxPerDay:   limits.MaxPerDay,
		MaxPerMonth: limits.MaxPerMonth,
	}, nil
}

// resolveInt читает целочисленную настройку с откатом на дефолт
func (s *Service) resolveInt(ctx context.Context, key string, fallback int) (int, error) {
	raw, err := s.repo.Get(ctx, key)
	if err != nil {
		if errors.Is(err, settingsRepo.ErrSettingNotFound) {
			return fallback, nil
		}
		s.logger.Error("ResolveLimits: failed to get %s: %v", key, err)
		return 0, fmt.Errorf("%w: failed to get %s: %v", ErrInternal, key, err)
	}

	value, err := strconv.Atoi(raw)
	if err != nil || value <= 0 {
		s.logger.Warn("ResolveLimits: invalid value %q for %s, using default %d", raw, key, fallback)
		return fallback, nil
	}

	return value, nil
}
