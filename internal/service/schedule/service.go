package schedule

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/avdmi/salon-booking-service/internal/domain"
	scheduleRepo "github.com/avdmi/salon-booking-service/internal/infra/storage/schedule"
	"github.com/avdmi/salon-booking-service/internal/service/schedule/models"
)

// Service сервис управления расписанием владельца
type Service struct {
	repo   ScheduleRepository
	logger Logger
}

// NewService создает новый экземпляр сервиса расписаний
func NewService(repo ScheduleRepository, logger Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// Get возвращает расписание владельца
func (s *Service) Get(ctx context.Context, ownerKey string) (*models.ScheduleResponse, error) {
	s.logger.Info("GetSchedule: owner=%s", ownerKey)

	sched, err := s.repo.GetByOwnerKey(ctx, ownerKey)
	if err != nil {
		if errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
			s.logger.Warn("GetSchedule: schedule not found for owner=%s", ownerKey)
			return nil, ErrScheduleNotFound
		}
		s.logger.Error("GetSchedule: repository error for owner=%s: %v", ownerKey, err)
		return nil, fmt.Errorf("%w: Get - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainSchedule(sched), nil
}

// Update валидирует и сохраняет параметры расписания владельца
func (s *Service) Update(ctx context.Context, ownerKey string, req *models.UpdateScheduleRequest) (*models.ScheduleResponse, error) {
	s.logger.Info("UpdateSchedule: owner=%s, hours=%d-%d, slotsPerHour=%d, days=%v",
		ownerKey, req.StartHour, req.EndHour, req.SlotsPerHour, req.WorkingDays)

	if err := validateRequest(req); err != nil {
		s.logger.Warn("UpdateSchedule: validation failed for owner=%s: %v", ownerKey, err)
		return nil, err
	}

	sched, err := s.repo.GetByOwnerKey(ctx, ownerKey)
	if err != nil {
		if errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
			s.logger.Warn("UpdateSchedule: schedule not found for owner=%s", ownerKey)
			return nil, ErrScheduleNotFound
		}
		s.logger.Error("UpdateSchedule: repository error for owner=%s: %v", ownerKey, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	sched.StartHour = req.StartHour
	sched.EndHour = req.EndHour
	sched.WorkingDays = normalizeDays(req.WorkingDays)
	sched.SlotsPerHour = req.SlotsPerHour
	sched.Services = normalizeServices(req.Services)

	if err := s.repo.Update(ctx, sched); err != nil {
		s.logger.Error("UpdateSchedule: failed to update schedule for owner=%s: %v", ownerKey, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateSchedule: schedule updated for owner=%s", ownerKey)
	return models.FromDomainSchedule(sched), nil
}

// validateRequest проверяет бизнес-ограничения параметров расписания
func validateRequest(req *models.UpdateScheduleRequest) error {
	if req.StartHour < domain.MinHour || req.StartHour > domain.MaxHour {
		return fmt.Errorf("%w: startHour must be between %d and %d", ErrInvalidInput, domain.MinHour, domain.MaxHour)
	}
	if req.EndHour < domain.MinHour || req.EndHour > domain.MaxHour {
		return fmt.Errorf("%w: endHour must be between %d and %d", ErrInvalidInput, domain.MinHour, domain.MaxHour)
	}
	if req.StartHour >= req.EndHour {
		return fmt.Errorf("%w: startHour must be less than endHour", ErrInvalidInput)
	}

	if req.SlotsPerHour < domain.MinSlotsPerHour || req.SlotsPerHour > domain.MaxSlotsPerHour {
		return fmt.Errorf("%w: slotsPerHour must be between %d and %d", ErrInvalidInput, domain.MinSlotsPerHour, domain.MaxSlotsPerHour)
	}
	// Шаг сетки слотов должен быть целым числом минут
	if domain.MinutesPerHour%req.SlotsPerHour != 0 {
		return fmt.Errorf("%w: slotsPerHour must divide %d evenly", ErrInvalidInput, domain.MinutesPerHour)
	}

	if len(req.WorkingDays) == 0 {
		return fmt.Errorf("%w: workingDays must not be empty", ErrInvalidInput)
	}
	seen := make(map[int]bool)
	for _, d := range req.WorkingDays {
		if d < 0 || d > 6 {
			return fmt.Errorf("%w: working day %d out of range 0-6", ErrInvalidInput, d)
		}
		if seen[d] {
			return fmt.Errorf("%w: duplicate working day %d", ErrInvalidInput, d)
		}
		seen[d] = true
	}

	if len(req.Services) > domain.MaxServices {
		return fmt.Errorf("%w: too many services, max %d", ErrInvalidInput, domain.MaxServices)
	}
	for _, svc := range req.Services {
		name := strings.TrimSpace(svc)
		if name == "" {
			return fmt.Errorf("%w: service name must not be empty", ErrInvalidInput)
		}
		if len(name) > domain.MaxServiceNameLength {
			return fmt.Errorf("%w: service name too long, max %d", ErrInvalidInput, domain.MaxServiceNameLength)
		}
	}

	return nil
}

func normalizeDays(days []int) []int {
	out := make([]int, len(days))
	copy(out, days)
	return out
}

func normalizeServices(services []string) []string {
	out := make([]string, 0, len(services))
	for _, svc := range services {
		out = append(out, strings.TrimSpace(svc))
	}
	return out
}
