package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/avdmi/salon-booking-service/internal/domain"
	scheduleRepo "github.com/avdmi/salon-booking-service/internal/infra/storage/schedule"
)

// UseCase use case для получения слотов дня с их занятостью
type UseCase struct {
	bookingRepo  BookingRepository
	scheduleRepo ScheduleRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	scheduleRepo ScheduleRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		scheduleRepo: scheduleRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// WithTimeProvider подменяет провайдер времени (для тестирования)
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute выполняет use case получения слотов на дату
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: owner=%s, date=%s", req.OwnerKey, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Получаем расписание владельца
	schedule, err := uc.scheduleRepo.GetByOwnerKey(ctx, req.OwnerKey)
	if err != nil {
		if errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
			uc.logger.Warn("GetAvailableSlots: schedule not found for owner=%s", req.OwnerKey)
			return nil, ErrScheduleNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get schedule for owner=%s: %v", req.OwnerKey, err)
		return nil, fmt.Errorf("%w: failed to get schedule: %v", ErrInternal, err)
	}

	// 4. Генерируем временные слоты
	timeSlots, err := generateTimeSlots(schedule, req.Date, now)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to generate time slots: %v", err)
		return nil, fmt.Errorf("%w: failed to generate time slots: %v", ErrInternal, err)
	}

	// Нерабочий день или прошедшая дата: пустой список, не ошибка
	if len(timeSlots) == 0 {
		uc.logger.Info("GetAvailableSlots: no slots for owner=%s on %s",
			req.OwnerKey, req.Date.Format(domain.DateFormat))
		return &Response{
			OwnerKey: req.OwnerKey,
			Date:     req.Date,
			Slots:    []Slot{},
		}, nil
	}

	// 5. Получаем все активные записи на эту дату
	filter := domain.OwnerBookingsFilter{
		OwnerKey:        req.OwnerKey,
		Date:            &req.Date,
		IncludeInactive: false,
	}

	bookings, err := uc.bookingRepo.GetByOwnerWithFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 6. Вычисляем занятость каждого слота
	slots := calculateAvailableSpots(timeSlots, bookings, schedule.SlotsPerHour)

	uc.logger.Info("GetAvailableSlots: generated %d slots for owner=%s, date=%s",
		len(slots), req.OwnerKey, req.Date.Format(domain.DateFormat))

	return &Response{
		OwnerKey: req.OwnerKey,
		Date:     req.Date,
		Slots:    slots,
	}, nil
}
