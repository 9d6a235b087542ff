package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/avdmi/salon-booking-service/internal/domain"
	scheduleRepo "github.com/avdmi/salon-booking-service/internal/infra/storage/schedule"
)

// UseCase use case для создания записи или блокировки слота
type UseCase struct {
	bookingRepo  BookingRepository
	scheduleRepo ScheduleRepository
	notifier     Notifier
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	scheduleRepo ScheduleRepository,
	notifier Notifier,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		scheduleRepo: scheduleRepo,
		notifier:     notifier,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// WithTimeProvider подменяет провайдер времени (для тестирования)
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute выполняет use case создания записи.
// Проверка занятости слота и вставка выполняются в одной сериализуемой
// транзакции, что исключает гонку между параллельными запросами.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: owner=%s, date=%s, time=%s, kind=%s",
		req.OwnerKey, req.Date.Format(domain.DateFormat), req.StartTime, req.Kind)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Проверяем, что дата не в прошлом
	if err := validateDate(req.Date, now); err != nil {
		uc.logger.Warn("CreateBooking: date %s is in the past", req.Date.Format(domain.DateFormat))
		return nil, err
	}

	// 4. Получаем расписание владельца
	schedule, err := uc.scheduleRepo.GetByOwnerKey(ctx, req.OwnerKey)
	if err != nil {
		if errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
			uc.logger.Warn("CreateBooking: schedule not found for owner=%s", req.OwnerKey)
			return nil, ErrScheduleNotFound
		}
		uc.logger.Error("CreateBooking: failed to get schedule for owner=%s: %v", req.OwnerKey, err)
		return nil, fmt.Errorf("%w: failed to get schedule: %v", ErrInternal, err)
	}

	// 5. Проверяем рабочий день
	if !schedule.IsWorkingDay(req.Date.Weekday()) {
		uc.logger.Warn("CreateBooking: %s is a non-working day for owner=%s",
			req.Date.Format(domain.DateFormat), req.OwnerKey)
		return nil, ErrNonWorkingDay
	}

	// 6. Проверяем рабочие часы и выравнивание по сетке слотов
	if !schedule.AlignedSlot(req.StartTime) {
		uc.logger.Warn("CreateBooking: time %s is outside working hours or misaligned for owner=%s",
			req.StartTime, req.OwnerKey)
		return nil, ErrInvalidTimeSlot
	}

	// 7. Для обычной записи услуга должна входить в прайс владельца.
	// Пустой прайс трактуем как «любая услуга».
	if domain.BookingKind(req.Kind) == domain.KindBooking && len(schedule.Services) > 0 {
		if !schedule.HasService(*req.ServiceName) {
			uc.logger.Warn("CreateBooking: service %q is not offered by owner=%s", *req.ServiceName, req.OwnerKey)
			return nil, ErrUnknownService
		}
	}

	// Переменная для хранения результата
	var result *domain.Booking

	// 8. Выполняем операции с БД в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 8.1. Получаем все активные записи на эту дату с блокировкой (FOR UPDATE)
		filter := domain.OwnerBookingsFilter{
			OwnerKey:        req.OwnerKey,
			Date:            &req.Date,
			IncludeInactive: false,
		}

		bookings, err := uc.bookingRepo.GetByOwnerWithFilter(txCtx, filter)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		// 8.2. Проверяем занятость слота
		taken := domain.CountActiveAt(bookings, req.StartTime)

		// Если SlotsPerHour = 2, то допустимо taken = 0, 1
		if taken >= schedule.SlotsPerHour {
			uc.logger.Warn("CreateBooking: slot not available, %d/%d spots taken",
				taken, schedule.SlotsPerHour)
			return &CapacityError{Taken: taken, Limit: schedule.SlotsPerHour}
		}

		uc.logger.Info("CreateBooking: slot available, %d/%d spots taken", taken, schedule.SlotsPerHour)

		// 8.3. Создаем запись
		booking := &domain.Booking{
			OwnerKey:    req.OwnerKey,
			Date:        req.Date,
			StartTime:   req.StartTime,
			Kind:        domain.BookingKind(req.Kind),
			Status:      domain.StatusConfirmed,
			ClientName:  req.ClientName,
			ClientEmail: req.ClientEmail,
			ClientPhone: req.ClientPhone,
			ServiceName: req.ServiceName,
			Notes:       req.Notes,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d", result.ID)

	// 9. Отправляем подтверждение вне транзакции; сбой доставки не
	// отменяет уже созданную запись. Блокировки слотов не уведомляются.
	if result.IsClientBooking() {
		uc.notifier.SendBookingConfirmation(ctx, result)
	}

	return &Response{
		ID:          result.ID,
		OwnerKey:    result.OwnerKey,
		Date:        result.Date,
		StartTime:   result.StartTime,
		Kind:        string(result.Kind),
		Status:      string(result.Status),
		ClientName:  result.ClientName,
		ClientEmail: result.ClientEmail,
		ClientPhone: result.ClientPhone,
		ServiceName: result.ServiceName,
		Notes:       result.Notes,
		CreatedAt:   result.CreatedAt,
		UpdatedAt:   result.UpdatedAt,
	}, nil
}
