package bookings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/avdmi/salon-booking-service/internal/domain"
	bookingRepo "github.com/avdmi/salon-booking-service/internal/infra/storage/booking"
	"github.com/avdmi/salon-booking-service/internal/service/bookings/models"
)

// Service сервис для работы с существующими записями: чтение и переходы
// жизненного цикла. Создание записей вынесено в отдельный usecase
// с проверкой занятости слота.
type Service struct {
	bookingRepo  BookingRepository
	notifier     Notifier
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса записей
func NewService(repo BookingRepository, notifier Notifier, logger Logger) *Service {
	return &Service{
		bookingRepo:  repo,
		notifier:     notifier,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// WithTimeProvider подменяет источник времени (для тестов)
func (s *Service) WithTimeProvider(tp TimeProvider) *Service {
	s.timeProvider = tp
	return s
}

// GetByID получает запись по ID. Владелец видит только свои записи:
// выборка всегда ограничена ownerKey.
func (s *Service) GetByID(ctx context.Context, id int64, ownerKey string) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d for owner=%s", id, ownerKey)

	b, err := s.getBooking(ctx, "GetByID", id, ownerKey)
	if err != nil {
		return nil, err
	}

	return models.FromDomainBooking(b), nil
}

// GetOwnerBookings получает записи владельца с фильтрацией по дате и статусу
func (s *Service) GetOwnerBookings(ctx context.Context, req *models.GetOwnerBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetOwnerBookings: owner=%s, date=%v, status=%v, includeInactive=%v",
		req.OwnerKey, req.Date, req.Status, req.IncludeInactive)

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("GetOwnerBookings: invalid filter for owner=%s: %v", req.OwnerKey, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	list, err := s.bookingRepo.GetByOwnerWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("GetOwnerBookings: repository error for owner=%s: %v", req.OwnerKey, err)
		return nil, fmt.Errorf("%w: GetOwnerBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetOwnerBookings: fetched %d bookings for owner=%s", len(list), req.OwnerKey)
	return models.FromDomainBookingList(list), nil
}

// Cancel отменяет запись: confirmed -> cancelled.
// Отмена по времени не запрещается никогда; оценщик окна отмены лишь
// вычисляет информационный флаг slotFreed (порог 6 часов, включительно).
func (s *Service) Cancel(ctx context.Context, bookingID int64, req *models.CancelBookingRequest) (*models.CancelBookingResponse, error) {
	s.logger.Info("Cancel: cancelling booking id=%d, owner=%s, by=%s", bookingID, req.OwnerKey, req.CancelledBy)

	b, err := s.getBooking(ctx, "Cancel", bookingID, req.OwnerKey)
	if err != nil {
		return nil, err
	}

	if b.IsTerminal() {
		s.logger.Warn("Cancel: booking id=%d already in terminal status=%s", bookingID, b.Status)
		return nil, ErrIllegalTransition
	}

	now := s.timeProvider.Now()
	result, err := domain.EvaluateCancellation(b.Date, b.StartTime, now)
	if err != nil {
		s.logger.Error("Cancel: failed to evaluate cancellation for booking id=%d: %v", bookingID, err)
		return nil, fmt.Errorf("%w: Cancel - evaluate cancellation: %v", ErrInternal, err)
	}

	if err := s.bookingRepo.Cancel(ctx, bookingID, req.OwnerKey, req.CancelledBy, result.SlotFreed); err != nil {
		return nil, s.mapTransitionError("Cancel", bookingID, err)
	}

	b.Status = result.Status
	s.notifier.SendCancellation(ctx, b, result.SlotFreed)

	s.logger.Info("Cancel: booking id=%d cancelled, slotFreed=%v", bookingID, result.SlotFreed)

	return &models.CancelBookingResponse{
		ID:          bookingID,
		Status:      string(result.Status),
		SlotFreed:   result.SlotFreed,
		CancelledAt: now.Format(time.RFC3339),
	}, nil
}

// Complete помечает запись выполненной: confirmed -> completed
func (s *Service) Complete(ctx context.Context, bookingID int64, ownerKey string) error {
	s.logger.Info("Complete: booking id=%d, owner=%s", bookingID, ownerKey)

	b, err := s.getBooking(ctx, "Complete", bookingID, ownerKey)
	if err != nil {
		return err
	}

	if b.IsTerminal() {
		s.logger.Warn("Complete: booking id=%d already in terminal status=%s", bookingID, b.Status)
		return ErrIllegalTransition
	}

	if err := s.bookingRepo.MarkCompleted(ctx, bookingID, ownerKey); err != nil {
		return s.mapTransitionError("Complete", bookingID, err)
	}

	s.logger.Info("Complete: booking id=%d marked completed", bookingID)
	return nil
}

// NoShow помечает неявку клиента: confirmed -> no_show
func (s *Service) NoShow(ctx context.Context, bookingID int64, ownerKey string) error {
	s.logger.Info("NoShow: booking id=%d, owner=%s", bookingID, ownerKey)

	b, err := s.getBooking(ctx, "NoShow", bookingID, ownerKey)
	if err != nil {
		return err
	}

	if b.IsTerminal() {
		s.logger.Warn("NoShow: booking id=%d already in terminal status=%s", bookingID, b.Status)
		return ErrIllegalTransition
	}

	if err := s.bookingRepo.MarkNoShow(ctx, bookingID, ownerKey); err != nil {
		return s.mapTransitionError("NoShow", bookingID, err)
	}

	s.logger.Info("NoShow: booking id=%d marked no_show", bookingID)
	return nil
}

// SendReminder отправляет напоминание вручную. Использует тот же
// атомарный захват флага, что и фоновый свип: кто первым выставил
// reminder_sent, тот и отправляет, дубликат невозможен.
func (s *Service) SendReminder(ctx context.Context, bookingID int64, ownerKey string) error {
	s.logger.Info("SendReminder: booking id=%d, owner=%s", bookingID, ownerKey)

	b, err := s.getBooking(ctx, "SendReminder", bookingID, ownerKey)
	if err != nil {
		return err
	}

	if !b.IsClientBooking() || b.ClientEmail == nil || *b.ClientEmail == "" {
		s.logger.Warn("SendReminder: booking id=%d is not remindable (kind=%s)", bookingID, b.Kind)
		return ErrNotRemindable
	}

	if b.IsTerminal() {
		s.logger.Warn("SendReminder: booking id=%d in terminal status=%s", bookingID, b.Status)
		return ErrIllegalTransition
	}

	claimed, err := s.bookingRepo.ClaimReminder(ctx, bookingID)
	if err != nil {
		s.logger.Error("SendReminder: failed to claim reminder for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: SendReminder - claim reminder: %v", ErrInternal, err)
	}

	if !claimed {
		s.logger.Warn("SendReminder: reminder already sent for booking id=%d", bookingID)
		return ErrAlreadyReminded
	}

	s.notifier.SendReminder(ctx, b)

	s.logger.Info("SendReminder: reminder sent for booking id=%d", bookingID)
	return nil
}

// Вспомогательные методы

func (s *Service) getBooking(ctx context.Context, method string, id int64, ownerKey string) (*domain.Booking, error) {
	b, err := s.bookingRepo.GetByID(ctx, id, ownerKey)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("%s: booking id=%d not found for owner=%s", method, id, ownerKey)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("%s: repository error for booking id=%d: %v", method, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, method, err)
	}
	return b, nil
}

// mapTransitionError транслирует ошибки условного обновления статуса.
// ErrStatusConflict означает гонку: между чтением и обновлением запись
// успела перейти в терминальный статус.
func (s *Service) mapTransitionError(method string, bookingID int64, err error) error {
	switch {
	case errors.Is(err, bookingRepo.ErrBookingNotFound):
		s.logger.Warn("%s: booking id=%d not found during update", method, bookingID)
		return ErrBookingNotFound
	case errors.Is(err, bookingRepo.ErrStatusConflict):
		s.logger.Warn("%s: booking id=%d concurrently moved to terminal status", method, bookingID)
		return ErrIllegalTransition
	default:
		s.logger.Error("%s: repository error for booking id=%d: %v", method, bookingID, err)
		return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, method, err)
	}
}
