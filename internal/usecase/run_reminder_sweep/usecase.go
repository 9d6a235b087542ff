package run_reminder_sweep

import (
	"context"
	"fmt"
	"time"

	"github.com/avdmi/salon-booking-service/internal/domain"
)

// UseCase use case рассылки напоминаний о завтрашних записях
type UseCase struct {
	bookingRepo  BookingRepository
	notifier     Notifier
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(bookingRepo BookingRepository, notifier Notifier, logger Logger) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		notifier:     notifier,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// WithTimeProvider подменяет провайдер времени (для тестирования)
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute выполняет один проход рассылки напоминаний.
// Флаг reminder_sent выставляется условным UPDATE до отправки письма:
// при параллельных проходах напоминание уходит не более одного раза.
// Сбой доставки после выставления флага письмо не повторяет.
func (uc *UseCase) Execute(ctx context.Context) (*Report, error) {
	now := uc.timeProvider.Now()
	// Дата без времени суток: колонка даты записи сравнивается по равенству
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	targetDate := today.AddDate(0, 0, 1)

	uc.logger.Info("ReminderSweep: scanning bookings for %s", targetDate.Format(domain.DateFormat))

	bookings, err := uc.bookingRepo.FindDueReminders(ctx, targetDate)
	if err != nil {
		uc.logger.Error("ReminderSweep: failed to find due reminders: %v", err)
		return nil, fmt.Errorf("%w: failed to find due reminders: %v", ErrInternal, err)
	}

	report := &Report{
		TargetDate: targetDate,
		Scanned:    len(bookings),
	}

	for _, booking := range bookings {
		// Без email напоминание отправить некому. Флаг не выставляем:
		// если email появится, следующий проход запись подхватит.
		if booking.ClientEmail == nil || *booking.ClientEmail == "" {
			report.Skipped++
			continue
		}

		claimed, err := uc.bookingRepo.ClaimReminder(ctx, booking.ID)
		if err != nil {
			uc.logger.Error("ReminderSweep: failed to claim reminder for booking id=%d: %v", booking.ID, err)
			report.Failed++
			continue
		}

		if !claimed {
			// Запись уже обработана другим процессом или сменила статус
			report.Skipped++
			continue
		}

		uc.notifier.SendReminder(ctx, booking)
		report.Sent++
	}

	uc.logger.Info("ReminderSweep: done for %s: scanned=%d, sent=%d, skipped=%d, failed=%d",
		targetDate.Format(domain.DateFormat), report.Scanned, report.Sent, report.Skipped, report.Failed)

	return report, nil
}
