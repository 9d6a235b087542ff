package run_reminder_sweep

import (
	"context"
	"time"

	"github.com/avdmi/salon-booking-service/internal/domain"
)

// BookingRepository интерфейс репозитория записей
type BookingRepository interface {
	FindDueReminders(ctx context.Context, date time.Time) ([]*domain.Booking, error)
	ClaimReminder(ctx context.Context, id int64) (bool, error)
}

// Notifier интерфейс сервиса уведомлений
type Notifier interface {
	SendReminder(ctx context.Context, b *domain.Booking)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
