package bookings

import (
	"context"
	"time"

	"github.com/avdmi/salon-booking-service/internal/domain"
)

// BookingRepository интерфейс репозитория записей
type BookingRepository interface {
	GetByID(ctx context.Context, id int64, ownerKey string) (*domain.Booking, error)
	GetByOwnerWithFilter(ctx context.Context, filter domain.OwnerBookingsFilter) ([]*domain.Booking, error)
	MarkCompleted(ctx context.Context, id int64, ownerKey string) error
	MarkNoShow(ctx context.Context, id int64, ownerKey string) error
	Cancel(ctx context.Context, id int64, ownerKey string, cancelledBy string, slotFreed bool) error
	ClaimReminder(ctx context.Context, id int64) (bool, error)
}

// Notifier интерфейс сервиса уведомлений.
// Методы не возвращают ошибок: доставка best-effort, сбои глотаются внутри.
type Notifier interface {
	SendCancellation(ctx context.Context, b *domain.Booking, slotFreed bool)
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
