package schedule

import (
	"context"

	"github.com/avdmi/salon-booking-service/internal/domain"
)

// ScheduleRepository интерфейс репозитория расписаний
type ScheduleRepository interface {
	GetByOwnerKey(ctx context.Context, ownerKey string) (*domain.OwnerSchedule, error)
	Update(ctx context.Context, s *domain.OwnerSchedule) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
