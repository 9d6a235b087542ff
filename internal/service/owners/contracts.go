package owners

import (
	"context"

	"github.com/google/uuid"

	"github.com/avdmi/salon-booking-service/internal/domain"
)

// OwnerRepository контракт репозитория владельцев и приглашений
type OwnerRepository interface {
	CreateOwner(ctx context.Context, o *domain.Owner) (*domain.Owner, error)
	GetOwnerByEmail(ctx context.Context, email string) (*domain.Owner, error)
	CreateInvitation(ctx context.Context, inv *domain.Invitation) (*domain.Invitation, error)
	GetInvitation(ctx context.Context, token uuid.UUID) (*domain.Invitation, error)
	MarkInvitationUsed(ctx context.Context, token uuid.UUID) error
}

// ScheduleRepository контракт репозитория расписаний
type ScheduleRepository interface {
	Create(ctx context.Context, s *domain.OwnerSchedule) (*domain.OwnerSchedule, error)
}

// TransactionManager контракт менеджера транзакций
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
