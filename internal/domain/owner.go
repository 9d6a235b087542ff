package domain

import (
	"time"

	"github.com/google/uuid"
)

// Owner represents a registered business account
type Owner struct {
	ID           int64
	Email        string // совпадает с OwnerKey записей
	Name         string
	PasswordHash string
	CreatedAt    time.Time
}

// Invitation represents a one-time registration invitation.
// Регистрация владельца возможна только по действующему приглашению.
type Invitation struct {
	Token     uuid.UUID
	Email     string
	CreatedAt time.Time
	UsedAt    *time.Time
}

// IsUsed returns true if the invitation has already been redeemed
func (i *Invitation) IsUsed() bool {
	return i.UsedAt != nil
}
