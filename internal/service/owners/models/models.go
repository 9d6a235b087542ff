package models

import (
	"time"

	"github.com/avdmi/salon-booking-service/internal/domain"
)

// CreateInvitationRequest запрос на выпуск приглашения
type CreateInvitationRequest struct {
	Email string `json:"email"`
}

// InvitationResponse ответ с данными приглашения
type InvitationResponse struct {
	Token     string `json:"token"`
	Email     string `json:"email"`
	CreatedAt string `json:"createdAt"`
}

// RegisterRequest запрос на регистрацию владельца по приглашению
type RegisterRequest struct {
	Token    string `json:"token"`
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

// LoginRequest запрос на вход владельца
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// OwnerResponse ответ с данными владельца
type OwnerResponse struct {
	ID        int64  `json:"id"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	OwnerKey  string `json:"ownerKey"`
	CreatedAt string `json:"createdAt"`
}

// FromDomainInvitation конвертирует доменное приглашение в ответ API
func FromDomainInvitation(inv *domain.Invitation) *InvitationResponse {
	return &InvitationResponse{
		Token:     inv.Token.String(),
		Email:     inv.Email,
		CreatedAt: inv.CreatedAt.Format(time.RFC3339),
	}
}

// FromDomainOwner конвертирует доменного владельца в ответ API
func FromDomainOwner(o *domain.Owner) *OwnerResponse {
	return &OwnerResponse{
		ID:        o.ID,
		Email:     o.Email,
		Name:      o.Name,
		OwnerKey:  o.Email,
		CreatedAt: o.CreatedAt.Format(time.RFC3339),
	}
}
