package create_invitation

import (
	"context"

	"github.com/avdmi/salon-booking-service/internal/service/owners/models"
)

type OwnerService interface {
	CreateInvitation(ctx context.Context, req *models.CreateInvitationRequest) (*models.InvitationResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
