package login_owner

import (
	"context"

	"github.com/avdmi/salon-booking-service/internal/service/owners/models"
)

type OwnerService interface {
	Login(ctx context.Context, req *models.LoginRequest) (*models.OwnerResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
