package get_schedule

import (
	"context"

	"github.com/avdmi/salon-booking-service/internal/service/schedule/models"
)

type ScheduleService interface {
	Get(ctx context.Context, ownerKey string) (*models.ScheduleResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
