package send_reminder

import "context"

type BookingService interface {
	SendReminder(ctx context.Context, bookingID int64, ownerKey string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
