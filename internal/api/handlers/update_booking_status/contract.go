package update_booking_status

import "context"

type BookingService interface {
	Complete(ctx context.Context, bookingID int64, ownerKey string) error
	NoShow(ctx context.Context, bookingID int64, ownerKey string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
