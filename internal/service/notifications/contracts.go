package notifications

import (
	"context"

	"github.com/avdmi/salon-booking-service/internal/integrations/mailer"
)

// MailerClient интерфейс клиента транзакционной почты
type MailerClient interface {
	Send(ctx context.Context, msg mailer.Message) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
