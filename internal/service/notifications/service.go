package notifications

import (
	"context"
	"text/template"

	"github.com/avdmi/salon-booking-service/internal/domain"
	"github.com/avdmi/salon-booking-service/internal/integrations/mailer"
)

// Service сервис уведомлений. Уведомления best-effort: любая ошибка
// доставки логируется и глотается, ни одна мутация записи не блокируется
// и не откатывается из-за почты.
type Service struct {
	mailer  MailerClient
	enabled bool
	logger  Logger
}

// NewService создает сервис уведомлений.
// При enabled=false все отправки превращаются в no-op.
func NewService(mailerClient MailerClient, enabled bool, logger Logger) *Service {
	return &Service{
		mailer:  mailerClient,
		enabled: enabled,
		logger:  logger,
	}
}

// SendBookingConfirmation отправляет подтверждение созданной записи
func (s *Service) SendBookingConfirmation(ctx context.Context, b *domain.Booking) {
	s.send(ctx, b, confirmationSubject, confirmationTmpl)
}

// SendCancellation отправляет уведомление об отмене.
// Текст зависит от slotFreed: чистая отмена или поздняя.
func (s *Service) SendCancellation(ctx context.Context, b *domain.Booking, slotFreed bool) {
	if slotFreed {
		s.send(ctx, b, cancellationCleanSubject, cancellationCleanTmpl)
		return
	}
	s.send(ctx, b, cancellationLateSubject, cancellationLateTmpl)
}

// SendReminder отправляет напоминание о завтрашней записи
func (s *Service) SendReminder(ctx context.Context, b *domain.Booking) {
	s.send(ctx, b, reminderSubject, reminderTmpl)
}

func (s *Service) send(ctx context.Context, b *domain.Booking, subject string, tmpl *template.Template) {
	if !s.enabled {
		return
	}

	// Блокировки слотов и записи без email клиента не уведомляются
	if !b.IsClientBooking() || b.ClientEmail == nil || *b.ClientEmail == "" {
		return
	}

	data := templateData{
		ClientName:  stringValue(b.ClientName),
		ServiceName: stringValue(b.ServiceName),
		Date:        b.Date.Format(domain.DateFormat),
		Time:        b.StartTime.String(),
	}

	body, err := render(tmpl, data)
	if err != nil {
		s.logger.Error("notifications: failed to render %s for booking id=%d: %v", subject, b.ID, err)
		return
	}

	msg := mailer.Message{
		To:      *b.ClientEmail,
		Subject: subject,
		Text:    body,
	}

	if err := s.mailer.Send(ctx, msg); err != nil {
		s.logger.Error("notifications: delivery failed for booking id=%d, to=%s: %v", b.ID, *b.ClientEmail, err)
		return
	}

	s.logger.Info("notifications: sent %q for booking id=%d", subject, b.ID)
}

func stringValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
