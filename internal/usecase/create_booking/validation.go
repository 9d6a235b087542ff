package create_booking

import (
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/avdmi/salon-booking-service/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.OwnerKey) == "" {
		return fmt.Errorf("%w: ownerKey is required", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	kind := domain.BookingKind(req.Kind)
	if kind != domain.KindBooking && kind != domain.KindBlocked {
		return fmt.Errorf("%w: kind must be %q or %q", ErrInvalidInput, domain.KindBooking, domain.KindBlocked)
	}

	if kind == domain.KindBooking {
		if err := validateClientFields(req); err != nil {
			return err
		}
	}

	return nil
}

// validateClientFields проверяет данные клиента для обычной записи
func validateClientFields(req *Request) error {
	if req.ClientName == nil || strings.TrimSpace(*req.ClientName) == "" {
		return fmt.Errorf("%w: clientName is required", ErrInvalidInput)
	}

	if req.ClientEmail != nil && *req.ClientEmail != "" {
		if _, err := mail.ParseAddress(*req.ClientEmail); err != nil {
			return fmt.Errorf("%w: clientEmail format is invalid", ErrInvalidInput)
		}
	}

	if req.ServiceName == nil || strings.TrimSpace(*req.ServiceName) == "" {
		return fmt.Errorf("%w: serviceName is required", ErrInvalidInput)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes too long, max %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}

// validateDate проверяет, что дата записи не в прошлом
func validateDate(bookingDate, now time.Time) error {
	dateOnly := time.Date(bookingDate.Year(), bookingDate.Month(), bookingDate.Day(), 0, 0, 0, 0, bookingDate.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	if dateOnly.Before(nowOnly) {
		return ErrInvalidDate
	}

	return nil
}
