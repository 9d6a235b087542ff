package models

import (
	"errors"
	"time"

	"github.com/avdmi/salon-booking-service/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")

	// ErrInvalidDate возвращается при некорректном формате даты
	ErrInvalidDate = errors.New("invalid date format")
)

// Request модели

// CancelBookingRequest запрос на отмену записи
type CancelBookingRequest struct {
	OwnerKey    string `json:"ownerKey"`
	CancelledBy string `json:"cancelledBy"`
}

// GetOwnerBookingsRequest запрос на получение записей владельца
type GetOwnerBookingsRequest struct {
	OwnerKey        string  `json:"ownerKey"`
	Date            *string `json:"date,omitempty"` // YYYY-MM-DD
	Status          *string `json:"status,omitempty"`
	IncludeInactive bool    `json:"includeInactive"`
}

// ToDomainFilter конвертирует запрос в domain фильтр
func (r *GetOwnerBookingsRequest) ToDomainFilter() (domain.OwnerBookingsFilter, error) {
	filter := domain.OwnerBookingsFilter{
		OwnerKey:        r.OwnerKey,
		IncludeInactive: r.IncludeInactive,
	}

	if r.Date != nil {
		date, err := time.Parse(domain.DateFormat, *r.Date)
		if err != nil {
			return domain.OwnerBookingsFilter{}, ErrInvalidDate
		}
		filter.Date = &date
	}

	if r.Status != nil {
		status, err := ToDomainBookingStatus(*r.Status)
		if err != nil {
			return domain.OwnerBookingsFilter{}, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// Response модели

// BookingResponse представление записи для API
type BookingResponse struct {
	ID           int64   `json:"id"`
	OwnerKey     string  `json:"ownerKey"`
	Date         string  `json:"date"`
	StartTime    string  `json:"startTime"`
	Kind         string  `json:"kind"`
	Status       string  `json:"status"`
	ClientName   *string `json:"clientName,omitempty"`
	ClientEmail  *string `json:"clientEmail,omitempty"`
	ClientPhone  *string `json:"clientPhone,omitempty"`
	ServiceName  *string `json:"serviceName,omitempty"`
	Notes        *string `json:"notes,omitempty"`
	CancelledBy  *string `json:"cancelledBy,omitempty"`
	CancelledAt  *string `json:"cancelledAt,omitempty"`
	CompletedAt  *string `json:"completedAt,omitempty"`
	MarkedAt     *string `json:"markedAt,omitempty"`
	SlotFreed    *bool   `json:"slotFreed,omitempty"`
	ReminderSent bool    `json:"reminderSent"`
	RemindedAt   *string `json:"remindedAt,omitempty"`
	CreatedAt    string  `json:"createdAt"`
	UpdatedAt    string  `json:"updatedAt"`
}

// BookingListResponse список записей
type BookingListResponse struct {
	Bookings []*BookingResponse `json:"bookings"`
	Total    int                `json:"total"`
}

// CancelBookingResponse результат отмены записи
type CancelBookingResponse struct {
	ID          int64  `json:"id"`
	Status      string `json:"status"`
	SlotFreed   bool   `json:"slotFreed"`
	CancelledAt string `json:"cancelledAt"`
}

// FromDomainBooking конвертирует domain запись в API модель
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	return &BookingResponse{
		ID:           b.ID,
		OwnerKey:     b.OwnerKey,
		Date:         b.Date.Format(domain.DateFormat),
		StartTime:    b.StartTime.String(),
		Kind:         string(b.Kind),
		Status:       string(b.Status),
		ClientName:   b.ClientName,
		ClientEmail:  b.ClientEmail,
		ClientPhone:  b.ClientPhone,
		ServiceName:  b.ServiceName,
		Notes:        b.Notes,
		CancelledBy:  b.CancelledBy,
		CancelledAt:  formatTime(b.CancelledAt),
		CompletedAt:  formatTime(b.CompletedAt),
		MarkedAt:     formatTime(b.MarkedAt),
		SlotFreed:    b.SlotFreed,
		ReminderSent: b.ReminderSent,
		RemindedAt:   formatTime(b.RemindedAt),
		CreatedAt:    b.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    b.UpdatedAt.Format(time.RFC3339),
	}
}

// FromDomainBookingList конвертирует список domain записей в API модель
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	result := make([]*BookingResponse, len(bookings))
	for i, b := range bookings {
		result[i] = FromDomainBooking(b)
	}
	return &BookingListResponse{
		Bookings: result,
		Total:    len(result),
	}
}

// ToDomainBookingStatus валидирует и конвертирует строковый статус
func ToDomainBookingStatus(s string) (domain.BookingStatus, error) {
	status := domain.BookingStatus(s)
	if !domain.IsValidStatus(status) {
		return "", ErrInvalidStatus
	}
	return status, nil
}

func formatTime(t *time.Time) *string {
	if t == nil {
		return nil
	}
	formatted := t.Format(time.RFC3339)
	return &formatted
}
