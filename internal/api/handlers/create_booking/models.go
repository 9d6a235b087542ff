package create_booking

import (
	"time"

	"github.com/avdmi/salon-booking-service/internal/domain"
	createBooking "github.com/avdmi/salon-booking-service/internal/usecase/create_booking"
	"github.com/avdmi/salon-booking-service/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	OwnerKey    string  `json:"ownerKey"`
	Date        string  `json:"date"`      // "2026-09-15"
	StartTime   string  `json:"startTime"` // "10:00"
	ClientName  *string `json:"clientName,omitempty"`
	ClientEmail *string `json:"clientEmail,omitempty"`
	ClientPhone *string `json:"clientPhone,omitempty"`
	ServiceName *string `json:"serviceName,omitempty"`
	Notes       *string `json:"notes,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID          int64   `json:"id"`
	OwnerKey    string  `json:"ownerKey"`
	Date        string  `json:"date"`
	StartTime   string  `json:"startTime"`
	Kind        string  `json:"kind"`
	Status      string  `json:"status"`
	ClientName  *string `json:"clientName,omitempty"`
	ClientEmail *string `json:"clientEmail,omitempty"`
	ClientPhone *string `json:"clientPhone,omitempty"`
	ServiceName *string `json:"serviceName,omitempty"`
	Notes       *string `json:"notes,omitempty"`
	CreatedAt   string  `json:"createdAt"`
	UpdatedAt   string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(kind domain.BookingKind) (*createBooking.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		OwnerKey:    r.OwnerKey,
		Date:        date,
		StartTime:   startTime,
		Kind:        string(kind),
		ClientName:  r.ClientName,
		ClientEmail: r.ClientEmail,
		ClientPhone: r.ClientPhone,
		ServiceName: r.ServiceName,
		Notes:       r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:          resp.ID,
		OwnerKey:    resp.OwnerKey,
		Date:        resp.Date.Format(domain.DateFormat),
		StartTime:   resp.StartTime.String(),
		Kind:        resp.Kind,
		Status:      resp.Status,
		ClientName:  resp.ClientName,
		ClientEmail: resp.ClientEmail,
		ClientPhone: resp.ClientPhone,
		ServiceName: resp.ServiceName,
		Notes:       resp.Notes,
		CreatedAt:   resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   resp.UpdatedAt.Format(time.RFC3339),
	}
}
