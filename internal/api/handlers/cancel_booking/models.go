package cancel_booking

import (
	"github.com/avdmi/salon-booking-service/internal/service/bookings/models"
)

// CancelBookingRequest HTTP request model
type CancelBookingRequest struct {
	CancelledBy *string `json:"cancelledBy,omitempty"` // "owner" или "client"
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *CancelBookingRequest) ToServiceRequest(ownerKey string) *models.CancelBookingRequest {
	cancelledBy := "owner"
	if r.CancelledBy != nil && *r.CancelledBy != "" {
		cancelledBy = *r.CancelledBy
	}

	return &models.CancelBookingRequest{
		OwnerKey:    ownerKey,
		CancelledBy: cancelledBy,
	}
}
