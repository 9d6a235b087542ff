package block_slot

import (
	"time"

	"github.com/avdmi/salon-booking-service/internal/domain"
	createBooking "github.com/avdmi/salon-booking-service/internal/usecase/create_booking"
	"github.com/avdmi/salon-booking-service/pkg/types"
)

// BlockSlotRequest HTTP request model
type BlockSlotRequest struct {
	Date      string  `json:"date"`      // "2026-09-15"
	StartTime string  `json:"startTime"` // "10:00"
	Notes     *string `json:"notes,omitempty"`
}

// BlockSlotResponse HTTP response model
type BlockSlotResponse struct {
	ID        int64   `json:"id"`
	OwnerKey  string  `json:"ownerKey"`
	Date      string  `json:"date"`
	StartTime string  `json:"startTime"`
	Kind      string  `json:"kind"`
	Status    string  `json:"status"`
	Notes     *string `json:"notes,omitempty"`
	CreatedAt string  `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *BlockSlotRequest) ToUseCaseRequest(ownerKey string) (*createBooking.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		OwnerKey:  ownerKey,
		Date:      date,
		StartTime: startTime,
		Kind:      string(domain.KindBlocked),
		Notes:     r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BlockSlotResponse {
	return &BlockSlotResponse{
		ID:        resp.ID,
		OwnerKey:  resp.OwnerKey,
		Date:      resp.Date.Format(domain.DateFormat),
		StartTime: resp.StartTime.String(),
		Kind:      resp.Kind,
		Status:    resp.Status,
		Notes:     resp.Notes,
		CreatedAt: resp.CreatedAt.Format(time.RFC3339),
	}
}
