package get_available_slots

import (
	"github.com/avdmi/salon-booking-service/internal/domain"
	getSlots "github.com/avdmi/salon-booking-service/internal/usecase/get_available_slots"
)

// SlotResponse HTTP модель одного слота
type SlotResponse struct {
	StartTime      string `json:"startTime"`
	AvailableSpots int    `json:"availableSpots"`
	TotalSpots     int    `json:"totalSpots"`
}

// AvailableSlotsResponse HTTP модель ответа со слотами дня
type AvailableSlotsResponse struct {
	OwnerKey string         `json:"ownerKey"`
	Date     string         `json:"date"`
	Slots    []SlotResponse `json:"slots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getSlots.Response) *AvailableSlotsResponse {
	slots := make([]SlotResponse, len(resp.Slots))
	for i, s := range resp.Slots {
		slots[i] = SlotResponse{
			StartTime:      s.StartTime.String(),
			AvailableSpots: s.AvailableSpots,
			TotalSpots:     s.TotalSpots,
		}
	}

	return &AvailableSlotsResponse{
		OwnerKey: resp.OwnerKey,
		Date:     resp.Date.Format(domain.DateFormat),
		Slots:    slots,
	}
}
