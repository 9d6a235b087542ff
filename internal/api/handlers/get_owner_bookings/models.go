package get_owner_bookings

import (
	"strconv"

	"github.com/avdmi/salon-booking-service/internal/service/bookings/models"
)

// ToServiceRequest собирает запрос сервиса из query параметров
func ToServiceRequest(ownerKey, dateStr, statusStr, includeInactiveStr string) (*models.GetOwnerBookingsRequest, error) {
	req := &models.GetOwnerBookingsRequest{
		OwnerKey: ownerKey,
	}

	if dateStr != "" {
		req.Date = &dateStr
	}

	if statusStr != "" {
		req.Status = &statusStr
	}

	if includeInactiveStr != "" {
		includeInactive, err := strconv.ParseBool(includeInactiveStr)
		if err != nil {
			return nil, err
		}
		req.IncludeInactive = includeInactive
	}

	return req, nil
}
