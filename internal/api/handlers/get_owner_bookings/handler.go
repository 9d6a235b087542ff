package get_owner_bookings

import (
	"errors"
	"net/http"

	"github.com/avdmi/salon-booking-service/internal/api/handlers"
	"github.com/avdmi/salon-booking-service/internal/api/middleware"
	"github.com/avdmi/salon-booking-service/internal/service/bookings"
)

const (
	msgMissingOwnerKey = "отсутствует ключ владельца"
	msgInvalidParams   = "некорректные параметры запроса"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/bookings
// Query params: date, status, includeInactive (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	ownerKey, ok := middleware.GetOwnerKey(r.Context())
	if !ok {
		h.logger.Warn("GET /bookings - Missing owner key")
		handlers.RespondUnauthorized(w, msgMissingOwnerKey)
		return
	}

	dateStr := r.URL.Query().Get("date")
	statusStr := r.URL.Query().Get("status")
	includeInactiveStr := r.URL.Query().Get("includeInactive")

	serviceReq, err := ToServiceRequest(ownerKey, dateStr, statusStr, includeInactiveStr)
	if err != nil {
		h.logger.Warn("GET /bookings - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.service.GetOwnerBookings(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /bookings - Invalid parameters: owner=%s, error=%v", ownerKey, err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		default:
			h.logger.Error("GET /bookings - Failed to get bookings: owner=%s, error=%v", ownerKey, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /bookings - Bookings retrieved successfully: owner=%s, count=%d",
		ownerKey, result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}
