package get_booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/avdmi/salon-booking-service/internal/api/handlers"
	"github.com/avdmi/salon-booking-service/internal/api/middleware"
	"github.com/avdmi/salon-booking-service/internal/service/bookings"
)

const (
	msgInvalidBookingID = "некорректный ID записи"
	msgMissingOwnerKey  = "отсутствует ключ владельца"
	msgNotFound         = "запись не найдена"
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

// Handle GET /api/v1/bookings/{bookingId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	bookingIDStr := vars["bookingId"]

	bookingID, err := strconv.ParseInt(bookingIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /bookings/{id} - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	ownerKey, ok := middleware.GetOwnerKey(r.Context())
	if !ok {
		h.logger.Warn("GET /bookings/{id} - Missing owner key")
		handlers.RespondUnauthorized(w, msgMissingOwnerKey)
		return
	}

	result, err := h.service.GetByID(r.Context(), bookingID, ownerKey)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("GET /bookings/{id} - Booking not found: booking_id=%d, owner=%s",
				bookingID, ownerKey)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /bookings/{id} - Failed to get booking: booking_id=%d, error=%v",
				bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /bookings/{id} - Booking retrieved successfully: booking_id=%d, owner=%s",
		bookingID, ownerKey)
	handlers.RespondJSON(w, http.StatusOK, result)
}
