package send_reminder

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
	msgAlreadyReminded  = "напоминание уже отправлено"
	msgNotRemindable    = "напоминание недоступно для этой записи"
	msgTerminalStatus   = "запись находится в завершенном статусе"
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

// Handle POST /api/v1/bookings/{bookingId}/remind
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	bookingIDStr := vars["bookingId"]

	bookingID, err := strconv.ParseInt(bookingIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("POST /bookings/{id}/remind - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	ownerKey, ok := middleware.GetOwnerKey(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings/{id}/remind - Missing owner key")
		handlers.RespondUnauthorized(w, msgMissingOwnerKey)
		return
	}

	err = h.service.SendReminder(r.Context(), bookingID, ownerKey)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("POST /bookings/{id}/remind - Booking not found: booking_id=%d, owner=%s",
				bookingID, ownerKey)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, bookings.ErrAlreadyReminded):
			h.logger.Warn("POST /bookings/{id}/remind - Already reminded: booking_id=%d", bookingID)
			handlers.RespondError(w, http.StatusConflict, msgAlreadyReminded)

		case errors.Is(err, bookings.ErrIllegalTransition):
			h.logger.Warn("POST /bookings/{id}/remind - Booking in terminal status: booking_id=%d", bookingID)
			handlers.RespondError(w, http.StatusConflict, msgTerminalStatus)

		case errors.Is(err, bookings.ErrNotRemindable):
			h.logger.Warn("POST /bookings/{id}/remind - Not remindable: booking_id=%d", bookingID)
			handlers.RespondBadRequest(w, msgNotRemindable)

		default:
			h.logger.Error("POST /bookings/{id}/remind - Failed to send reminder: booking_id=%d, error=%v",
				bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings/{id}/remind - Reminder sent successfully: booking_id=%d, owner=%s",
		bookingID, ownerKey)
	handlers.RespondJSON(w, http.StatusOK, nil)
}
