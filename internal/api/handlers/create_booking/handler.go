package create_booking

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/avdmi/salon-booking-service/internal/api/handlers"
	"github.com/avdmi/salon-booking-service/internal/domain"
	createBooking "github.com/avdmi/salon-booking-service/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgInvalidDate         = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgScheduleNotFound    = "владелец не найден"
	msgInvalidBookingDate  = "некорректная дата записи"
	msgNonWorkingDay       = "выбранный день нерабочий"
	msgInvalidTimeSlot     = "некорректный временной слот"
	msgUnknownService      = "услуга не найдена в прайсе"
	msgSlotNotAvailableFmt = "выбранный временной слот недоступен: занято %d/%d"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом даты и времени)
	useCaseReq, err := req.ToUseCaseRequest(domain.KindBooking)
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		var capacityErr *createBooking.CapacityError

		switch {
		case errors.As(err, &capacityErr):
			h.logger.Warn("POST /bookings - Slot not available: owner=%s, date=%s, time=%s, taken=%d/%d",
				req.OwnerKey, req.Date, req.StartTime, capacityErr.Taken, capacityErr.Limit)
			handlers.RespondError(w, http.StatusConflict,
				fmt.Sprintf(msgSlotNotAvailableFmt, capacityErr.Taken, capacityErr.Limit))

		case errors.Is(err, createBooking.ErrScheduleNotFound):
			h.logger.Warn("POST /bookings - Schedule not found: owner=%s", req.OwnerKey)
			handlers.RespondNotFound(w, msgScheduleNotFound)

		case errors.Is(err, createBooking.ErrInvalidDate):
			h.logger.Warn("POST /bookings - Invalid booking date: owner=%s, date=%s", req.OwnerKey, req.Date)
			handlers.RespondBadRequest(w, msgInvalidBookingDate)

		case errors.Is(err, createBooking.ErrNonWorkingDay):
			h.logger.Warn("POST /bookings - Non-working day: owner=%s, date=%s", req.OwnerKey, req.Date)
			handlers.RespondBadRequest(w, msgNonWorkingDay)

		case errors.Is(err, createBooking.ErrInvalidTimeSlot):
			h.logger.Warn("POST /bookings - Invalid time slot: owner=%s, time=%s", req.OwnerKey, req.StartTime)
			handlers.RespondBadRequest(w, msgInvalidTimeSlot)

		case errors.Is(err, createBooking.ErrUnknownService):
			h.logger.Warn("POST /bookings - Unknown service: owner=%s", req.OwnerKey)
			handlers.RespondBadRequest(w, msgUnknownService)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: owner=%s, error=%v", req.OwnerKey, err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: owner=%s, error=%v", req.OwnerKey, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, owner=%s",
		result.ID, req.OwnerKey)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
