package block_slot

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/avdmi/salon-booking-service/internal/api/handlers"
	"github.com/avdmi/salon-booking-service/internal/api/middleware"
	createBooking "github.com/avdmi/salon-booking-service/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgInvalidDate         = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgMissingOwnerKey     = "отсутствует ключ владельца"
	msgScheduleNotFound    = "расписание владельца не найдено"
	msgInvalidBookingDate  = "некорректная дата"
	msgNonWorkingDay       = "выбранный день нерабочий"
	msgInvalidTimeSlot     = "некорректный временной слот"
	msgSlotNotAvailableFmt = "временной слот недоступен: занято %d/%d"
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

// Handle POST /api/v1/blocks
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	ownerKey, ok := middleware.GetOwnerKey(r.Context())
	if !ok {
		h.logger.Warn("POST /blocks - Missing owner key")
		handlers.RespondUnauthorized(w, msgMissingOwnerKey)
		return
	}

	var req BlockSlotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /blocks - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(ownerKey)
	if err != nil {
		h.logger.Warn("POST /blocks - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Блокировка проходит тем же use case, что и обычная запись:
	// правила занятости слота идентичны
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		var capacityErr *createBooking.CapacityError

		switch {
		case errors.As(err, &capacityErr):
			h.logger.Warn("POST /blocks - Slot not available: owner=%s, taken=%d/%d",
				ownerKey, capacityErr.Taken, capacityErr.Limit)
			handlers.RespondError(w, http.StatusConflict,
				fmt.Sprintf(msgSlotNotAvailableFmt, capacityErr.Taken, capacityErr.Limit))

		case errors.Is(err, createBooking.ErrScheduleNotFound):
			h.logger.Warn("POST /blocks - Schedule not found: owner=%s", ownerKey)
			handlers.RespondNotFound(w, msgScheduleNotFound)

		case errors.Is(err, createBooking.ErrInvalidDate):
			h.logger.Warn("POST /blocks - Invalid date: owner=%s, date=%s", ownerKey, req.Date)
			handlers.RespondBadRequest(w, msgInvalidBookingDate)

		case errors.Is(err, createBooking.ErrNonWorkingDay):
			h.logger.Warn("POST /blocks - Non-working day: owner=%s, date=%s", ownerKey, req.Date)
			handlers.RespondBadRequest(w, msgNonWorkingDay)

		case errors.Is(err, createBooking.ErrInvalidTimeSlot):
			h.logger.Warn("POST /blocks - Invalid time slot: owner=%s, time=%s", ownerKey, req.StartTime)
			handlers.RespondBadRequest(w, msgInvalidTimeSlot)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /blocks - Invalid input: owner=%s, error=%v", ownerKey, err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /blocks - Failed to block slot: owner=%s, error=%v", ownerKey, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /blocks - Slot blocked successfully: booking_id=%d, owner=%s", result.ID, ownerKey)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
