package get_available_slots

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/avdmi/salon-booking-service/internal/api/handlers"
	"github.com/avdmi/salon-booking-service/internal/domain"
	getSlots "github.com/avdmi/salon-booking-service/internal/usecase/get_available_slots"
)

const (
	msgInvalidDate      = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgMissingDate      = "отсутствует параметр date"
	msgScheduleNotFound = "владелец не найден"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/owners/{ownerKey}/available-slots?date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	ownerKey := vars["ownerKey"]

	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /owners/{ownerKey}/available-slots - Missing date parameter")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		h.logger.Warn("GET /owners/{ownerKey}/available-slots - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getSlots.Request{
		OwnerKey: ownerKey,
		Date:     date,
	})
	if err != nil {
		switch {
		case errors.Is(err, getSlots.ErrScheduleNotFound):
			h.logger.Warn("GET /owners/{ownerKey}/available-slots - Schedule not found: owner=%s", ownerKey)
			handlers.RespondNotFound(w, msgScheduleNotFound)

		case errors.Is(err, getSlots.ErrInvalidInput):
			h.logger.Warn("GET /owners/{ownerKey}/available-slots - Invalid input: owner=%s, error=%v",
				ownerKey, err)
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("GET /owners/{ownerKey}/available-slots - Failed to get slots: owner=%s, error=%v",
				ownerKey, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /owners/{ownerKey}/available-slots - Slots retrieved: owner=%s, date=%s, count=%d",
		ownerKey, dateStr, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
