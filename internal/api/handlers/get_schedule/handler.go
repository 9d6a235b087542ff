package get_schedule

import (
	"errors"
	"net/http"

	"github.com/avdmi/salon-booking-service/internal/api/handlers"
	"github.com/avdmi/salon-booking-service/internal/api/middleware"
	"github.com/avdmi/salon-booking-service/internal/service/schedule"
)

const (
	msgMissingOwnerKey = "отсутствует ключ владельца"
	msgNotFound        = "расписание не найдено"
)

type Handler struct {
	service ScheduleService
	logger  Logger
}

func NewHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/schedule
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	ownerKey, ok := middleware.GetOwnerKey(r.Context())
	if !ok {
		h.logger.Warn("GET /schedule - Missing owner key")
		handlers.RespondUnauthorized(w, msgMissingOwnerKey)
		return
	}

	result, err := h.service.Get(r.Context(), ownerKey)
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrScheduleNotFound):
			h.logger.Warn("GET /schedule - Schedule not found: owner=%s", ownerKey)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /schedule - Failed to get schedule: owner=%s, error=%v", ownerKey, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /schedule - Schedule retrieved successfully: owner=%s", ownerKey)
	handlers.RespondJSON(w, http.StatusOK, result)
}
