package create_invitation

import (
	"errors"
	"net/http"

	"github.com/avdmi/salon-booking-service/internal/api/handlers"
	"github.com/avdmi/salon-booking-service/internal/service/owners"
	"github.com/avdmi/salon-booking-service/internal/service/owners/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidEmail       = "некорректный email"
)

type Handler struct {
	service OwnerService
	logger  Logger
}

func NewHandler(service OwnerService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/invitations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.CreateInvitationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /invitations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.CreateInvitation(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, owners.ErrInvalidInput):
			h.logger.Warn("POST /invitations - Invalid email: %s", req.Email)
			handlers.RespondBadRequest(w, msgInvalidEmail)

		default:
			h.logger.Error("POST /invitations - Failed to create invitation: email=%s, error=%v",
				req.Email, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /invitations - Invitation created successfully: email=%s", result.Email)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
