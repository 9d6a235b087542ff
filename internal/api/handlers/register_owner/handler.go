package register_owner

import (
	"errors"
	"net/http"

	"github.com/avdmi/salon-booking-service/internal/api/handlers"
	"github.com/avdmi/salon-booking-service/internal/service/owners"
	"github.com/avdmi/salon-booking-service/internal/service/owners/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvitationNotFound = "приглашение не найдено"
	msgInvitationUsed     = "приглашение уже использовано"
	msgEmailMismatch      = "email не соответствует приглашению"
	msgOwnerExists        = "владелец с таким email уже зарегистрирован"
	msgInvalidInput       = "некорректные данные регистрации"
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

// Handle POST /api/v1/auth/register
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /auth/register - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Register(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, owners.ErrInvitationNotFound):
			h.logger.Warn("POST /auth/register - Invitation not found: email=%s", req.Email)
			handlers.RespondNotFound(w, msgInvitationNotFound)

		case errors.Is(err, owners.ErrInvitationUsed):
			h.logger.Warn("POST /auth/register - Invitation already used: email=%s", req.Email)
			handlers.RespondError(w, http.StatusConflict, msgInvitationUsed)

		case errors.Is(err, owners.ErrEmailMismatch):
			h.logger.Warn("POST /auth/register - Email mismatch: email=%s", req.Email)
			handlers.RespondForbidden(w, msgEmailMismatch)

		case errors.Is(err, owners.ErrOwnerExists):
			h.logger.Warn("POST /auth/register - Owner already exists: email=%s", req.Email)
			handlers.RespondError(w, http.StatusConflict, msgOwnerExists)

		case errors.Is(err, owners.ErrInvalidInput):
			h.logger.Warn("POST /auth/register - Invalid input: email=%s, error=%v", req.Email, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /auth/register - Failed to register owner: email=%s, error=%v",
				req.Email, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /auth/register - Owner registered successfully: owner_id=%d, email=%s",
		result.ID, result.Email)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
