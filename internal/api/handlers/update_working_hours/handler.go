package update_working_hours

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SlotService/internal/api/handlers"
	"github.com/m04kA/SMC-SlotService/internal/api/middleware"
	"github.com/m04kA/SMC-SlotService/internal/service/workinghours"
)

const (
	msgInvalidMerchantID  = "некорректный ID мастера"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgForbidden          = "изменять рабочие часы может только сам мастер"
	msgInvalidHours       = "некорректные рабочие часы: формат HH:MM, начало раньше конца, шаг от 5 до 240 минут"
)

type Handler struct {
	service WorkingHoursService
	logger  Logger
}

func NewHandler(service WorkingHoursService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/merchants/{merchantId}/working-hours
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	merchantID, err := handlers.PathID(r, "merchantId")
	if err != nil {
		h.logger.Warn("PUT /merchants/{id}/working-hours - Invalid merchant ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidMerchantID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PUT /merchants/{id}/working-hours - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req UpdateWorkingHoursRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /merchants/{id}/working-hours - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	hours, err := h.service.Update(r.Context(), req.ToServiceRequest(userID, merchantID))
	if err != nil {
		switch {
		case errors.Is(err, workinghours.ErrAccessDenied):
			h.logger.Warn("PUT /merchants/{id}/working-hours - Access denied: merchant_id=%d, user_id=%d", merchantID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, workinghours.ErrInvalidInput):
			h.logger.Warn("PUT /merchants/{id}/working-hours - Invalid hours: merchant_id=%d, error=%v", merchantID, err)
			handlers.RespondBadRequest(w, msgInvalidHours)

		default:
			h.logger.Error("PUT /merchants/{id}/working-hours - Failed to update: merchant_id=%d, error=%v", merchantID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /merchants/{id}/working-hours - Working hours updated: merchant_id=%d, window=%s-%s",
		merchantID, hours.StartTime, hours.EndTime)
	handlers.RespondJSON(w, http.StatusOK, FromDomain(hours))
}
