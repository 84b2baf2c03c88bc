package get_working_hours

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SlotService/internal/api/handlers"
	"github.com/m04kA/SMC-SlotService/internal/service/workinghours"
)

const msgInvalidMerchantID = "некорректный ID мастера"

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

// Handle GET /api/v1/merchants/{merchantId}/working-hours
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	merchantID, err := handlers.PathID(r, "merchantId")
	if err != nil {
		h.logger.Warn("GET /merchants/{id}/working-hours - Invalid merchant ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidMerchantID)
		return
	}

	hours, err := h.service.Get(r.Context(), merchantID)
	if err != nil {
		if errors.Is(err, workinghours.ErrInvalidInput) {
			handlers.RespondBadRequest(w, msgInvalidMerchantID)
			return
		}
		h.logger.Error("GET /merchants/{id}/working-hours - Failed to get working hours: merchant_id=%d, error=%v", merchantID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomain(hours))
}
