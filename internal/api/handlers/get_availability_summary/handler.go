package get_availability_summary

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SlotService/internal/api/handlers"
	"github.com/m04kA/SMC-SlotService/internal/service/availability"
)

const (
	msgInvalidMerchantID = "некорректный ID мастера"
	msgInvalidRange      = "параметры from и to обязательны, формат YYYY-MM-DD"
	msgInvalidInput      = "некорректный период: from не позже to, не более 92 дней"
	msgStoreUnavailable  = "хранилище слотов временно недоступно"
)

type Handler struct {
	service AvailabilityService
	logger  Logger
}

func NewHandler(service AvailabilityService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/merchants/{merchantId}/availability-summary?from=&to=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	merchantID, err := handlers.PathID(r, "merchantId")
	if err != nil {
		h.logger.Warn("GET /merchants/{id}/availability-summary - Invalid merchant ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidMerchantID)
		return
	}

	from, errFrom := handlers.QueryDate(r, "from")
	to, errTo := handlers.QueryDate(r, "to")
	if errFrom != nil || errTo != nil || from == nil || to == nil {
		h.logger.Warn("GET /merchants/{id}/availability-summary - Invalid range: merchant_id=%d", merchantID)
		handlers.RespondBadRequest(w, msgInvalidRange)
		return
	}

	summary, err := h.service.Summarize(r.Context(), merchantID, *from, *to)
	if err != nil {
		switch {
		case errors.Is(err, availability.ErrInvalidInput):
			h.logger.Warn("GET /merchants/{id}/availability-summary - Invalid input: merchant_id=%d, error=%v", merchantID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, availability.ErrStoreUnavailable):
			h.logger.Error("GET /merchants/{id}/availability-summary - Store unavailable: merchant_id=%d, error=%v", merchantID, err)
			handlers.RespondServiceUnavailable(w, msgStoreUnavailable)

		default:
			h.logger.Error("GET /merchants/{id}/availability-summary - Failed to summarize: merchant_id=%d, error=%v", merchantID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /merchants/{id}/availability-summary - Summary built: merchant_id=%d, from=%s, to=%s, days=%d",
		merchantID, *from, *to, len(summary))
	handlers.RespondJSON(w, http.StatusOK, FromDomainSummary(merchantID, *from, *to, summary))
}
