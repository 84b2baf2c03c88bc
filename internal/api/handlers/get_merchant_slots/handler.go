package get_merchant_slots

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SlotService/internal/api/handlers"
	"github.com/m04kA/SMC-SlotService/internal/service/availability"
)

const (
	msgInvalidMerchantID = "некорректный ID мастера"
	msgInvalidRange      = "некорректный период: даты YYYY-MM-DD, from не позже to"
	msgStoreUnavailable  = "хранилище слотов временно недоступно"
)

// SlotsResponse HTTP response model
type SlotsResponse struct {
	MerchantID int64                   `json:"merchantId"`
	Slots      []handlers.SlotResponse `json:"slots"`
}

type Handler struct {
	lister SlotLister
	logger Logger
}

func NewHandler(lister SlotLister, logger Logger) *Handler {
	return &Handler{
		lister: lister,
		logger: logger,
	}
}

// Handle GET /api/v1/merchants/{merchantId}/slots?from=&to=
// Возвращает все слоты мастера, включая занятые
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	merchantID, err := handlers.PathID(r, "merchantId")
	if err != nil {
		h.logger.Warn("GET /merchants/{id}/slots - Invalid merchant ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidMerchantID)
		return
	}

	from, errFrom := handlers.QueryDate(r, "from")
	to, errTo := handlers.QueryDate(r, "to")
	if errFrom != nil || errTo != nil {
		h.logger.Warn("GET /merchants/{id}/slots - Invalid range: merchant_id=%d", merchantID)
		handlers.RespondBadRequest(w, msgInvalidRange)
		return
	}

	slots, err := h.lister.ListMerchantSlots(r.Context(), merchantID, from, to)
	if err != nil {
		switch {
		case errors.Is(err, availability.ErrInvalidInput):
			h.logger.Warn("GET /merchants/{id}/slots - Invalid input: merchant_id=%d, error=%v", merchantID, err)
			handlers.RespondBadRequest(w, msgInvalidRange)

		case errors.Is(err, availability.ErrStoreUnavailable):
			h.logger.Error("GET /merchants/{id}/slots - Store unavailable: merchant_id=%d, error=%v", merchantID, err)
			handlers.RespondServiceUnavailable(w, msgStoreUnavailable)

		default:
			h.logger.Error("GET /merchants/{id}/slots - Failed to list slots: merchant_id=%d, error=%v", merchantID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /merchants/{id}/slots - Slots retrieved: merchant_id=%d, count=%d", merchantID, len(slots))
	handlers.RespondJSON(w, http.StatusOK, &SlotsResponse{
		MerchantID: merchantID,
		Slots:      handlers.FromDomainSlots(slots),
	})
}
