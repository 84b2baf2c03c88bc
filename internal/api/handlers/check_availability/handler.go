package check_availability

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SlotService/internal/api/handlers"
	reserveSlot "github.com/m04kA/SMC-SlotService/internal/usecase/reserve_slot"
)

const (
	msgInvalidMerchantID = "некорректный ID мастера"
	msgInvalidDate       = "параметр date обязателен, формат YYYY-MM-DD"
	msgInvalidTime       = "параметр startTime обязателен, формат HH:MM"
	msgInvalidInput      = "некорректные параметры проверки"
	msgStoreUnavailable  = "хранилище слотов временно недоступно"
)

type Handler struct {
	checker AvailabilityChecker
	logger  Logger
}

func NewHandler(checker AvailabilityChecker, logger Logger) *Handler {
	return &Handler{
		checker: checker,
		logger:  logger,
	}
}

// Handle GET /api/v1/merchants/{merchantId}/slots/check?date=&startTime=&endTime=
// Результат подсказка для UI: последующее бронирование все равно может получить конфликт.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	merchantID, err := handlers.PathID(r, "merchantId")
	if err != nil {
		h.logger.Warn("GET /merchants/{id}/slots/check - Invalid merchant ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidMerchantID)
		return
	}

	date, err := handlers.QueryDate(r, "date")
	if err != nil || date == nil {
		h.logger.Warn("GET /merchants/{id}/slots/check - Invalid date: merchant_id=%d", merchantID)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	startTime, err := handlers.QueryTime(r, "startTime")
	if err != nil || startTime == nil {
		h.logger.Warn("GET /merchants/{id}/slots/check - Invalid start time: merchant_id=%d", merchantID)
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	endTime, err := handlers.QueryTime(r, "endTime")
	if err != nil {
		h.logger.Warn("GET /merchants/{id}/slots/check - Invalid end time: merchant_id=%d", merchantID)
		handlers.RespondBadRequest(w, msgInvalidInput)
		return
	}

	result, err := h.checker.CheckAvailability(r.Context(), &reserveSlot.CheckRequest{
		MerchantID: merchantID,
		Date:       *date,
		StartTime:  *startTime,
		EndTime:    endTime,
	})
	if err != nil {
		switch {
		case errors.Is(err, reserveSlot.ErrInvalidInput):
			h.logger.Warn("GET /merchants/{id}/slots/check - Invalid input: merchant_id=%d, error=%v", merchantID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, reserveSlot.ErrStoreUnavailable):
			h.logger.Error("GET /merchants/{id}/slots/check - Store unavailable: merchant_id=%d, error=%v", merchantID, err)
			handlers.RespondServiceUnavailable(w, msgStoreUnavailable)

		default:
			h.logger.Error("GET /merchants/{id}/slots/check - Failed to check availability: merchant_id=%d, error=%v", merchantID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /merchants/{id}/slots/check - Checked: merchant_id=%d, date=%s, start=%s, available=%t",
		merchantID, *date, *startTime, result.Available)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
