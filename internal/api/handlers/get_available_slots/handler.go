package get_available_slots

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SlotService/internal/api/handlers"
	"github.com/m04kA/SMC-SlotService/internal/api/middleware"
	getAvailableSlots "github.com/m04kA/SMC-SlotService/internal/usecase/get_available_slots"
)

const (
	msgInvalidMerchantID = "некорректный ID мастера"
	msgMissingDate       = "дата обязательна"
	msgInvalidDate       = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidParams     = "некорректные параметры durations или groupBy"
	msgInvalidDurations  = "некорректный набор длительностей услуг"
	msgInvalidInput      = "некорректные параметры запроса"
	msgStoreUnavailable  = "хранилище слотов временно недоступно"
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

// Handle GET /api/v1/merchants/{merchantId}/available-slots
// Query params: date (required, YYYY-MM-DD), durations (optional, "30,60"), groupBy (optional, "hour")
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	merchantID, err := handlers.PathID(r, "merchantId")
	if err != nil {
		h.logger.Warn("GET /merchants/{id}/available-slots - Invalid merchant ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidMerchantID)
		return
	}

	date, err := handlers.QueryDate(r, "date")
	if err != nil {
		h.logger.Warn("GET /merchants/{id}/available-slots - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}
	if date == nil {
		h.logger.Warn("GET /merchants/{id}/available-slots - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	// Эндпоинт публичный: userID только для логов
	userID, _ := middleware.GetUserID(r.Context())

	query := r.URL.Query()
	useCaseReq, err := ToUseCaseRequest(userID, merchantID, *date, query.Get("durations"), query.Get("groupBy"))
	if err != nil {
		h.logger.Warn("GET /merchants/{id}/available-slots - Invalid query: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrInvalidDurationSet):
			h.logger.Warn("GET /merchants/{id}/available-slots - Invalid durations: merchant_id=%d, error=%v", merchantID, err)
			handlers.RespondBadRequest(w, msgInvalidDurations)

		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /merchants/{id}/available-slots - Invalid input: merchant_id=%d, error=%v", merchantID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, getAvailableSlots.ErrStoreUnavailable):
			h.logger.Error("GET /merchants/{id}/available-slots - Store unavailable: merchant_id=%d, error=%v", merchantID, err)
			handlers.RespondServiceUnavailable(w, msgStoreUnavailable)

		default:
			h.logger.Error("GET /merchants/{id}/available-slots - Failed to get slots: merchant_id=%d, error=%v", merchantID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /merchants/{id}/available-slots - Slots retrieved successfully: merchant_id=%d, date=%s, slots_count=%d",
		merchantID, *date, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
