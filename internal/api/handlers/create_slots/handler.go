package create_slots

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SlotService/internal/api/handlers"
	"github.com/m04kA/SMC-SlotService/internal/api/middleware"
	createSlots "github.com/m04kA/SMC-SlotService/internal/usecase/create_slots"
)

const (
	msgInvalidMerchantID  = "некорректный ID мастера"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidFormat      = "некорректный формат: дата YYYY-MM-DD, время HH:MM"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgInvalidInput       = "некорректные диапазоны слотов"
	msgForbidden          = "создавать слоты может только сам мастер"
	msgSlotConflict       = "слот с таким временем уже существует"
	msgStoreUnavailable   = "хранилище слотов временно недоступно"
)

type Handler struct {
	useCase CreateSlotsUseCase
	logger  Logger
}

func NewHandler(useCase CreateSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/merchants/{merchantId}/slots
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	merchantID, err := handlers.PathID(r, "merchantId")
	if err != nil {
		h.logger.Warn("POST /merchants/{id}/slots - Invalid merchant ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidMerchantID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /merchants/{id}/slots - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateSlotsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /merchants/{id}/slots - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(userID, merchantID)
	if err != nil {
		h.logger.Warn("POST /merchants/{id}/slots - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFormat)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createSlots.ErrAccessDenied):
			h.logger.Warn("POST /merchants/{id}/slots - Access denied: merchant_id=%d, user_id=%d", merchantID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, createSlots.ErrInvalidInput):
			h.logger.Warn("POST /merchants/{id}/slots - Invalid input: merchant_id=%d, error=%v", merchantID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, createSlots.ErrSlotConflict):
			h.logger.Warn("POST /merchants/{id}/slots - Slot conflict: merchant_id=%d, date=%s", merchantID, useCaseReq.Date)
			handlers.RespondConflict(w, msgSlotConflict)

		case errors.Is(err, createSlots.ErrStoreUnavailable):
			h.logger.Error("POST /merchants/{id}/slots - Store unavailable: merchant_id=%d, error=%v", merchantID, err)
			handlers.RespondServiceUnavailable(w, msgStoreUnavailable)

		default:
			h.logger.Error("POST /merchants/{id}/slots - Failed to create slots: merchant_id=%d, error=%v", merchantID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /merchants/{id}/slots - Slots created: merchant_id=%d, date=%s, count=%d",
		merchantID, useCaseReq.Date, len(result.Slots))
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(merchantID, useCaseReq.Date, result))
}
