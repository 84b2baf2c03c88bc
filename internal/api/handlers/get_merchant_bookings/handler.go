package get_merchant_bookings

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SlotService/internal/api/handlers"
	"github.com/m04kA/SMC-SlotService/internal/api/middleware"
	"github.com/m04kA/SMC-SlotService/internal/service/bookings"
	"github.com/m04kA/SMC-SlotService/internal/service/bookings/models"
)

const (
	msgInvalidMerchantID = "некорректный ID мастера"
	msgMissingUserID     = "отсутствует ID пользователя"
	msgInvalidFilter     = "некорректный фильтр: даты YYYY-MM-DD, from не позже to, статус pending|confirmed|cancelled"
	msgForbidden         = "доступ запрещен"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/merchants/{merchantId}/bookings?from=&to=&status=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	merchantID, err := handlers.PathID(r, "merchantId")
	if err != nil {
		h.logger.Warn("GET /merchants/{id}/bookings - Invalid merchant ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidMerchantID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /merchants/{id}/bookings - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	query := r.URL.Query()
	req := &models.GetMerchantBookingsRequest{
		UserID:     userID,
		MerchantID: merchantID,
		Status:     handlers.QueryStatus(r),
	}
	if from := query.Get("from"); from != "" {
		req.StartDate = &from
	}
	if to := query.Get("to"); to != "" {
		req.EndDate = &to
	}

	result, err := h.service.GetMerchantBookings(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrAccessDenied):
			h.logger.Warn("GET /merchants/{id}/bookings - Access denied: merchant_id=%d, user_id=%d", merchantID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /merchants/{id}/bookings - Invalid filter: merchant_id=%d, error=%v", merchantID, err)
			handlers.RespondBadRequest(w, msgInvalidFilter)

		default:
			h.logger.Error("GET /merchants/{id}/bookings - Failed to get bookings: merchant_id=%d, error=%v", merchantID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /merchants/{id}/bookings - Bookings retrieved: merchant_id=%d, count=%d", merchantID, len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result)
}
