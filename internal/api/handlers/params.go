package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SlotService/internal/domain"
	"github.com/m04kA/SMC-SlotService/pkg/types"
)

// ErrInvalidParam возвращается, когда параметр пути или query не разбирается
var ErrInvalidParam = errors.New("invalid request parameter")

// PathID извлекает положительный int64 из переменной маршрута
func PathID(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(mux.Vars(r)[name], 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrInvalidParam
	}
	return id, nil
}

// QueryDate разбирает необязательный параметр даты (YYYY-MM-DD)
func QueryDate(r *http.Request, name string) (*types.Date, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	d, err := types.ParseDate(raw)
	if err != nil {
		return nil, ErrInvalidParam
	}
	return &d, nil
}

// QueryTime разбирает необязательный параметр времени (HH:MM)
func QueryTime(r *http.Request, name string) (*types.TimeString, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	t, err := types.NewTimeStringFromString(raw)
	if err != nil {
		return nil, ErrInvalidParam
	}
	return &t, nil
}

// QueryStatus разбирает необязательный фильтр статуса бронирования
func QueryStatus(r *http.Request) *string {
	raw := strings.TrimSpace(r.URL.Query().Get("status"))
	if raw == "" {
		return nil
	}
	return &raw
}

// SlotResponse представление слота в ответах API
type SlotResponse struct {
	ID              int64  `json:"id"`
	MerchantID      int64  `json:"merchantId"`
	Date            string `json:"date"`
	StartTime       string `json:"startTime"`
	EndTime         string `json:"endTime"`
	Time            string `json:"time"` // "09:00 - 09:30"
	Available       bool   `json:"available"`
	ServiceDuration *int   `json:"serviceDuration,omitempty"`
}

// FromDomainSlot конвертирует слот в DTO
func FromDomainSlot(s *domain.Slot) SlotResponse {
	return SlotResponse{
		ID:              s.ID,
		MerchantID:      s.MerchantID,
		Date:            s.Date.String(),
		StartTime:       s.StartTime.String(),
		EndTime:         s.EndTime.String(),
		Time:            s.StartTime.String() + " - " + s.EndTime.String(),
		Available:       s.IsAvailable(),
		ServiceDuration: s.ServiceDuration,
	}
}

// FromDomainSlots конвертирует список слотов в DTO
func FromDomainSlots(slots []*domain.Slot) []SlotResponse {
	resp := make([]SlotResponse, 0, len(slots))
	for _, s := range slots {
		resp = append(resp, FromDomainSlot(s))
	}
	return resp
}
