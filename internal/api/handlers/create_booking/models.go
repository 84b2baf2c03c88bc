package create_booking

import (
	"github.com/m04kA/SMC-SlotService/internal/service/bookings/models"
	createBooking "github.com/m04kA/SMC-SlotService/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	SlotID          int64   `json:"slotId"`
	MerchantID      int64   `json:"merchantId"`
	ServiceName     string  `json:"serviceName"`
	ServicePrice    float64 `json:"servicePrice"`
	DurationMinutes *int    `json:"durationMinutes,omitempty"`
	Notes           *string `json:"notes,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case; клиент берется из X-User-ID
func (r *CreateBookingRequest) ToUseCaseRequest(customerID int64) *createBooking.Request {
	return &createBooking.Request{
		CustomerID:      customerID,
		MerchantID:      r.MerchantID,
		SlotID:          r.SlotID,
		ServiceName:     r.ServiceName,
		ServicePrice:    r.ServicePrice,
		DurationMinutes: r.DurationMinutes,
		Notes:           r.Notes,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *models.BookingResponse {
	return models.FromDomainBooking(resp.Booking)
}
