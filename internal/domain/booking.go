package domain

import (
	"time"

	"github.com/m04kA/SMC-SlotService/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	// StatusPending новая запись, ожидает подтверждения мастера ("upcoming" в клиентском приложении)
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
)

// ParseBookingStatus converts a string into a BookingStatus.
// "upcoming" is accepted as an alias of pending.
func ParseBookingStatus(s string) (BookingStatus, bool) {
	switch s {
	case string(StatusPending), "upcoming":
		return StatusPending, true
	case string(StatusConfirmed):
		return StatusConfirmed, true
	case string(StatusCancelled):
		return StatusCancelled, true
	default:
		return "", false
	}
}

// IsUpdateTarget returns true for the statuses a booking may be moved to
func (s BookingStatus) IsUpdateTarget() bool {
	return s == StatusConfirmed || s == StatusCancelled
}

// Booking represents a customer-facing record of a reserved slot
type Booking struct {
	ID         int64
	CustomerID int64
	MerchantID int64
	SlotID     int64

	// Denormalized slot data for history
	BookingDate types.Date
	StartTime   types.TimeString
	EndTime     types.TimeString

	ServiceName     string
	ServicePrice    float64
	DurationMinutes int
	Status          BookingStatus
	Notes           *string

	CancelledAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsActive returns true if the booking still holds its slot
func (b *Booking) IsActive() bool {
	return b.Status != StatusCancelled
}

// IsCancelled returns true if the booking has been cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelled
}

// BelongsTo returns true if the user is the customer or the merchant of the booking
func (b *Booking) BelongsTo(userID int64) bool {
	return b.CustomerID == userID || b.MerchantID == userID
}

// MerchantBookingsFilter фильтр для получения бронирований мастера
type MerchantBookingsFilter struct {
	MerchantID int64          // Обязательный параметр
	StartDate  *types.Date    // Начало периода (опционально)
	EndDate    *types.Date    // Конец периода (опционально)
	Status     *BookingStatus // Фильтр по статусу (опционально)
}
