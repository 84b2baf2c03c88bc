package domain

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-SlotService/pkg/types"
)

// Slot represents a bookable time range of one merchant on one date
type Slot struct {
	ID         int64
	MerchantID int64
	Date       types.Date
	StartTime  types.TimeString
	EndTime    types.TimeString
	IsBooked   bool

	// ReservedBy клиент, занявший слот; nil у свободного слота
	ReservedBy *int64

	// ServiceDuration длительность услуги, под которую сгенерирован слот (минуты)
	ServiceDuration *int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// RangeKey returns the "HH:MM-HH:MM" key used to deduplicate slots within a day
func (s *Slot) RangeKey() string {
	return RangeKey(s.StartTime, s.EndTime)
}

// DurationMinutes returns the slot length in minutes
func (s *Slot) DurationMinutes() int {
	return s.EndTime.Minutes() - s.StartTime.Minutes()
}

// IsReservedBy returns true if the slot is booked by the given customer
func (s *Slot) IsReservedBy(customerID int64) bool {
	return s.IsBooked && s.ReservedBy != nil && *s.ReservedBy == customerID
}

// IsAvailable returns true if the slot can still be reserved
func (s *Slot) IsAvailable() bool {
	return !s.IsBooked
}

// RangeKey builds the deduplication key of a time range
func RangeKey(start, end types.TimeString) string {
	return fmt.Sprintf("%s-%s", start, end)
}

// SlotsFilter фильтр выборки слотов
type SlotsFilter struct {
	MerchantID    int64             // Обязательный параметр
	StartDate     *types.Date       // Начало периода включительно (опционально)
	EndDate       *types.Date       // Конец периода включительно (опционально)
	StartTime     *types.TimeString // Точное время начала (опционально)
	EndTime       *types.TimeString // Точное время окончания (опционально)
	OnlyAvailable bool              // Только is_booked = false
	Limit         uint64            // 0 = без ограничения
}

// ForDate returns a filter for a single date of a merchant
func ForDate(merchantID int64, date types.Date) SlotsFilter {
	return SlotsFilter{
		MerchantID: merchantID,
		StartDate:  &date,
		EndDate:    &date,
	}
}

// TimeRange is a requested (start, end) pair for manual slot creation
type TimeRange struct {
	StartTime types.TimeString
	EndTime   types.TimeString
}
