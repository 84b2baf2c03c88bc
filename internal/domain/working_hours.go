package domain

import (
	"time"

	"github.com/m04kA/SMC-SlotService/pkg/types"
)

// WorkingHours is the daily window used to generate candidate slots of a merchant
type WorkingHours struct {
	MerchantID  int64
	StartTime   types.TimeString
	EndTime     types.TimeString
	StepMinutes int

	// IsDefault true, если у мастера нет собственной записи и используются глобальные настройки
	IsDefault bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// LengthMinutes returns the length of the working window in minutes
func (w *WorkingHours) LengthMinutes() int {
	return w.EndTime.Minutes() - w.StartTime.Minutes()
}
