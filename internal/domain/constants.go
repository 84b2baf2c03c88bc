package domain

// Default configuration values
const (
	DefaultServiceDurationMinutes = 30
	DefaultStepMinutes            = 30
	DefaultWorkingStart           = "09:00"
	DefaultWorkingEnd             = "17:00"
)

// Business validation constants
const (
	MinStepMinutes            = 5
	MaxStepMinutes            = 240
	MinServiceDurationMinutes = 1
	MaxServiceDurationMinutes = 24 * 60
	MaxServiceNameLength      = 255
	MaxNotesLength            = 500
	MaxSummaryRangeDays       = 92
	MaxManualSlotsPerRequest  = 200
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
