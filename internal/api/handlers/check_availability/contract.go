package check_availability

import (
	"context"

	reserveSlot "github.com/m04kA/SMC-SlotService/internal/usecase/reserve_slot"
)

type AvailabilityChecker interface {
	CheckAvailability(ctx context.Context, req *reserveSlot.CheckRequest) (*reserveSlot.CheckResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
