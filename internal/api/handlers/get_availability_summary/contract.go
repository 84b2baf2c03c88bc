package get_availability_summary

import (
	"context"

	"github.com/m04kA/SMC-SlotService/internal/domain"
	"github.com/m04kA/SMC-SlotService/pkg/types"
)

type AvailabilityService interface {
	Summarize(ctx context.Context, merchantID int64, from, to types.Date) (domain.AvailabilitySummary, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
