package get_working_hours

import (
	"context"

	"github.com/m04kA/SMC-SlotService/internal/domain"
)

type WorkingHoursService interface {
	Get(ctx context.Context, merchantID int64) (*domain.WorkingHours, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
