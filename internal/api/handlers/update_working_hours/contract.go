package update_working_hours

import (
	"context"

	"github.com/m04kA/SMC-SlotService/internal/domain"
	"github.com/m04kA/SMC-SlotService/internal/service/workinghours"
)

type WorkingHoursService interface {
	Update(ctx context.Context, req *workinghours.UpdateRequest) (*domain.WorkingHours, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
