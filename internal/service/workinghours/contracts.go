package workinghours

import (
	"context"

	"github.com/m04kA/SMC-SlotService/internal/domain"
)

// WorkingHoursRepository интерфейс репозитория рабочих часов
type WorkingHoursRepository interface {
	GetByMerchantID(ctx context.Context, merchantID int64) (*domain.WorkingHours, error)
	Upsert(ctx context.Context, hours *domain.WorkingHours) (*domain.WorkingHours, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
