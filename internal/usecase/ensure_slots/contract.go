package ensure_slots

import (
	"context"

	"github.com/m04kA/SMC-SlotService/internal/domain"
)

// SlotStore интерфейс хранилища слотов
type SlotStore interface {
	GetByFilter(ctx context.Context, filter domain.SlotsFilter) ([]*domain.Slot, error)
	CreateMany(ctx context.Context, slots []*domain.Slot) ([]*domain.Slot, error)
}

// WorkingHoursProvider возвращает рабочее окно мастера (или глобальное по умолчанию)
type WorkingHoursProvider interface {
	Get(ctx context.Context, merchantID int64) (*domain.WorkingHours, error)
}

// MetricsCollector интерфейс для учета сгенерированных слотов
type MetricsCollector interface {
	AddSlotsGenerated(source string, n int)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
