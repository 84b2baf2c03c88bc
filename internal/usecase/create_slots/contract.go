package create_slots

import (
	"context"

	"github.com/m04kA/SMC-SlotService/internal/domain"
)

// SlotStore интерфейс хранилища слотов
type SlotStore interface {
	CreateMany(ctx context.Context, slots []*domain.Slot) ([]*domain.Slot, error)
}

// MetricsCollector интерфейс для учета созданных слотов
type MetricsCollector interface {
	AddSlotsGenerated(source string, n int)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
