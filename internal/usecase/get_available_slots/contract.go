package get_available_slots

import (
	"context"

	"github.com/m04kA/SMC-SlotService/internal/domain"
	"github.com/m04kA/SMC-SlotService/internal/usecase/ensure_slots"
	"github.com/m04kA/SMC-SlotService/pkg/types"
)

// SlotEnsurer генерирует слоты дня при первом обращении
type SlotEnsurer interface {
	Execute(ctx context.Context, req *ensure_slots.Request) (*ensure_slots.Response, error)
}

// AvailabilityIndex выборка свободных слотов и группировка для отображения
type AvailabilityIndex interface {
	ListAvailable(ctx context.Context, merchantID int64, date types.Date) ([]*domain.Slot, error)
	GroupByHour(slots []*domain.Slot) []domain.HourGroup
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
