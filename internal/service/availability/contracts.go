package availability

import (
	"context"

	"github.com/m04kA/SMC-SlotService/internal/domain"
	"github.com/m04kA/SMC-SlotService/pkg/types"
)

// SlotStore интерфейс хранилища слотов
type SlotStore interface {
	GetByFilter(ctx context.Context, filter domain.SlotsFilter) ([]*domain.Slot, error)
}

// SummaryCache кеш сводок доступности (опционально)
type SummaryCache interface {
	Version(ctx context.Context, merchantID int64) (int64, error)
	Get(ctx context.Context, merchantID, version int64, from, to types.Date) (domain.AvailabilitySummary, bool, error)
	Set(ctx context.Context, merchantID, version int64, from, to types.Date, summary domain.AvailabilitySummary) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
