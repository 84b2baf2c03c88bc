package reserve_slot

import (
	"context"

	"github.com/m04kA/SMC-SlotService/internal/domain"
)

// SlotStore интерфейс хранилища слотов
type SlotStore interface {
	GetByID(ctx context.Context, id int64) (*domain.Slot, error)
	GetByFilter(ctx context.Context, filter domain.SlotsFilter) ([]*domain.Slot, error)
	MarkBooked(ctx context.Context, id int64, customerID int64) (*domain.Slot, error)
}

// MetricsCollector интерфейс для учета исходов бронирования
type MetricsCollector interface {
	ObserveReservation(result string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
