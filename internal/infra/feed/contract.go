package feed

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SlotService/internal/domain"
)

// SlotStore хранилище слотов, мутации которого транслируются в ленту событий
type SlotStore interface {
	GetByFilter(ctx context.Context, filter domain.SlotsFilter) ([]*domain.Slot, error)
	GetByID(ctx context.Context, id int64) (*domain.Slot, error)
	CreateMany(ctx context.Context, slots []*domain.Slot) ([]*domain.Slot, error)
	MarkBooked(ctx context.Context, id int64, customerID int64) (*domain.Slot, error)
	MarkAvailable(ctx context.Context, id int64) (*domain.Slot, error)
}

// TimeProvider источник времени событий
type TimeProvider interface {
	Now() time.Time
}

// Notifier получатель событий. Реализации не возвращают ошибок: доставка best-effort.
type Notifier interface {
	Notify(ctx context.Context, event domain.SlotEvent)
}

// Publisher публикует сообщение в брокер
type Publisher interface {
	PublishJSON(ctx context.Context, key string, v any) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
