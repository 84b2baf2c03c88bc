package stream_slot_updates

import (
	"context"

	"github.com/m04kA/SMC-SlotService/internal/domain"
)

type SlotFeed interface {
	Subscribe(ctx context.Context, filter domain.SlotEventFilter) <-chan domain.SlotEvent
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
