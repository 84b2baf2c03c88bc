package feed

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-SlotService/internal/domain"
)

// DefaultPublishTimeout ограничение на публикацию одного события
const DefaultPublishTimeout = 2 * time.Second

// Forwarder пересылает события в topic-exchange.
// Ключ маршрутизации: "<тип>.<merchantId>", например "slot.booked.42".
type Forwarder struct {
	publisher Publisher
	timeout   time.Duration
	logger    Logger
}

// NewForwarder создает пересыльщик событий; timeout <= 0 заменяется на DefaultPublishTimeout
func NewForwarder(publisher Publisher, timeout time.Duration, logger Logger) *Forwarder {
	if timeout <= 0 {
		timeout = DefaultPublishTimeout
	}
	return &Forwarder{
		publisher: publisher,
		timeout:   timeout,
		logger:    logger,
	}
}

// Notify публикует событие; ошибка публикации только логируется
func (f *Forwarder) Notify(ctx context.Context, event domain.SlotEvent) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), f.timeout)
	defer cancel()

	key := RoutingKey(event)
	if err := f.publisher.PublishJSON(ctx, key, event); err != nil {
		f.logger.Warn("feed.Forwarder: failed to publish event %s with key=%s: %v", event.ID, key, err)
	}
}

// RoutingKey возвращает ключ маршрутизации события
func RoutingKey(event domain.SlotEvent) string {
	return fmt.Sprintf("%s.%d", event.Type, event.MerchantID)
}
