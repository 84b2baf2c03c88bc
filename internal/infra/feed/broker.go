package feed

import (
	"context"
	"sync"

	"github.com/m04kA/SMC-SlotService/internal/domain"
)

// DefaultSubscriberBuffer размер буфера канала подписчика по умолчанию
const DefaultSubscriberBuffer = 64

type subscription struct {
	filter domain.SlotEventFilter
	ch     chan domain.SlotEvent
}

// Broker рассылает события слотов подписчикам внутри процесса
type Broker struct {
	mu     sync.RWMutex
	subs   map[uint64]*subscription
	nextID uint64
	buffer int
	logger Logger
}

// NewBroker создает брокер; buffer <= 0 заменяется на DefaultSubscriberBuffer
func NewBroker(buffer int, logger Logger) *Broker {
	if buffer <= 0 {
		buffer = DefaultSubscriberBuffer
	}
	return &Broker{
		subs:   make(map[uint64]*subscription),
		buffer: buffer,
		logger: logger,
	}
}

// Subscribe возвращает бесконечный поток событий, подходящих под filter.
// Канал закрывается после отмены ctx.
func (b *Broker) Subscribe(ctx context.Context, filter domain.SlotEventFilter) <-chan domain.SlotEvent {
	sub := &subscription{
		filter: filter,
		ch:     make(chan domain.SlotEvent, b.buffer),
	}

	b.mu.Lock()
	id := b.nextID
	b.nextID++
	b.subs[id] = sub
	b.mu.Unlock()

	go func() {
		<-ctx.Done()

		b.mu.Lock()
		delete(b.subs, id)
		close(sub.ch)
		b.mu.Unlock()
	}()

	return sub.ch
}

// Notify рассылает событие без блокировки: если буфер подписчика полон, событие для него теряется
func (b *Broker) Notify(_ context.Context, event domain.SlotEvent) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for id, sub := range b.subs {
		if !sub.filter.Matches(event) {
			continue
		}
		select {
		case sub.ch <- event:
		default:
			b.logger.Warn("feed.Broker: subscriber %d is slow, dropped event %s (%s)", id, event.ID, event.Type)
		}
	}
}

// SubscriberCount возвращает число активных подписок
func (b *Broker) SubscriberCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs)
}
