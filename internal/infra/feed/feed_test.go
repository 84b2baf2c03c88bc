package feed_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SlotService/internal/domain"
	"github.com/m04kA/SMC-SlotService/internal/infra/feed"
	"github.com/m04kA/SMC-SlotService/internal/infra/storage/slot"
	"github.com/m04kA/SMC-SlotService/internal/testfixtures"
	"github.com/m04kA/SMC-SlotService/pkg/txmanager"
	"github.com/m04kA/SMC-SlotService/pkg/types"
)

const merchantID int64 = 42

type recorder struct {
	mu     sync.Mutex
	events []domain.SlotEvent
}

func (r *recorder) Notify(_ context.Context, event domain.SlotEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
}

func (r *recorder) Events() []domain.SlotEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]domain.SlotEvent(nil), r.events...)
}

func event(eventType domain.SlotEventType, merchant int64, date types.Date) domain.SlotEvent {
	return domain.SlotEvent{ID: "e", Type: eventType, MerchantID: merchant, Date: date}
}

func TestBroker_SubscribeFilterAndClose(t *testing.T) {
	broker := feed.NewBroker(4, &testfixtures.Logger{})
	ctx, cancel := context.WithCancel(context.Background())

	ch := broker.Subscribe(ctx, domain.SlotEventFilter{MerchantID: merchantID, Date: "2025-10-15"})
	require.Equal(t, 1, broker.SubscriberCount())

	broker.Notify(ctx, event(domain.SlotBooked, merchantID+1, "2025-10-15"))
	broker.Notify(ctx, event(domain.SlotBooked, merchantID, "2025-10-16"))
	broker.Notify(ctx, event(domain.SlotBooked, merchantID, "2025-10-15"))

	select {
	case got := <-ch:
		assert.Equal(t, merchantID, got.MerchantID)
		assert.Equal(t, types.Date("2025-10-15"), got.Date)
	case <-time.After(time.Second):
		t.Fatal("event was not delivered")
	}

	cancel()
	require.Eventually(t, func() bool { return broker.SubscriberCount() == 0 }, time.Second, 10*time.Millisecond)

	_, open := <-ch
	assert.False(t, open)
}

func TestBroker_SlowSubscriberDropsEvents(t *testing.T) {
	logger := &testfixtures.Logger{}
	broker := feed.NewBroker(1, logger)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch := broker.Subscribe(ctx, domain.SlotEventFilter{})

	broker.Notify(ctx, event(domain.SlotCreated, merchantID, "2025-10-15"))
	broker.Notify(ctx, event(domain.SlotBooked, merchantID, "2025-10-15"))

	got := <-ch
	assert.Equal(t, domain.SlotCreated, got.Type)
	assert.Len(t, logger.Messages(), 1)
}

func TestNotifyingStore_EmitsAfterMutations(t *testing.T) {
	ctx := context.Background()
	fx := testfixtures.NewSQLite(t)
	rec := &recorder{}
	start := time.Date(2025, 10, 15, 8, 0, 0, 0, time.UTC)
	clock := testfixtures.NewClock(start)
	store := feed.NewNotifyingStore(slot.NewRepository(fx.DB, fx.Builder), rec).WithClock(clock)

	created, err := store.CreateMany(ctx, []*domain.Slot{
		{MerchantID: merchantID, Date: "2025-10-15", StartTime: "09:00", EndTime: "09:30"},
		{MerchantID: merchantID, Date: "2025-10-15", StartTime: "09:30", EndTime: "10:00"},
	})
	require.NoError(t, err)

	clock.Advance(5 * time.Minute)
	_, err = store.MarkBooked(ctx, created[0].ID, 501)
	require.NoError(t, err)

	// Неудачная мутация событий не порождает
	_, err = store.MarkBooked(ctx, created[0].ID, 501)
	require.ErrorIs(t, err, slot.ErrSlotNotAvailable)

	_, err = store.MarkAvailable(ctx, created[0].ID)
	require.NoError(t, err)

	events := rec.Events()
	require.Len(t, events, 4)
	assert.Equal(t, domain.SlotCreated, events[0].Type)
	assert.Equal(t, domain.SlotCreated, events[1].Type)
	assert.Equal(t, domain.SlotBooked, events[2].Type)
	assert.True(t, events[2].Slot.IsBooked)
	assert.Equal(t, domain.SlotReleased, events[3].Type)
	assert.False(t, events[3].Slot.IsBooked)
	assert.NotEqual(t, events[0].ID, events[1].ID)
	assert.Equal(t, merchantID, events[2].MerchantID)
	assert.Equal(t, created[0].ID, events[2].Slot.ID)
	assert.Equal(t, start, events[0].OccurredAt)
	assert.Equal(t, start, events[1].OccurredAt, "one batch shares a timestamp")
	assert.Equal(t, start.Add(5*time.Minute), events[2].OccurredAt)
}

func TestNotifyingStore_TransactionRollbackSuppressesEvents(t *testing.T) {
	ctx := context.Background()
	fx := testfixtures.NewSQLite(t)
	rec := &recorder{}
	store := feed.NewNotifyingStore(slot.NewRepository(fx.DB, fx.Builder), rec)
	tm := txmanager.NewTransactionManager(fx.DB)

	created, err := store.CreateMany(ctx, []*domain.Slot{
		{MerchantID: merchantID, Date: "2025-10-15", StartTime: "09:00", EndTime: "09:30"},
	})
	require.NoError(t, err)
	id := created[0].ID

	errAbort := errors.New("abort")
	err = tm.Do(ctx, func(txCtx context.Context) error {
		if _, err := store.MarkBooked(txCtx, id, 501); err != nil {
			return err
		}
		assert.Len(t, rec.Events(), 1, "event must wait for commit")
		return errAbort
	})
	require.ErrorIs(t, err, errAbort)
	assert.Len(t, rec.Events(), 1)

	err = tm.Do(ctx, func(txCtx context.Context) error {
		_, err := store.MarkBooked(txCtx, id, 501)
		return err
	})
	require.NoError(t, err)

	events := rec.Events()
	require.Len(t, events, 2)
	assert.Equal(t, domain.SlotBooked, events[1].Type)
}

type stubPublisher struct {
	keys []string
	err  error
}

func (p *stubPublisher) PublishJSON(_ context.Context, key string, _ any) error {
	p.keys = append(p.keys, key)
	return p.err
}

func TestForwarder_Notify(t *testing.T) {
	publisher := &stubPublisher{}
	logger := &testfixtures.Logger{}
	forwarder := feed.NewForwarder(publisher, 0, logger)

	forwarder.Notify(context.Background(), event(domain.SlotBooked, merchantID, "2025-10-15"))
	assert.Equal(t, []string{"slot.booked.42"}, publisher.keys)
	assert.Empty(t, logger.Messages())

	publisher.err = errors.New("connection closed")
	forwarder.Notify(context.Background(), event(domain.SlotReleased, merchantID, "2025-10-15"))
	assert.Len(t, logger.Messages(), 1)
}

func TestNotifiers_FanOut(t *testing.T) {
	first, second := &recorder{}, &recorder{}
	feed.Notifiers{first, nil, second}.Notify(context.Background(), event(domain.SlotCreated, merchantID, "2025-10-15"))

	assert.Len(t, first.Events(), 1)
	assert.Len(t, second.Events(), 1)
}
