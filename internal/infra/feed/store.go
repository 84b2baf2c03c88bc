package feed

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SlotService/internal/domain"
	"github.com/m04kA/SMC-SlotService/pkg/txmanager"
)

// NotifyingStore декоратор хранилища слотов: после успешной мутации отправляет события.
// Внутри транзакции события уходят только после коммита.
type NotifyingStore struct {
	store    SlotStore
	notifier Notifier
	clock    TimeProvider
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now().UTC()
}

// NewNotifyingStore оборачивает store
func NewNotifyingStore(store SlotStore, notifier Notifier) *NotifyingStore {
	return &NotifyingStore{
		store:    store,
		notifier: notifier,
		clock:    systemClock{},
	}
}

// WithClock подменяет источник времени событий
func (s *NotifyingStore) WithClock(clock TimeProvider) *NotifyingStore {
	s.clock = clock
	return s
}

func (s *NotifyingStore) GetByFilter(ctx context.Context, filter domain.SlotsFilter) ([]*domain.Slot, error) {
	return s.store.GetByFilter(ctx, filter)
}

func (s *NotifyingStore) GetByID(ctx context.Context, id int64) (*domain.Slot, error) {
	return s.store.GetByID(ctx, id)
}

func (s *NotifyingStore) CreateMany(ctx context.Context, slots []*domain.Slot) ([]*domain.Slot, error) {
	created, err := s.store.CreateMany(ctx, slots)
	if err != nil {
		return nil, err
	}
	s.emit(ctx, domain.SlotCreated, created...)
	return created, nil
}

func (s *NotifyingStore) MarkBooked(ctx context.Context, id int64, customerID int64) (*domain.Slot, error) {
	slot, err := s.store.MarkBooked(ctx, id, customerID)
	if err != nil {
		return nil, err
	}
	s.emit(ctx, domain.SlotBooked, slot)
	return slot, nil
}

func (s *NotifyingStore) MarkAvailable(ctx context.Context, id int64) (*domain.Slot, error) {
	slot, err := s.store.MarkAvailable(ctx, id)
	if err != nil {
		return nil, err
	}
	s.emit(ctx, domain.SlotReleased, slot)
	return slot, nil
}

func (s *NotifyingStore) emit(ctx context.Context, eventType domain.SlotEventType, slots ...*domain.Slot) {
	if s.notifier == nil || len(slots) == 0 {
		return
	}

	occurredAt := s.clock.Now()
	events := make([]domain.SlotEvent, 0, len(slots))
	for _, slot := range slots {
		events = append(events, newEvent(eventType, slot, occurredAt))
	}

	txmanager.RunAfterCommit(ctx, func() {
		for _, event := range events {
			s.notifier.Notify(ctx, event)
		}
	})
}

func newEvent(eventType domain.SlotEventType, slot *domain.Slot, occurredAt time.Time) domain.SlotEvent {
	return domain.SlotEvent{
		ID:         uuid.NewString(),
		Type:       eventType,
		MerchantID: slot.MerchantID,
		Date:       slot.Date,
		Slot: domain.SlotSnapshot{
			ID:        slot.ID,
			StartTime: slot.StartTime,
			EndTime:   slot.EndTime,
			IsBooked:  slot.IsBooked,
		},
		OccurredAt: occurredAt,
	}
}
