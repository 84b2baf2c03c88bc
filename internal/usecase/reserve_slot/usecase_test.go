package reserve_slot_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SlotService/internal/domain"
	"github.com/m04kA/SMC-SlotService/internal/infra/storage/slot"
	"github.com/m04kA/SMC-SlotService/internal/testfixtures"
	"github.com/m04kA/SMC-SlotService/internal/usecase/reserve_slot"
	"github.com/m04kA/SMC-SlotService/pkg/metrics"
	"github.com/m04kA/SMC-SlotService/pkg/ptr"
	"github.com/m04kA/SMC-SlotService/pkg/types"
)

const merchantID int64 = 3

type outcomes struct {
	mu     sync.Mutex
	counts map[string]int
}

func (o *outcomes) ObserveReservation(result string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.counts == nil {
		o.counts = make(map[string]int)
	}
	o.counts[result]++
}

func setup(t *testing.T) (*reserve_slot.UseCase, []*domain.Slot, *outcomes) {
	t.Helper()
	fx := testfixtures.NewSQLite(t)
	repo := slot.NewRepository(fx.DB, fx.Builder)

	created, err := repo.CreateMany(context.Background(), []*domain.Slot{
		{MerchantID: merchantID, Date: "2025-10-15", StartTime: "09:00", EndTime: "09:30"},
		{MerchantID: merchantID, Date: "2025-10-15", StartTime: "09:00", EndTime: "10:00"},
		{MerchantID: merchantID, Date: "2025-10-15", StartTime: "09:30", EndTime: "10:00"},
	})
	require.NoError(t, err)

	o := &outcomes{}
	return reserve_slot.NewUseCase(repo, o, &testfixtures.Logger{}), created, o
}

func TestReserveSlot_SuccessThenAlreadyBooked(t *testing.T) {
	ctx := context.Background()
	uc, slots, o := setup(t)

	resp, err := uc.Execute(ctx, &reserve_slot.Request{SlotID: slots[0].ID, UserID: 100})
	require.NoError(t, err)
	assert.True(t, resp.Slot.IsBooked)
	assert.Equal(t, slots[0].ID, resp.Slot.ID)
	assert.True(t, resp.Slot.IsReservedBy(100))

	_, err = uc.Execute(ctx, &reserve_slot.Request{SlotID: slots[0].ID, UserID: 101})
	assert.ErrorIs(t, err, reserve_slot.ErrSlotAlreadyBooked)

	_, err = uc.Execute(ctx, &reserve_slot.Request{SlotID: slots[2].ID + 100, UserID: 101})
	assert.ErrorIs(t, err, reserve_slot.ErrSlotNotFound)

	_, err = uc.Execute(ctx, &reserve_slot.Request{SlotID: 0})
	assert.ErrorIs(t, err, reserve_slot.ErrInvalidInput)

	_, err = uc.Execute(ctx, &reserve_slot.Request{SlotID: slots[1].ID})
	assert.ErrorIs(t, err, reserve_slot.ErrInvalidInput, "user id is required")

	assert.Equal(t, 1, o.counts[metrics.ReservationSuccess])
	assert.Equal(t, 1, o.counts[metrics.ReservationAlreadyBooked])
	assert.Equal(t, 1, o.counts[metrics.ReservationNotFound])
}

func TestReserveSlot_NoDoubleBooking(t *testing.T) {
	ctx := context.Background()
	uc, slots, o := setup(t)
	id := slots[1].ID

	const customers = 20
	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		success int
		booked  int
		other   []error
	)

	for i := 0; i < customers; i++ {
		wg.Add(1)
		go func(user int64) {
			defer wg.Done()
			_, err := uc.Execute(ctx, &reserve_slot.Request{SlotID: id, UserID: user})

			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				success++
			case errors.Is(err, reserve_slot.ErrSlotAlreadyBooked):
				booked++
			default:
				other = append(other, err)
			}
		}(int64(1000 + i))
	}
	wg.Wait()

	assert.Empty(t, other)
	assert.Equal(t, 1, success)
	assert.Equal(t, customers-1, booked)
	assert.Equal(t, customers-1, o.counts[metrics.ReservationAlreadyBooked])
}

func TestCheckAvailability(t *testing.T) {
	ctx := context.Background()
	uc, slots, _ := setup(t)

	check := &reserve_slot.CheckRequest{MerchantID: merchantID, Date: "2025-10-15", StartTime: "09:00"}
	resp, err := uc.CheckAvailability(ctx, check)
	require.NoError(t, err)
	require.True(t, resp.Available)
	require.NotNil(t, resp.SlotID)
	assert.Equal(t, slots[0].ID, *resp.SlotID)

	// Уточнение концом диапазона выбирает часовой слот
	check.EndTime = ptr.Ptr(types.TimeString("10:00"))
	resp, err = uc.CheckAvailability(ctx, check)
	require.NoError(t, err)
	require.True(t, resp.Available)
	assert.Equal(t, slots[1].ID, *resp.SlotID)

	_, err = uc.Execute(ctx, &reserve_slot.Request{SlotID: slots[1].ID, UserID: 1})
	require.NoError(t, err)

	resp, err = uc.CheckAvailability(ctx, check)
	require.NoError(t, err)
	assert.False(t, resp.Available)
	assert.Nil(t, resp.SlotID)

	_, err = uc.CheckAvailability(ctx, &reserve_slot.CheckRequest{MerchantID: merchantID, Date: "2025-10-15", StartTime: "10:00", EndTime: ptr.Ptr(types.TimeString("09:00"))})
	assert.ErrorIs(t, err, reserve_slot.ErrInvalidInput)
}

type brokenStore struct{}

func (brokenStore) GetByID(context.Context, int64) (*domain.Slot, error) {
	return nil, errors.New("io timeout")
}

func (brokenStore) GetByFilter(context.Context, domain.SlotsFilter) ([]*domain.Slot, error) {
	return nil, errors.New("io timeout")
}

func (brokenStore) MarkBooked(context.Context, int64, int64) (*domain.Slot, error) {
	return nil, errors.New("io timeout")
}

func TestReserveSlot_StoreUnavailable(t *testing.T) {
	o := &outcomes{}
	uc := reserve_slot.NewUseCase(brokenStore{}, o, &testfixtures.Logger{})

	_, err := uc.Execute(context.Background(), &reserve_slot.Request{SlotID: 1, UserID: 1})
	assert.ErrorIs(t, err, reserve_slot.ErrStoreUnavailable)
	assert.Equal(t, 1, o.counts[metrics.ReservationError])

	_, err = uc.CheckAvailability(context.Background(), &reserve_slot.CheckRequest{MerchantID: merchantID, Date: "2025-10-15", StartTime: "09:00"})
	assert.ErrorIs(t, err, reserve_slot.ErrStoreUnavailable)
}
