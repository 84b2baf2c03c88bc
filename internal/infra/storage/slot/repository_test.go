package slot_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SlotService/internal/domain"
	"github.com/m04kA/SMC-SlotService/internal/infra/storage/slot"
	"github.com/m04kA/SMC-SlotService/internal/testfixtures"
	"github.com/m04kA/SMC-SlotService/pkg/ptr"
	"github.com/m04kA/SMC-SlotService/pkg/types"
)

const merchantID int64 = 501

func newRepo(t *testing.T) *slot.Repository {
	t.Helper()
	fx := testfixtures.NewSQLite(t)
	return slot.NewRepository(fx.DB, fx.Builder)
}

func newSlot(date types.Date, start, end string) *domain.Slot {
	return &domain.Slot{
		MerchantID:      merchantID,
		Date:            date,
		StartTime:       types.TimeString(start),
		EndTime:         types.TimeString(end),
		ServiceDuration: ptr.Ptr(types.TimeString(end).Minutes() - types.TimeString(start).Minutes()),
	}
}

func TestRepository_CreateManyAndGetByFilter(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t)
	date := types.Date("2025-10-15")

	created, err := repo.CreateMany(ctx, []*domain.Slot{
		newSlot(date, "10:00", "10:30"),
		newSlot(date, "09:00", "10:00"),
		newSlot(date, "09:00", "09:30"),
	})
	require.NoError(t, err)
	require.Len(t, created, 3)

	assert.Equal(t, "09:00-09:30", created[0].RangeKey())
	assert.Equal(t, "09:00-10:00", created[1].RangeKey())
	assert.Equal(t, "10:00-10:30", created[2].RangeKey())
	for _, s := range created {
		assert.NotZero(t, s.ID)
		assert.False(t, s.IsBooked)
		assert.Equal(t, date, s.Date)
		assert.False(t, s.CreatedAt.IsZero())
	}
	require.NotNil(t, created[1].ServiceDuration)
	assert.Equal(t, 60, *created[1].ServiceDuration)

	got, err := repo.GetByFilter(ctx, domain.ForDate(merchantID, date))
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, created[0].ID, got[0].ID)

	other, err := repo.GetByFilter(ctx, domain.ForDate(merchantID+1, date))
	require.NoError(t, err)
	assert.Empty(t, other)
}

func TestRepository_CreateMany_DuplicateRange(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t)
	date := types.Date("2025-10-15")

	_, err := repo.CreateMany(ctx, []*domain.Slot{newSlot(date, "09:00", "09:30")})
	require.NoError(t, err)

	_, err = repo.CreateMany(ctx, []*domain.Slot{
		newSlot(date, "09:30", "10:00"),
		newSlot(date, "09:00", "09:30"),
	})
	require.ErrorIs(t, err, slot.ErrSlotsAlreadyExist)

	// Вставка атомарна: 09:30-10:00 тоже не должен появиться
	got, err := repo.GetByFilter(ctx, domain.ForDate(merchantID, date))
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestRepository_GetByFilter_RangeAndAvailability(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t)

	_, err := repo.CreateMany(ctx, []*domain.Slot{
		newSlot("2025-10-14", "09:00", "09:30"),
		newSlot("2025-10-15", "09:00", "09:30"),
		newSlot("2025-10-15", "09:30", "10:00"),
		newSlot("2025-10-16", "09:00", "09:30"),
	})
	require.NoError(t, err)

	from, to := types.Date("2025-10-15"), types.Date("2025-10-16")
	ranged, err := repo.GetByFilter(ctx, domain.SlotsFilter{MerchantID: merchantID, StartDate: &from, EndDate: &to})
	require.NoError(t, err)
	require.Len(t, ranged, 3)
	assert.Equal(t, types.Date("2025-10-15"), ranged[0].Date)
	assert.Equal(t, types.Date("2025-10-16"), ranged[2].Date)

	_, err = repo.MarkBooked(ctx, ranged[0].ID, 501)
	require.NoError(t, err)

	available, err := repo.GetByFilter(ctx, domain.SlotsFilter{
		MerchantID:    merchantID,
		StartDate:     &from,
		EndDate:       &from,
		OnlyAvailable: true,
	})
	require.NoError(t, err)
	require.Len(t, available, 1)
	assert.Equal(t, types.TimeString("09:30"), available[0].StartTime)

	byTime, err := repo.GetByFilter(ctx, domain.SlotsFilter{
		MerchantID: merchantID,
		StartDate:  &to,
		EndDate:    &to,
		StartTime:  ptr.Ptr(types.TimeString("09:00")),
		Limit:      1,
	})
	require.NoError(t, err)
	require.Len(t, byTime, 1)
	assert.Equal(t, to, byTime[0].Date)
}

func TestRepository_MarkBookedAndAvailable(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t)

	created, err := repo.CreateMany(ctx, []*domain.Slot{newSlot("2025-10-15", "09:00", "09:30")})
	require.NoError(t, err)
	id := created[0].ID

	booked, err := repo.MarkBooked(ctx, id, 501)
	require.NoError(t, err)
	assert.True(t, booked.IsBooked)
	require.NotNil(t, booked.ReservedBy)
	assert.Equal(t, int64(501), *booked.ReservedBy)
	assert.True(t, booked.IsReservedBy(501))
	assert.False(t, booked.IsReservedBy(502))

	// Неудачная попытка не перезаписывает клиента
	_, err = repo.MarkBooked(ctx, id, 502)
	assert.ErrorIs(t, err, slot.ErrSlotNotAvailable)

	stored, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	assert.True(t, stored.IsReservedBy(501))

	released, err := repo.MarkAvailable(ctx, id)
	require.NoError(t, err)
	assert.False(t, released.IsBooked)
	assert.Nil(t, released.ReservedBy)

	_, err = repo.MarkAvailable(ctx, id)
	assert.ErrorIs(t, err, slot.ErrSlotNotAvailable)

	_, err = repo.MarkBooked(ctx, id+1000, 501)
	assert.ErrorIs(t, err, slot.ErrSlotNotAvailable)

	_, err = repo.GetByID(ctx, id+1000)
	assert.ErrorIs(t, err, slot.ErrSlotNotFound)
}

func TestRepository_MarkBooked_Concurrent(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t)

	created, err := repo.CreateMany(ctx, []*domain.Slot{newSlot("2025-10-15", "09:00", "09:30")})
	require.NoError(t, err)
	id := created[0].ID

	const workers = 16
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		winners   int
		conflicts int
	)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(customerID int64) {
			defer wg.Done()
			_, err := repo.MarkBooked(ctx, id, customerID)

			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				winners++
			case assert.ErrorIs(t, err, slot.ErrSlotNotAvailable):
				conflicts++
			}
		}(int64(500 + i))
	}
	wg.Wait()

	assert.Equal(t, 1, winners)
	assert.Equal(t, workers-1, conflicts)
}
