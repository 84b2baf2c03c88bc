package get_available_slots_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SlotService/internal/domain"
	"github.com/m04kA/SMC-SlotService/internal/infra/storage/slot"
	hoursRepo "github.com/m04kA/SMC-SlotService/internal/infra/storage/workinghours"
	"github.com/m04kA/SMC-SlotService/internal/service/availability"
	"github.com/m04kA/SMC-SlotService/internal/service/workinghours"
	"github.com/m04kA/SMC-SlotService/internal/testfixtures"
	"github.com/m04kA/SMC-SlotService/internal/usecase/ensure_slots"
	"github.com/m04kA/SMC-SlotService/internal/usecase/get_available_slots"
)

const merchantID int64 = 5

func newUseCase(t *testing.T) (*get_available_slots.UseCase, *slot.Repository, *workinghours.Service) {
	t.Helper()
	fx := testfixtures.NewSQLite(t)
	logger := &testfixtures.Logger{}
	slots := slot.NewRepository(fx.DB, fx.Builder)
	hours := workinghours.NewService(
		hoursRepo.NewRepository(fx.DB, fx.Builder),
		domain.WorkingHours{StartTime: "09:00", EndTime: "11:00", StepMinutes: 30},
		logger,
	)

	uc := get_available_slots.NewUseCase(
		ensure_slots.NewUseCase(slots, hours, nil, 30, logger),
		availability.NewService(slots, nil, logger),
		logger,
	)
	return uc, slots, hours
}

func TestGetAvailableSlots_GeneratesOnFirstRequest(t *testing.T) {
	ctx := context.Background()
	uc, slots, _ := newUseCase(t)

	resp, err := uc.Execute(ctx, &get_available_slots.Request{MerchantID: merchantID, Date: "2025-10-15", GroupByHour: true})
	require.NoError(t, err)
	require.Len(t, resp.Slots, 4)
	assert.Equal(t, "09:00-09:30", resp.Slots[0].RangeKey())

	require.Len(t, resp.Groups, 2)
	assert.Equal(t, "9 AM", resp.Groups[0].DisplayLabel)
	assert.Len(t, resp.Groups[1].Slots, 2)

	_, err = slots.MarkBooked(ctx, resp.Slots[1].ID, 501)
	require.NoError(t, err)

	again, err := uc.Execute(ctx, &get_available_slots.Request{MerchantID: merchantID, Date: "2025-10-15"})
	require.NoError(t, err)
	assert.Len(t, again.Slots, 3)
	assert.Nil(t, again.Groups)
}

func TestGetAvailableSlots_UsesMerchantWorkingHours(t *testing.T) {
	ctx := context.Background()
	uc, _, hours := newUseCase(t)

	_, err := hours.Update(ctx, &workinghours.UpdateRequest{UserID: merchantID, MerchantID: merchantID, StartTime: "14:00", EndTime: "15:00", StepMinutes: 60})
	require.NoError(t, err)

	resp, err := uc.Execute(ctx, &get_available_slots.Request{MerchantID: merchantID, Date: "2025-10-15", ServiceDurations: []int{60}})
	require.NoError(t, err)
	require.Len(t, resp.Slots, 1)
	assert.Equal(t, "14:00-15:00", resp.Slots[0].RangeKey())
}

func TestGetAvailableSlots_Errors(t *testing.T) {
	uc, _, _ := newUseCase(t)
	ctx := context.Background()

	_, err := uc.Execute(ctx, &get_available_slots.Request{MerchantID: merchantID, Date: "2025-10-15", ServiceDurations: []int{-30}})
	assert.ErrorIs(t, err, get_available_slots.ErrInvalidDurationSet)

	_, err = uc.Execute(ctx, &get_available_slots.Request{MerchantID: merchantID, Date: "not-a-date"})
	assert.ErrorIs(t, err, get_available_slots.ErrInvalidInput)
}
