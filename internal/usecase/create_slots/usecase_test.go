package create_slots_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SlotService/internal/domain"
	"github.com/m04kA/SMC-SlotService/internal/infra/storage/slot"
	"github.com/m04kA/SMC-SlotService/internal/testfixtures"
	"github.com/m04kA/SMC-SlotService/internal/usecase/create_slots"
)

const merchantID int64 = 12

func newUseCase(t *testing.T) (*create_slots.UseCase, *slot.Repository) {
	t.Helper()
	fx := testfixtures.NewSQLite(t)
	repo := slot.NewRepository(fx.DB, fx.Builder)
	return create_slots.NewUseCase(repo, nil, &testfixtures.Logger{}), repo
}

func TestCreateSlots(t *testing.T) {
	ctx := context.Background()
	uc, repo := newUseCase(t)

	resp, err := uc.Execute(ctx, &create_slots.Request{
		UserID:     merchantID,
		MerchantID: merchantID,
		Date:       "2025-10-20",
		Ranges: []domain.TimeRange{
			{StartTime: "14:00", EndTime: "15:30"},
			{StartTime: "10:00", EndTime: "10:45"},
			{StartTime: "14:00", EndTime: "15:30"},
		},
	})
	require.NoError(t, err)
	require.Len(t, resp.Slots, 2)
	assert.Equal(t, "10:00-10:45", resp.Slots[0].RangeKey())
	require.NotNil(t, resp.Slots[1].ServiceDuration)
	assert.Equal(t, 90, *resp.Slots[1].ServiceDuration)

	stored, err := repo.GetByFilter(ctx, domain.ForDate(merchantID, "2025-10-20"))
	require.NoError(t, err)
	assert.Len(t, stored, 2)
}

func TestCreateSlots_Conflict(t *testing.T) {
	ctx := context.Background()
	uc, repo := newUseCase(t)
	req := &create_slots.Request{
		UserID:     merchantID,
		MerchantID: merchantID,
		Date:       "2025-10-20",
		Ranges:     []domain.TimeRange{{StartTime: "10:00", EndTime: "11:00"}},
	}

	_, err := uc.Execute(ctx, req)
	require.NoError(t, err)

	req.Ranges = append(req.Ranges, domain.TimeRange{StartTime: "11:00", EndTime: "12:00"})
	_, err = uc.Execute(ctx, req)
	require.ErrorIs(t, err, create_slots.ErrSlotConflict)

	stored, err := repo.GetByFilter(ctx, domain.ForDate(merchantID, "2025-10-20"))
	require.NoError(t, err)
	assert.Len(t, stored, 1)
}

func TestCreateSlots_Rejects(t *testing.T) {
	uc, _ := newUseCase(t)
	ctx := context.Background()

	tests := []struct {
		name string
		req  *create_slots.Request
		want error
	}{
		{
			name: "not the merchant",
			req:  &create_slots.Request{UserID: 1, MerchantID: merchantID, Date: "2025-10-20", Ranges: []domain.TimeRange{{StartTime: "10:00", EndTime: "11:00"}}},
			want: create_slots.ErrAccessDenied,
		},
		{
			name: "empty ranges",
			req:  &create_slots.Request{UserID: merchantID, MerchantID: merchantID, Date: "2025-10-20"},
			want: create_slots.ErrInvalidInput,
		},
		{
			name: "end before start",
			req:  &create_slots.Request{UserID: merchantID, MerchantID: merchantID, Date: "2025-10-20", Ranges: []domain.TimeRange{{StartTime: "11:00", EndTime: "10:00"}}},
			want: create_slots.ErrInvalidInput,
		},
		{
			name: "bad date",
			req:  &create_slots.Request{UserID: merchantID, MerchantID: merchantID, Date: "2025-13-01", Ranges: []domain.TimeRange{{StartTime: "10:00", EndTime: "11:00"}}},
			want: create_slots.ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(ctx, tt.req)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}
