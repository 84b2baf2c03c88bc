package workinghours_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SlotService/internal/domain"
	hoursRepo "github.com/m04kA/SMC-SlotService/internal/infra/storage/workinghours"
	"github.com/m04kA/SMC-SlotService/internal/service/workinghours"
	"github.com/m04kA/SMC-SlotService/internal/testfixtures"
	"github.com/m04kA/SMC-SlotService/pkg/types"
)

const merchantID int64 = 31

var defaults = domain.WorkingHours{StartTime: "09:00", EndTime: "17:00", StepMinutes: 30}

func newService(t *testing.T) *workinghours.Service {
	t.Helper()
	fx := testfixtures.NewSQLite(t)
	return workinghours.NewService(hoursRepo.NewRepository(fx.DB, fx.Builder), defaults, &testfixtures.Logger{})
}

func TestGet_FallsBackToDefaults(t *testing.T) {
	svc := newService(t)

	hours, err := svc.Get(context.Background(), merchantID)
	require.NoError(t, err)
	assert.True(t, hours.IsDefault)
	assert.Equal(t, merchantID, hours.MerchantID)
	assert.Equal(t, types.TimeString("09:00"), hours.StartTime)
	assert.Equal(t, types.TimeString("17:00"), hours.EndTime)
	assert.Equal(t, 30, hours.StepMinutes)
}

func TestUpdate(t *testing.T) {
	ctx := context.Background()
	svc := newService(t)

	saved, err := svc.Update(ctx, &workinghours.UpdateRequest{
		UserID:     merchantID,
		MerchantID: merchantID,
		StartTime:  "8:00",
		EndTime:    "19:00",
	})
	require.NoError(t, err)
	assert.False(t, saved.IsDefault)
	assert.Equal(t, types.TimeString("08:00"), saved.StartTime)
	assert.Equal(t, 30, saved.StepMinutes)

	_, err = svc.Update(ctx, &workinghours.UpdateRequest{
		UserID:      merchantID,
		MerchantID:  merchantID,
		StartTime:   "10:00",
		EndTime:     "18:00",
		StepMinutes: 15,
	})
	require.NoError(t, err)

	got, err := svc.Get(ctx, merchantID)
	require.NoError(t, err)
	assert.False(t, got.IsDefault)
	assert.Equal(t, types.TimeString("10:00"), got.StartTime)
	assert.Equal(t, 15, got.StepMinutes)
}

func TestUpdate_Rejects(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	tests := []struct {
		name string
		req  workinghours.UpdateRequest
		want error
	}{
		{"foreign merchant", workinghours.UpdateRequest{UserID: 1, MerchantID: merchantID, StartTime: "09:00", EndTime: "17:00"}, workinghours.ErrAccessDenied},
		{"bad start", workinghours.UpdateRequest{UserID: merchantID, MerchantID: merchantID, StartTime: "nine", EndTime: "17:00"}, workinghours.ErrInvalidInput},
		{"start after end", workinghours.UpdateRequest{UserID: merchantID, MerchantID: merchantID, StartTime: "18:00", EndTime: "17:00"}, workinghours.ErrInvalidInput},
		{"step too small", workinghours.UpdateRequest{UserID: merchantID, MerchantID: merchantID, StartTime: "09:00", EndTime: "17:00", StepMinutes: 2}, workinghours.ErrInvalidInput},
		{"step too large", workinghours.UpdateRequest{UserID: merchantID, MerchantID: merchantID, StartTime: "09:00", EndTime: "17:00", StepMinutes: 300}, workinghours.ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Update(ctx, &tt.req)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}
