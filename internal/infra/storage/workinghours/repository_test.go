package workinghours_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SlotService/internal/domain"
	"github.com/m04kA/SMC-SlotService/internal/infra/storage/workinghours"
	"github.com/m04kA/SMC-SlotService/internal/testfixtures"
)

func TestRepository_Upsert(t *testing.T) {
	ctx := context.Background()
	fx := testfixtures.NewSQLite(t)
	repo := workinghours.NewRepository(fx.DB, fx.Builder)

	_, err := repo.GetByMerchantID(ctx, 9)
	require.ErrorIs(t, err, workinghours.ErrWorkingHoursNotFound)

	created, err := repo.Upsert(ctx, &domain.WorkingHours{MerchantID: 9, StartTime: "10:00", EndTime: "18:00", StepMinutes: 30})
	require.NoError(t, err)
	assert.Equal(t, "10:00", created.StartTime.String())
	assert.False(t, created.CreatedAt.IsZero())

	updated, err := repo.Upsert(ctx, &domain.WorkingHours{MerchantID: 9, StartTime: "08:00", EndTime: "19:00", StepMinutes: 15})
	require.NoError(t, err)
	assert.Equal(t, "08:00", updated.StartTime.String())
	assert.Equal(t, "19:00", updated.EndTime.String())
	assert.Equal(t, 15, updated.StepMinutes)
	assert.Equal(t, 660, updated.LengthMinutes())
}
