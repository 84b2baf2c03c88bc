package workinghours

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-SlotService/internal/domain"
	"github.com/m04kA/SMC-SlotService/pkg/dbmetrics"
	"github.com/m04kA/SMC-SlotService/pkg/psqlbuilder"
	"github.com/m04kA/SMC-SlotService/pkg/types"
)

// Repository репозиторий рабочих часов мастеров
type Repository struct {
	db      dbmetrics.DBExecutor
	builder psqlbuilder.Builder
}

// NewRepository создает новый экземпляр репозитория рабочих часов
func NewRepository(db dbmetrics.DBExecutor, builder psqlbuilder.Builder) *Repository {
	return &Repository{db: db, builder: builder}
}

// GetByMerchantID получает рабочее окно мастера
func (r *Repository) GetByMerchantID(ctx context.Context, merchantID int64) (*domain.WorkingHours, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := r.builder.Select(
		"merchant_id",
		"start_time",
		"end_time",
		"step_minutes",
		"created_at",
		"updated_at",
	).
		From("merchant_working_hours").
		Where(squirrel.Eq{"merchant_id": merchantID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByMerchantID - build select query: %v", ErrBuildQuery, err)
	}

	var (
		hours                domain.WorkingHours
		createdAt, updatedAt types.Timestamp
	)
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&hours.MerchantID,
		&hours.StartTime,
		&hours.EndTime,
		&hours.StepMinutes,
		&createdAt,
		&updatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrWorkingHoursNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByMerchantID - scan working hours: %v", ErrScanRow, err)
	}

	hours.CreatedAt = createdAt.Time
	hours.UpdatedAt = updatedAt.Time

	return &hours, nil
}

// Upsert создает или обновляет рабочее окно мастера.
// ON CONFLICT ... DO UPDATE поддерживается и Postgres, и SQLite (3.24+).
func (r *Repository) Upsert(ctx context.Context, hours *domain.WorkingHours) (*domain.WorkingHours, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)
	now := time.Now().UTC()

	query, args, err := r.builder.Insert("merchant_working_hours").
		Columns(
			"merchant_id",
			"start_time",
			"end_time",
			"step_minutes",
			"created_at",
			"updated_at",
		).
		Values(
			hours.MerchantID,
			hours.StartTime,
			hours.EndTime,
			hours.StepMinutes,
			now,
			now,
		).
		Suffix("ON CONFLICT (merchant_id) DO UPDATE SET " +
			"start_time = excluded.start_time, " +
			"end_time = excluded.end_time, " +
			"step_minutes = excluded.step_minutes, " +
			"updated_at = excluded.updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return nil, fmt.Errorf("%w: Upsert - execute insert: %v", ErrExecQuery, err)
	}

	return r.GetByMerchantID(ctx, hours.MerchantID)
}
