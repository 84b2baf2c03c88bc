package slot

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-SlotService/internal/domain"
	"github.com/m04kA/SMC-SlotService/internal/infra/storage/dberrors"
	"github.com/m04kA/SMC-SlotService/pkg/dbmetrics"
	"github.com/m04kA/SMC-SlotService/pkg/psqlbuilder"
	"github.com/m04kA/SMC-SlotService/pkg/types"
)

var slotColumns = []string{
	"id",
	"merchant_id",
	"slot_date",
	"start_time",
	"end_time",
	"is_booked",
	"reserved_by",
	"service_duration",
	"created_at",
	"updated_at",
}

var returningSlot = "RETURNING " + strings.Join(slotColumns, ", ")

// Repository репозиторий для работы со слотами
type Repository struct {
	db      DBExecutor
	builder psqlbuilder.Builder
}

// NewRepository создает новый экземпляр репозитория слотов
func NewRepository(db DBExecutor, builder psqlbuilder.Builder) *Repository {
	return &Repository{db: db, builder: builder}
}

// GetByFilter возвращает слоты мастера, упорядоченные по дате, времени начала и окончания
func (r *Repository) GetByFilter(ctx context.Context, filter domain.SlotsFilter) ([]*domain.Slot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := r.builder.Select(slotColumns...).
		From("slots").
		Where(squirrel.Eq{"merchant_id": filter.MerchantID}).
		OrderBy("slot_date ASC", "start_time ASC", "end_time ASC")

	if filter.StartDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"slot_date": *filter.StartDate})
	}
	if filter.EndDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"slot_date": *filter.EndDate})
	}
	if filter.StartTime != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"start_time": *filter.StartTime})
	}
	if filter.EndTime != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"end_time": *filter.EndTime})
	}
	if filter.OnlyAvailable {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"is_booked": false})
	}
	if filter.Limit > 0 {
		selectBuilder = selectBuilder.Limit(filter.Limit)
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByFilter - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanSlots(rows)
}

// GetByID получает слот по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Slot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := r.builder.Select(slotColumns...).
		From("slots").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	slot, err := scanSlot(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSlotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan slot: %v", ErrScanRow, err)
	}

	return slot, nil
}

// CreateMany вставляет слоты одним запросом и возвращает их с присвоенными ID.
// Вставка атомарна: если хотя бы один диапазон уже существует для (merchant_id, slot_date),
// не вставляется ничего и возвращается ErrSlotsAlreadyExist.
func (r *Repository) CreateMany(ctx context.Context, slots []*domain.Slot) ([]*domain.Slot, error) {
	if len(slots) == 0 {
		return []*domain.Slot{}, nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)
	now := time.Now().UTC()

	insertBuilder := r.builder.Insert("slots").
		Columns(
			"merchant_id",
			"slot_date",
			"start_time",
			"end_time",
			"is_booked",
			"service_duration",
			"created_at",
			"updated_at",
		).
		Suffix(returningSlot)

	for _, s := range slots {
		insertBuilder = insertBuilder.Values(
			s.MerchantID,
			s.Date,
			s.StartTime,
			s.EndTime,
			s.IsBooked,
			s.ServiceDuration,
			now,
			now,
		)
	}

	query, args, err := insertBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: CreateMany - build insert query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, r.wrapInsertError(err)
	}
	defer rows.Close()

	created, err := scanSlots(rows)
	if err != nil {
		return nil, r.wrapInsertError(err)
	}

	// Порядок строк RETURNING не гарантирован, восстанавливаем хронологический
	sort.SliceStable(created, func(i, j int) bool {
		if created[i].StartTime != created[j].StartTime {
			return created[i].StartTime < created[j].StartTime
		}
		return created[i].EndTime < created[j].EndTime
	})

	return created, nil
}

// MarkBooked атомарно переводит слот из свободного в занятый и запоминает клиента.
// Единственный запрос UPDATE ... WHERE id = ? AND is_booked = false: из конкурентных вызовов
// строку изменит ровно один. Если условие не выполнилось, возвращается ErrSlotNotAvailable.
func (r *Repository) MarkBooked(ctx context.Context, id int64, customerID int64) (*domain.Slot, error) {
	return r.switchBooked(ctx, "MarkBooked", id, false, true, customerID)
}

// MarkAvailable атомарно освобождает занятый слот (используется при отмене бронирования)
func (r *Repository) MarkAvailable(ctx context.Context, id int64) (*domain.Slot, error) {
	return r.switchBooked(ctx, "MarkAvailable", id, true, false, nil)
}

func (r *Repository) switchBooked(ctx context.Context, op string, id int64, from, to bool, reservedBy interface{}) (*domain.Slot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := r.builder.Update("slots").
		Set("is_booked", to).
		Set("reserved_by", reservedBy).
		Set("updated_at", time.Now().UTC()).
		Where(squirrel.Eq{"id": id, "is_booked": from}).
		Suffix(returningSlot).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build update query: %v", ErrBuildQuery, op, err)
	}

	slot, err := scanSlot(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSlotNotAvailable
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute update: %v", ErrExecQuery, op, err)
	}

	return slot, nil
}

func (r *Repository) wrapInsertError(err error) error {
	if dberrors.IsUniqueViolation(err) {
		return fmt.Errorf("%w: CreateMany - %v", ErrSlotsAlreadyExist, err)
	}
	return fmt.Errorf("%w: CreateMany - execute insert: %v", ErrExecQuery, err)
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanSlot(row rowScanner) (*domain.Slot, error) {
	var (
		slot                 domain.Slot
		reservedBy           sql.NullInt64
		serviceDuration      sql.NullInt64
		createdAt, updatedAt types.Timestamp
	)

	err := row.Scan(
		&slot.ID,
		&slot.MerchantID,
		&slot.Date,
		&slot.StartTime,
		&slot.EndTime,
		&slot.IsBooked,
		&reservedBy,
		&serviceDuration,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if reservedBy.Valid {
		customerID := reservedBy.Int64
		slot.ReservedBy = &customerID
	}
	if serviceDuration.Valid {
		d := int(serviceDuration.Int64)
		slot.ServiceDuration = &d
	}
	slot.CreatedAt = createdAt.Time
	slot.UpdatedAt = updatedAt.Time

	return &slot, nil
}

func scanSlots(rows *sql.Rows) ([]*domain.Slot, error) {
	slots := make([]*domain.Slot, 0)
	for rows.Next() {
		slot, err := scanSlot(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scan slot: %w", ErrScanRow, err)
		}
		slots = append(slots, slot)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterate slots: %w", ErrExecQuery, err)
	}
	return slots, nil
}
