package create_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SlotService/internal/domain"
	slotRepo "github.com/m04kA/SMC-SlotService/internal/infra/storage/slot"
	"github.com/m04kA/SMC-SlotService/pkg/ptr"
)

const metricsSource = "manual"

// UseCase ручное создание слотов мастером
type UseCase struct {
	slotStore SlotStore
	metrics   MetricsCollector
	logger    Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(slotStore SlotStore, metrics MetricsCollector, logger Logger) *UseCase {
	return &UseCase{
		slotStore: slotStore,
		metrics:   metrics,
		logger:    logger,
	}
}

// Execute создает слоты на дату одним запросом.
// Повторы внутри запроса отбрасываются; если диапазон уже есть в хранилище, не создается ничего.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateSlots: merchant=%d, date=%s, ranges=%d, user=%d",
		req.MerchantID, req.Date, len(req.Ranges), req.UserID)

	if req.UserID != req.MerchantID {
		uc.logger.Warn("CreateSlots: user=%d is not merchant=%d", req.UserID, req.MerchantID)
		return nil, ErrAccessDenied
	}

	ranges, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("CreateSlots: validation failed: %v", err)
		return nil, err
	}

	slots := make([]*domain.Slot, 0, len(ranges))
	for _, r := range ranges {
		slots = append(slots, &domain.Slot{
			MerchantID:      req.MerchantID,
			Date:            req.Date,
			StartTime:       r.StartTime,
			EndTime:         r.EndTime,
			ServiceDuration: ptr.Ptr(r.EndTime.Minutes() - r.StartTime.Minutes()),
		})
	}

	created, err := uc.slotStore.CreateMany(ctx, slots)
	if errors.Is(err, slotRepo.ErrSlotsAlreadyExist) {
		uc.logger.Warn("CreateSlots: conflict for merchant=%d, date=%s", req.MerchantID, req.Date)
		return nil, ErrSlotConflict
	}
	if err != nil {
		uc.logger.Error("CreateSlots: failed to create slots: %v", err)
		return nil, fmt.Errorf("%w: create slots: %v", ErrStoreUnavailable, err)
	}

	if uc.metrics != nil {
		uc.metrics.AddSlotsGenerated(metricsSource, len(created))
	}

	uc.logger.Info("CreateSlots: created %d slots for merchant=%d, date=%s", len(created), req.MerchantID, req.Date)
	return &Response{Slots: created}, nil
}
