package ensure_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SlotService/internal/domain"
	slotRepo "github.com/m04kA/SMC-SlotService/internal/infra/storage/slot"
	"github.com/m04kA/SMC-SlotService/pkg/ptr"
)

const metricsSource = "generated"

// UseCase генератор слотов: создает слоты дня при первом обращении
type UseCase struct {
	slotStore       SlotStore
	hoursProvider   WorkingHoursProvider
	metrics         MetricsCollector
	defaultDuration int
	logger          Logger
}

// NewUseCase создает новый экземпляр use case.
// defaultDuration используется, когда набор длительностей пуст; <= 0 означает domain.DefaultServiceDurationMinutes.
func NewUseCase(
	slotStore SlotStore,
	hoursProvider WorkingHoursProvider,
	metrics MetricsCollector,
	defaultDuration int,
	logger Logger,
) *UseCase {
	if defaultDuration <= 0 {
		defaultDuration = domain.DefaultServiceDurationMinutes
	}
	return &UseCase{
		slotStore:       slotStore,
		hoursProvider:   hoursProvider,
		metrics:         metrics,
		defaultDuration: defaultDuration,
		logger:          logger,
	}
}

// Execute возвращает слоты мастера на дату, создавая их при первом обращении.
// Если на дату уже есть хотя бы один слот, день не перегенерируется и не дополняется.
//
// Конкурентный вызов для того же дня может успеть вставить слоты первым;
// тогда уникальный индекс отклонит вставку, и слоты будут перечитаны.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("EnsureSlots: merchant=%d, date=%s, durations=%v", req.MerchantID, req.Date, req.ServiceDurations)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("EnsureSlots: validation failed: %v", err)
		return nil, err
	}

	durations, err := normalizeDurations(req.ServiceDurations, uc.defaultDuration)
	if err != nil {
		uc.logger.Warn("EnsureSlots: %v", err)
		return nil, err
	}

	// 1. День уже сгенерирован
	existing, err := uc.slotStore.GetByFilter(ctx, domain.ForDate(req.MerchantID, req.Date))
	if err != nil {
		uc.logger.Error("EnsureSlots: failed to read slots for merchant=%d, date=%s: %v", req.MerchantID, req.Date, err)
		return nil, fmt.Errorf("%w: read existing slots: %v", ErrStoreUnavailable, err)
	}
	if len(existing) > 0 {
		return &Response{Slots: existing}, nil
	}

	// 2. Рабочее окно мастера
	hours, err := uc.hoursProvider.Get(ctx, req.MerchantID)
	if err != nil {
		uc.logger.Error("EnsureSlots: failed to get working hours for merchant=%d: %v", req.MerchantID, err)
		return nil, fmt.Errorf("%w: get working hours: %v", ErrStoreUnavailable, err)
	}

	// 3. Кандидаты
	candidates, err := generateCandidates(hours, durations)
	if err != nil {
		uc.logger.Error("EnsureSlots: invalid working hours for merchant=%d: %v", req.MerchantID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if len(candidates) == 0 {
		uc.logger.Warn("EnsureSlots: no slot fits window %s-%s for durations=%v",
			hours.StartTime, hours.EndTime, durations)
		return &Response{Slots: []*domain.Slot{}}, nil
	}

	slots := make([]*domain.Slot, 0, len(candidates))
	for _, c := range candidates {
		slots = append(slots, &domain.Slot{
			MerchantID:      req.MerchantID,
			Date:            req.Date,
			StartTime:       c.start,
			EndTime:         c.end,
			IsBooked:        false,
			ServiceDuration: ptr.Ptr(c.duration),
		})
	}

	// 4. Вставка одним запросом
	created, err := uc.slotStore.CreateMany(ctx, slots)
	if errors.Is(err, slotRepo.ErrSlotsAlreadyExist) {
		uc.logger.Warn("EnsureSlots: slots for merchant=%d, date=%s were created concurrently, re-reading",
			req.MerchantID, req.Date)

		current, err := uc.slotStore.GetByFilter(ctx, domain.ForDate(req.MerchantID, req.Date))
		if err != nil {
			uc.logger.Error("EnsureSlots: failed to re-read slots: %v", err)
			return nil, fmt.Errorf("%w: re-read slots: %v", ErrStoreUnavailable, err)
		}
		return &Response{Slots: current}, nil
	}
	if err != nil {
		uc.logger.Error("EnsureSlots: failed to create slots for merchant=%d, date=%s: %v", req.MerchantID, req.Date, err)
		return nil, fmt.Errorf("%w: create slots: %v", ErrStoreUnavailable, err)
	}

	if uc.metrics != nil {
		uc.metrics.AddSlotsGenerated(metricsSource, len(created))
	}

	uc.logger.Info("EnsureSlots: generated %d slots for merchant=%d, date=%s", len(created), req.MerchantID, req.Date)
	return &Response{Slots: created, Generated: true}, nil
}
