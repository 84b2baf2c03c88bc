package availability

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-SlotService/internal/domain"
	"github.com/m04kA/SMC-SlotService/pkg/types"
)

// Service индекс доступности: выборки и сводки по слотам
type Service struct {
	slotStore SlotStore
	cache     SummaryCache
	logger    Logger
}

// NewService создает новый экземпляр сервиса доступности.
// cache может быть nil: тогда сводки всегда считаются по хранилищу.
func NewService(slotStore SlotStore, cache SummaryCache, logger Logger) *Service {
	return &Service{
		slotStore: slotStore,
		cache:     cache,
		logger:    logger,
	}
}

// ListAvailable возвращает свободные слоты мастера на дату по возрастанию времени начала
func (s *Service) ListAvailable(ctx context.Context, merchantID int64, date types.Date) ([]*domain.Slot, error) {
	if err := validateMerchantDate(merchantID, date); err != nil {
		s.logger.Warn("ListAvailable: validation failed: %v", err)
		return nil, err
	}

	filter := domain.ForDate(merchantID, date)
	filter.OnlyAvailable = true

	slots, err := s.slotStore.GetByFilter(ctx, filter)
	if err != nil {
		s.logger.Error("ListAvailable: failed to read slots for merchant=%d, date=%s: %v", merchantID, date, err)
		return nil, fmt.Errorf("%w: ListAvailable - read slots: %v", ErrStoreUnavailable, err)
	}

	return slots, nil
}

// Summarize считает свободные и занятые слоты по датам периода [from, to] за один проход.
// Даты без слотов в результат не попадают.
func (s *Service) Summarize(ctx context.Context, merchantID int64, from, to types.Date) (domain.AvailabilitySummary, error) {
	s.logger.Info("Summarize: merchant=%d, period=%s to %s", merchantID, from, to)

	if err := validateRange(merchantID, from, to); err != nil {
		s.logger.Warn("Summarize: validation failed: %v", err)
		return nil, err
	}

	version, cached := s.cachedSummary(ctx, merchantID, from, to)
	if cached != nil {
		return cached, nil
	}

	slots, err := s.slotStore.GetByFilter(ctx, domain.SlotsFilter{
		MerchantID: merchantID,
		StartDate:  &from,
		EndDate:    &to,
	})
	if err != nil {
		s.logger.Error("Summarize: failed to read slots for merchant=%d: %v", merchantID, err)
		return nil, fmt.Errorf("%w: Summarize - read slots: %v", ErrStoreUnavailable, err)
	}

	summary := summarize(slots)

	if s.cache != nil && version >= 0 {
		if err := s.cache.Set(ctx, merchantID, version, from, to, summary); err != nil {
			s.logger.Warn("Summarize: failed to cache summary for merchant=%d: %v", merchantID, err)
		}
	}

	return summary, nil
}

// GroupByHour группирует слоты для отображения по часам
func (s *Service) GroupByHour(slots []*domain.Slot) []domain.HourGroup {
	return GroupByHour(slots)
}

// ListMerchantSlots возвращает все слоты мастера (свободные и занятые) за период по дате и времени начала.
// Пустые границы периода не ограничивают выборку.
func (s *Service) ListMerchantSlots(ctx context.Context, merchantID int64, from, to *types.Date) ([]*domain.Slot, error) {
	s.logger.Info("ListMerchantSlots: merchant=%d, from=%v, to=%v", merchantID, from, to)

	if merchantID <= 0 {
		return nil, fmt.Errorf("%w: merchantID must be positive", ErrInvalidInput)
	}
	for _, d := range []*types.Date{from, to} {
		if d == nil {
			continue
		}
		if err := d.Validate(); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
	}
	if from != nil && to != nil && to.Before(*from) {
		return nil, fmt.Errorf("%w: from must not be after to", ErrInvalidInput)
	}

	slots, err := s.slotStore.GetByFilter(ctx, domain.SlotsFilter{
		MerchantID: merchantID,
		StartDate:  from,
		EndDate:    to,
	})
	if err != nil {
		s.logger.Error("ListMerchantSlots: failed to read slots for merchant=%d: %v", merchantID, err)
		return nil, fmt.Errorf("%w: ListMerchantSlots - read slots: %v", ErrStoreUnavailable, err)
	}

	return slots, nil
}

// cachedSummary возвращает версию кеша и сводку при попадании.
// Версия -1 означает, что кеш недоступен и записывать в него не нужно.
func (s *Service) cachedSummary(ctx context.Context, merchantID int64, from, to types.Date) (int64, domain.AvailabilitySummary) {
	if s.cache == nil {
		return -1, nil
	}

	version, err := s.cache.Version(ctx, merchantID)
	if err != nil {
		s.logger.Warn("Summarize: cache unavailable: %v", err)
		return -1, nil
	}

	summary, ok, err := s.cache.Get(ctx, merchantID, version, from, to)
	if err != nil {
		s.logger.Warn("Summarize: failed to read cache: %v", err)
		return version, nil
	}
	if !ok {
		return version, nil
	}

	return version, summary
}

func summarize(slots []*domain.Slot) domain.AvailabilitySummary {
	summary := make(domain.AvailabilitySummary)
	for _, slot := range slots {
		counts := summary[slot.Date]
		if slot.IsBooked {
			counts.Booked++
		} else {
			counts.Available++
		}
		summary[slot.Date] = counts
	}
	return summary
}

func validateMerchantDate(merchantID int64, date types.Date) error {
	if merchantID <= 0 {
		return fmt.Errorf("%w: merchantID must be positive", ErrInvalidInput)
	}
	if err := date.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return nil
}

func validateRange(merchantID int64, from, to types.Date) error {
	if err := validateMerchantDate(merchantID, from); err != nil {
		return err
	}
	if err := to.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if to.Before(from) {
		return fmt.Errorf("%w: from must not be after to", ErrInvalidInput)
	}
	if !to.Before(from.AddDays(domain.MaxSummaryRangeDays)) {
		return fmt.Errorf("%w: period is longer than %d days", ErrInvalidInput, domain.MaxSummaryRangeDays)
	}
	return nil
}
