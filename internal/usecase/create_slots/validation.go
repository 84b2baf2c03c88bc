package create_slots

import (
	"fmt"

	"github.com/m04kA/SMC-SlotService/internal/domain"
)

// validateRequest валидирует запрос и возвращает диапазоны без повторов
func validateRequest(req *Request) ([]domain.TimeRange, error) {
	if req.MerchantID <= 0 {
		return nil, fmt.Errorf("%w: merchantID must be positive", ErrInvalidInput)
	}

	if err := req.Date.Validate(); err != nil {
		return nil, fmt.Errorf("%w: invalid date: %v", ErrInvalidInput, err)
	}

	if len(req.Ranges) == 0 {
		return nil, fmt.Errorf("%w: at least one time range is required", ErrInvalidInput)
	}

	if len(req.Ranges) > domain.MaxManualSlotsPerRequest {
		return nil, fmt.Errorf("%w: at most %d time ranges per request", ErrInvalidInput, domain.MaxManualSlotsPerRequest)
	}

	seen := make(map[string]struct{}, len(req.Ranges))
	ranges := make([]domain.TimeRange, 0, len(req.Ranges))

	for i, r := range req.Ranges {
		if err := r.StartTime.Validate(); err != nil {
			return nil, fmt.Errorf("%w: range %d: invalid startTime: %v", ErrInvalidInput, i, err)
		}
		if err := r.EndTime.Validate(); err != nil {
			return nil, fmt.Errorf("%w: range %d: invalid endTime: %v", ErrInvalidInput, i, err)
		}
		if !r.StartTime.IsBefore(r.EndTime) {
			return nil, fmt.Errorf("%w: range %d: startTime must be before endTime", ErrInvalidInput, i)
		}

		key := domain.RangeKey(r.StartTime, r.EndTime)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		ranges = append(ranges, r)
	}

	return ranges, nil
}
