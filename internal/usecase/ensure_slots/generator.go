package ensure_slots

import (
	"fmt"
	"sort"

	"github.com/m04kA/SMC-SlotService/internal/domain"
	"github.com/m04kA/SMC-SlotService/pkg/types"
)

// candidate диапазон-кандидат и длительность услуги, при обходе которой он получен
type candidate struct {
	start    types.TimeString
	end      types.TimeString
	duration int
}

// normalizeDurations подставляет длительность по умолчанию для пустого набора
// и убирает повторы, сохраняя порядок
func normalizeDurations(durations []int, defaultDuration int) ([]int, error) {
	if len(durations) == 0 {
		durations = []int{defaultDuration}
	}

	seen := make(map[int]struct{}, len(durations))
	result := make([]int, 0, len(durations))
	for _, d := range durations {
		if d < domain.MinServiceDurationMinutes || d > domain.MaxServiceDurationMinutes {
			return nil, fmt.Errorf("%w: duration %d must be in [%d, %d]",
				ErrInvalidDurationSet, d, domain.MinServiceDurationMinutes, domain.MaxServiceDurationMinutes)
		}
		if _, ok := seen[d]; ok {
			continue
		}
		seen[d] = struct{}{}
		result = append(result, d)
	}

	return result, nil
}

// generateCandidates обходит рабочее окно с шагом stepMinutes для каждой длительности
// и отбрасывает диапазоны, выходящие за конец окна.
// Одинаковые пары (start, end) схлопываются: остается первая встреченная.
func generateCandidates(hours *domain.WorkingHours, durations []int) ([]candidate, error) {
	if hours.StepMinutes <= 0 {
		return nil, fmt.Errorf("step must be positive, got %d", hours.StepMinutes)
	}

	seen := make(map[string]struct{})
	result := make([]candidate, 0)

	for _, duration := range durations {
		current := hours.StartTime

		for current.IsBefore(hours.EndTime) {
			slotEnd, err := current.AddMinutes(duration)
			if err != nil || slotEnd.IsAfter(hours.EndTime) {
				break
			}

			key := domain.RangeKey(current, slotEnd)
			if _, ok := seen[key]; !ok {
				seen[key] = struct{}{}
				result = append(result, candidate{start: current, end: slotEnd, duration: duration})
			}

			current, err = current.AddMinutes(hours.StepMinutes)
			if err != nil {
				break
			}
		}
	}

	sort.SliceStable(result, func(i, j int) bool {
		if result[i].start != result[j].start {
			return result[i].start < result[j].start
		}
		return result[i].end < result[j].end
	})

	return result, nil
}
