package availability

import (
	"fmt"
	"sort"

	"github.com/m04kA/SMC-SlotService/internal/domain"
)

// GroupByHour раскладывает слоты по часу начала. Группы идут по возрастанию часа,
// внутри группы сохраняется исходный порядок слотов.
func GroupByHour(slots []*domain.Slot) []domain.HourGroup {
	byHour := make(map[int][]*domain.Slot)
	for _, slot := range slots {
		hour := slot.StartTime.Hour()
		byHour[hour] = append(byHour[hour], slot)
	}

	hours := make([]int, 0, len(byHour))
	for hour := range byHour {
		hours = append(hours, hour)
	}
	sort.Ints(hours)

	groups := make([]domain.HourGroup, 0, len(hours))
	for _, hour := range hours {
		groups = append(groups, domain.HourGroup{
			Hour:         hour,
			Label:        fmt.Sprintf("%02d", hour),
			DisplayLabel: displayHour(hour),
			Slots:        byHour[hour],
		})
	}

	return groups
}

// displayHour форматирует час в 12-часовом виде: 0 -> "12 AM", 13 -> "1 PM"
func displayHour(hour int) string {
	suffix := "AM"
	if hour >= 12 {
		suffix = "PM"
	}

	h := hour % 12
	if h == 0 {
		h = 12
	}

	return fmt.Sprintf("%d %s", h, suffix)
}
