package stream_slot_updates

import (
	"errors"
	"strings"

	"github.com/m04kA/SMC-SlotService/internal/domain"
	"github.com/m04kA/SMC-SlotService/pkg/types"
)

var errUnknownEventType = errors.New("unknown slot event type")

// parseTypes разбирает "slot.booked,slot.released"; пустая строка = все типы
func parseTypes(raw string) ([]domain.SlotEventType, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}

	result := make([]domain.SlotEventType, 0, 3)
	for _, p := range strings.Split(raw, ",") {
		t := domain.SlotEventType(strings.TrimSpace(p))
		switch t {
		case domain.SlotCreated, domain.SlotBooked, domain.SlotReleased:
			result = append(result, t)
		default:
			return nil, errUnknownEventType
		}
	}
	return result, nil
}

// ToEventFilter собирает фильтр подписки
func ToEventFilter(merchantID int64, date *types.Date, typesRaw string) (domain.SlotEventFilter, error) {
	filter := domain.SlotEventFilter{MerchantID: merchantID}
	if date != nil {
		filter.Date = *date
	}

	eventTypes, err := parseTypes(typesRaw)
	if err != nil {
		return filter, err
	}
	filter.Types = eventTypes

	return filter, nil
}
