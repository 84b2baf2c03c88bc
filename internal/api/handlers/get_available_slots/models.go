package get_available_slots

import (
	"errors"
	"strconv"
	"strings"

	"github.com/m04kA/SMC-SlotService/internal/api/handlers"
	getAvailableSlots "github.com/m04kA/SMC-SlotService/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-SlotService/pkg/types"
)

const groupByHour = "hour"

var (
	errInvalidDurations = errors.New("durations must be a comma separated list of integers")
	errInvalidGroupBy   = errors.New("unsupported groupBy value")
)

// HourGroupResponse группа слотов одного часа
type HourGroupResponse struct {
	Hour         int                     `json:"hour"`
	Label        string                  `json:"label"`        // "09"
	DisplayLabel string                  `json:"displayLabel"` // "9 AM"
	Slots        []handlers.SlotResponse `json:"slots"`
}

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	MerchantID int64                   `json:"merchantId"`
	Date       string                  `json:"date"`
	Slots      []handlers.SlotResponse `json:"slots"`
	Groups     []HourGroupResponse     `json:"groups,omitempty"`
}

// parseDurations разбирает "30,60" в список минут; пустая строка = набор по умолчанию
func parseDurations(raw string) ([]int, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}

	parts := strings.Split(raw, ",")
	durations := make([]int, 0, len(parts))
	for _, p := range parts {
		d, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, errInvalidDurations
		}
		durations = append(durations, d)
	}
	return durations, nil
}

// ToUseCaseRequest собирает запрос use case из параметров запроса
func ToUseCaseRequest(userID, merchantID int64, date types.Date, durationsRaw, groupBy string) (*getAvailableSlots.Request, error) {
	durations, err := parseDurations(durationsRaw)
	if err != nil {
		return nil, err
	}

	if groupBy != "" && groupBy != groupByHour {
		return nil, errInvalidGroupBy
	}

	return &getAvailableSlots.Request{
		UserID:           userID,
		MerchantID:       merchantID,
		Date:             date,
		ServiceDurations: durations,
		GroupByHour:      groupBy == groupByHour,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	result := &AvailableSlotsResponse{
		MerchantID: resp.MerchantID,
		Date:       resp.Date.String(),
		Slots:      handlers.FromDomainSlots(resp.Slots),
	}

	if resp.Groups != nil {
		result.Groups = make([]HourGroupResponse, 0, len(resp.Groups))
		for _, g := range resp.Groups {
			result.Groups = append(result.Groups, HourGroupResponse{
				Hour:         g.Hour,
				Label:        g.Label,
				DisplayLabel: g.DisplayLabel,
				Slots:        handlers.FromDomainSlots(g.Slots),
			})
		}
	}

	return result
}
