package create_slots

import (
	"github.com/m04kA/SMC-SlotService/internal/api/handlers"
	"github.com/m04kA/SMC-SlotService/internal/domain"
	createSlots "github.com/m04kA/SMC-SlotService/internal/usecase/create_slots"
	"github.com/m04kA/SMC-SlotService/pkg/types"
)

// TimeRangeRequest диапазон создаваемого слота
type TimeRangeRequest struct {
	StartTime string `json:"startTime"` // "10:00"
	EndTime   string `json:"endTime"`   // "10:45"
}

// CreateSlotsRequest HTTP request model
type CreateSlotsRequest struct {
	Date   string             `json:"date"` // "2025-10-15"
	Ranges []TimeRangeRequest `json:"ranges"`
}

// CreateSlotsResponse HTTP response model
type CreateSlotsResponse struct {
	MerchantID int64                   `json:"merchantId"`
	Date       string                  `json:"date"`
	Slots      []handlers.SlotResponse `json:"slots"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case (с парсингом даты и времени)
func (r *CreateSlotsRequest) ToUseCaseRequest(userID, merchantID int64) (*createSlots.Request, error) {
	date, err := types.ParseDate(r.Date)
	if err != nil {
		return nil, err
	}

	ranges := make([]domain.TimeRange, 0, len(r.Ranges))
	for _, tr := range r.Ranges {
		start, err := types.NewTimeStringFromString(tr.StartTime)
		if err != nil {
			return nil, err
		}
		end, err := types.NewTimeStringFromString(tr.EndTime)
		if err != nil {
			return nil, err
		}
		ranges = append(ranges, domain.TimeRange{StartTime: start, EndTime: end})
	}

	return &createSlots.Request{
		UserID:     userID,
		MerchantID: merchantID,
		Date:       date,
		Ranges:     ranges,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(merchantID int64, date types.Date, resp *createSlots.Response) *CreateSlotsResponse {
	return &CreateSlotsResponse{
		MerchantID: merchantID,
		Date:       date.String(),
		Slots:      handlers.FromDomainSlots(resp.Slots),
	}
}
