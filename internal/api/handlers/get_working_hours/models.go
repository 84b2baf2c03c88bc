package get_working_hours

import "github.com/m04kA/SMC-SlotService/internal/domain"

// WorkingHoursResponse HTTP response model
type WorkingHoursResponse struct {
	MerchantID  int64  `json:"merchantId"`
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
	StepMinutes int    `json:"stepMinutes"`
	IsDefault   bool   `json:"isDefault"`
}

// FromDomain конвертирует domain модель в HTTP response
func FromDomain(h *domain.WorkingHours) *WorkingHoursResponse {
	return &WorkingHoursResponse{
		MerchantID:  h.MerchantID,
		StartTime:   h.StartTime.String(),
		EndTime:     h.EndTime.String(),
		StepMinutes: h.StepMinutes,
		IsDefault:   h.IsDefault,
	}
}
