package update_working_hours

import (
	"github.com/m04kA/SMC-SlotService/internal/domain"
	"github.com/m04kA/SMC-SlotService/internal/service/workinghours"
)

// UpdateWorkingHoursRequest HTTP request model
type UpdateWorkingHoursRequest struct {
	StartTime   string `json:"startTime"`             // "09:00"
	EndTime     string `json:"endTime"`               // "18:00"
	StepMinutes int    `json:"stepMinutes,omitempty"` // 0 = глобальный шаг
}

// WorkingHoursResponse HTTP response model
type WorkingHoursResponse struct {
	MerchantID  int64  `json:"merchantId"`
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
	StepMinutes int    `json:"stepMinutes"`
	IsDefault   bool   `json:"isDefault"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *UpdateWorkingHoursRequest) ToServiceRequest(userID, merchantID int64) *workinghours.UpdateRequest {
	return &workinghours.UpdateRequest{
		UserID:      userID,
		MerchantID:  merchantID,
		StartTime:   r.StartTime,
		EndTime:     r.EndTime,
		StepMinutes: r.StepMinutes,
	}
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
