package check_availability

import reserveSlot "github.com/m04kA/SMC-SlotService/internal/usecase/reserve_slot"

// CheckResponse HTTP response model
type CheckResponse struct {
	Available bool   `json:"available"`
	SlotID    *int64 `json:"slotId,omitempty"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *reserveSlot.CheckResponse) *CheckResponse {
	return &CheckResponse{
		Available: resp.Available,
		SlotID:    resp.SlotID,
	}
}
