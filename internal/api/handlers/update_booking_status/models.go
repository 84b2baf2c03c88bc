package update_booking_status

import "github.com/m04kA/SMC-SlotService/internal/service/bookings/models"

// UpdateStatusRequest HTTP request model
type UpdateStatusRequest struct {
	Status      string `json:"status"`                // "confirmed" | "cancelled"
	ReleaseSlot bool   `json:"releaseSlot,omitempty"` // При отмене вернуть слот в свободные
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *UpdateStatusRequest) ToServiceRequest(userID int64) *models.UpdateStatusRequest {
	return &models.UpdateStatusRequest{
		UserID:      userID,
		Status:      r.Status,
		ReleaseSlot: r.ReleaseSlot,
	}
}
