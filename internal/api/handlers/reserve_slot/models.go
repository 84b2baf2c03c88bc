package reserve_slot

import (
	"github.com/m04kA/SMC-SlotService/internal/api/handlers"
	reserveSlot "github.com/m04kA/SMC-SlotService/internal/usecase/reserve_slot"
)

// ReserveSlotRequest HTTP request model
type ReserveSlotRequest struct {
	SlotID int64 `json:"slotId"`
}

// ReserveSlotResponse занятый слот, по которому теперь можно записать бронирование
type ReserveSlotResponse struct {
	Slot handlers.SlotResponse `json:"slot"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *ReserveSlotRequest) ToUseCaseRequest(userID int64) *reserveSlot.Request {
	return &reserveSlot.Request{
		SlotID: r.SlotID,
		UserID: userID,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *reserveSlot.Response) *ReserveSlotResponse {
	return &ReserveSlotResponse{Slot: handlers.FromDomainSlot(resp.Slot)}
}
