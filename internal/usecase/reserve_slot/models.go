package reserve_slot

import (
	"github.com/m04kA/SMC-SlotService/internal/domain"
	"github.com/m04kA/SMC-SlotService/pkg/types"
)

// Request запрос на бронирование слота
type Request struct {
	SlotID int64
	UserID int64 // Клиент, за которым закрепляется слот
}

// Response занятый слот
type Response struct {
	Slot *domain.Slot
}

// CheckRequest запрос предварительной проверки доступности
type CheckRequest struct {
	MerchantID int64
	Date       types.Date
	StartTime  types.TimeString
	EndTime    *types.TimeString // Опционально: уточняет диапазон, если на это время есть слоты разной длины
}

// CheckResponse результат проверки. Не гарантирует успех последующего бронирования.
type CheckResponse struct {
	Available bool
	SlotID    *int64
}
