package create_slots

import (
	"github.com/m04kA/SMC-SlotService/internal/domain"
	"github.com/m04kA/SMC-SlotService/pkg/types"
)

// Request запрос на ручное создание слотов
type Request struct {
	UserID     int64 // Кто создает (из X-User-ID)
	MerchantID int64
	Date       types.Date
	Ranges     []domain.TimeRange
}

// Response созданные слоты в порядке времени начала
type Response struct {
	Slots []*domain.Slot
}
