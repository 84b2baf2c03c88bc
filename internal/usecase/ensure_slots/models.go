package ensure_slots

import (
	"github.com/m04kA/SMC-SlotService/internal/domain"
	"github.com/m04kA/SMC-SlotService/pkg/types"
)

// Request модель запроса на получение (и при необходимости генерацию) слотов дня
type Request struct {
	MerchantID       int64
	Date             types.Date
	ServiceDurations []int // Длительности услуг в минутах; пустой набор = длительность по умолчанию
}

// Response слоты дня в порядке времени начала
type Response struct {
	Slots     []*domain.Slot
	Generated bool // true, если слоты созданы этим вызовом
}
