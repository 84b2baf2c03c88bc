package get_available_slots

import (
	"github.com/m04kA/SMC-SlotService/internal/domain"
	"github.com/m04kA/SMC-SlotService/pkg/types"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	UserID           int64 // ID пользователя (для логирования, не влияет на результат)
	MerchantID       int64
	Date             types.Date
	ServiceDurations []int // Длительности услуг мастера, под которые генерируется день
	GroupByHour      bool
}

// Response модель ответа со списком доступных слотов
type Response struct {
	MerchantID int64
	Date       types.Date
	Slots      []*domain.Slot     // Свободные слоты по возрастанию времени начала
	Groups     []domain.HourGroup // Заполняется при GroupByHour
}
