package create_booking

import "github.com/m04kA/SMC-SlotService/internal/domain"

// Request модель запроса на запись бронирования по уже занятому слоту
type Request struct {
	CustomerID      int64   // ID клиента (из X-User-ID)
	MerchantID      int64   // ID мастера
	SlotID          int64   // Слот, успешно забронированный этим клиентом
	ServiceName     string  // Название услуги
	ServicePrice    float64 // Цена услуги
	DurationMinutes *int    // Длительность; по умолчанию длина слота
	Notes           *string // Дополнительные заметки (опционально)
}

// Response созданное бронирование
type Response struct {
	Booking *domain.Booking
}
