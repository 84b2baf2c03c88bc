package workinghours

// UpdateRequest запрос на изменение рабочих часов мастера
type UpdateRequest struct {
	UserID      int64  // Кто меняет (из X-User-ID)
	MerchantID  int64  // Чьи часы
	StartTime   string // "HH:MM"
	EndTime     string // "HH:MM"
	StepMinutes int    // Шаг генерации слотов; 0 = оставить глобальный
}
