package slot

import "errors"

var (
	// ErrSlotNotFound возвращается, когда слот не найден
	ErrSlotNotFound = errors.New("slot.repository: slot not found")

	// ErrSlotNotAvailable возвращается, когда условное обновление не затронуло ни одной строки
	ErrSlotNotAvailable = errors.New("slot.repository: slot state precondition failed")

	// ErrSlotsAlreadyExist возвращается при нарушении уникальности (merchant_id, slot_date, start_time, end_time)
	ErrSlotsAlreadyExist = errors.New("slot.repository: slots already exist")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("slot.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("slot.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("slot.repository: failed to scan row")
)
