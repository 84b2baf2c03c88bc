package ensure_slots

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("ensure_slots: invalid input data")

	// ErrInvalidDurationSet возвращается, если среди длительностей услуг есть неположительные или слишком большие
	ErrInvalidDurationSet = errors.New("ensure_slots: invalid service duration set")

	// ErrStoreUnavailable возвращается при ошибках хранилища слотов или рабочих часов
	ErrStoreUnavailable = errors.New("ensure_slots: slot store unavailable")
)
