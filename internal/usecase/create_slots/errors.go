package create_slots

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_slots: invalid input data")

	// ErrAccessDenied возвращается, если слоты создает не сам мастер
	ErrAccessDenied = errors.New("create_slots: access denied")

	// ErrSlotConflict возвращается, если один из диапазонов уже существует на эту дату
	ErrSlotConflict = errors.New("create_slots: slot with the same time range already exists")

	// ErrStoreUnavailable возвращается при ошибках хранилища слотов
	ErrStoreUnavailable = errors.New("create_slots: slot store unavailable")
)
