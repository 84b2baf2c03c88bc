package availability

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("availability: invalid input data")

	// ErrStoreUnavailable возвращается при ошибках хранилища слотов
	ErrStoreUnavailable = errors.New("availability: slot store unavailable")
)
