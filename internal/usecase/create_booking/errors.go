package create_booking

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrDependentReservationMissing возвращается, если слот не занят
	// или уже закреплен за другим активным бронированием
	ErrDependentReservationMissing = errors.New("create_booking: slot is not reserved for this booking")

	// ErrStoreUnavailable возвращается при ошибках хранилища
	ErrStoreUnavailable = errors.New("create_booking: store unavailable")
)
