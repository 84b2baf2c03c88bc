package reserve_slot

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("reserve_slot: invalid input data")

	// ErrSlotNotFound возвращается, когда слота с таким ID не существует
	ErrSlotNotFound = errors.New("reserve_slot: slot not found")

	// ErrSlotAlreadyBooked возвращается, когда слот уже занят (в том числе конкурентным запросом)
	ErrSlotAlreadyBooked = errors.New("reserve_slot: slot already booked")

	// ErrStoreUnavailable возвращается при ошибках хранилища слотов
	ErrStoreUnavailable = errors.New("reserve_slot: slot store unavailable")
)
