package workinghours

import "errors"

var (
	// ErrAccessDenied возвращается, когда рабочие часы меняет не сам мастер
	ErrAccessDenied = errors.New("workinghours: access denied")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("workinghours: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("workinghours: internal error")
)
