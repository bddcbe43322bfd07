package settings

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("settings.service: invalid input data")

	// ErrLimitOutOfRange возвращается, когда лимит выходит за допустимые границы
	ErrLimitOutOfRange = errors.New("settings.service: limit out of range")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("settings.service: internal error")
)
