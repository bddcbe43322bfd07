package calendar

import "errors"

var (
	// ErrInvalidDate возвращается при некорректном формате даты
	ErrInvalidDate = errors.New("calendar.service: invalid date")

	// ErrInvalidRange возвращается, когда конец диапазона раньше начала
	ErrInvalidRange = errors.New("calendar.service: invalid date range")

	// ErrInvalidStatus возвращается при неизвестном статусе дня
	ErrInvalidStatus = errors.New("calendar.service: invalid day status")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("calendar.service: internal error")
)
