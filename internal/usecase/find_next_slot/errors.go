package find_next_slot

import "errors"

var (
	// ErrNoSlotAvailable возвращается, когда в горизонте поиска нет открытой
	// даты со свободными местами
	ErrNoSlotAvailable = errors.New("find_next_slot: no slot available within horizon")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("find_next_slot: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("find_next_slot: internal error")
)
