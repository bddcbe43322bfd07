package reserve

import (
	"errors"
	"fmt"
)

// Закрытый набор причин отказа. Обработчики обязаны различать каждую причину:
// одна причина - одно пользовательское сообщение, без слияния
var (
	// ErrPastDate возвращается, когда дата бронирования уже прошла
	ErrPastDate = errors.New("reserve: booking date is in the past")

	// ErrDateNotOpen возвращается, когда дата не открыта в календаре
	ErrDateNotOpen = errors.New("reserve: date is not open for booking")

	// ErrDailyCapacityExceeded возвращается, когда дневной лимит на дату исчерпан
	ErrDailyCapacityExceeded = errors.New("reserve: daily capacity exceeded")

	// ErrMonthlyCapacityExceeded возвращается, когда месячный лимит идентичности исчерпан
	ErrMonthlyCapacityExceeded = errors.New("reserve: monthly capacity exceeded")

	// ErrStorageBusy возвращается, когда транзакция не прошла из-за конфликта
	// сериализации после всех повторов. Единственная повторяемая причина отказа
	ErrStorageBusy = errors.New("reserve: storage busy, retry later")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("reserve: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("reserve: internal error")
)

// CapacityError отказ по исчерпанному лимиту с фактической занятостью
// Оборачивает ErrDailyCapacityExceeded или ErrMonthlyCapacityExceeded,
// чтобы обработчик мог отдать клиенту счетчики без повторного запроса
type CapacityError struct {
	kind  error
	Count int // Учитываемых заявок на момент проверки
	Max   int // Действующий лимит
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("%v (%d/%d)", e.kind, e.Count, e.Max)
}

func (e *CapacityError) Unwrap() error {
	return e.kind
}

// NewDailyCapacityError создает отказ по дневному лимиту
func NewDailyCapacityError(count, max int) *CapacityError {
	return &CapacityError{kind: ErrDailyCapacityExceeded, Count: count, Max: max}
}

// NewMonthlyCapacityError создает отказ по месячному лимиту идентичности
func NewMonthlyCapacityError(count, max int) *CapacityError {
	return &CapacityError{kind: ErrMonthlyCapacityExceeded, Count: count, Max: max}
}
