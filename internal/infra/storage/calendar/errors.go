package calendar

import "errors"

var (
	// ErrDayNotFound возвращается, когда дата не открыта для бронирования
	// Отсутствие записи означает, что день закрыт
	ErrDayNotFound = errors.New("calendar.repository: day not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("calendar.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("calendar.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("calendar.repository: failed to scan row")
)
