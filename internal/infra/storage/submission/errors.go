package submission

import "errors"

var (
	// ErrSubmissionNotFound возвращается, когда заявка не найдена
	ErrSubmissionNotFound = errors.New("submission.repository: submission not found")

	// ErrDuplicateID возвращается при попытке вставить заявку с существующим id
	ErrDuplicateID = errors.New("submission.repository: duplicate submission id")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("submission.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("submission.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("submission.repository: failed to scan row")
)
