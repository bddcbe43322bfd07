package submissions

import "errors"

var (
	// ErrSubmissionNotFound возвращается, когда заявка не найдена
	ErrSubmissionNotFound = errors.New("submissions.service: submission not found")

	// ErrInvalidStatus возвращается при неизвестном статусе заявки
	ErrInvalidStatus = errors.New("submissions.service: invalid submission status")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("submissions.service: internal error")
)
