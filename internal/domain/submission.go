package domain

import "time"

// SubmissionStatus represents the status of a submission
type SubmissionStatus string

const (
	StatusPending  SubmissionStatus = "pending"
	StatusReviewed SubmissionStatus = "reviewed"
	StatusArchived SubmissionStatus = "archived"
	StatusRejected SubmissionStatus = "rejected"
)

// Submission represents an accepted reservation request
type Submission struct {
	ID          string // UUID, генерируется при создании и никогда не переиспользуется
	BookingDate time.Time
	Identity    string // Дедупликационный ключ, вычисляется из контактных данных
	Name        string
	Phone       string
	Note        *string
	Status      SubmissionStatus
	Source      string // Источник заявки (web, admin, import)

	CreatedAt time.Time
	UpdatedAt time.Time
}

// CountsTowardDailyCap сообщает, учитывается ли заявка при подсчете дневного лимита
// Архивные заявки место не занимают
func (s *Submission) CountsTowardDailyCap() bool {
	return s.Status != StatusArchived
}

// CountsTowardMonthlyCap сообщает, учитывается ли заявка при подсчете месячного
// лимита на идентичность. Отклоненные заявки в месячный лимит не входят
func (s *Submission) CountsTowardMonthlyCap() bool {
	return s.Status != StatusArchived && s.Status != StatusRejected
}

// SubmissionFilter фильтр для выборки заявок
type SubmissionFilter struct {
	StartDate *time.Time        // Начало периода по booking_date (опционально)
	EndDate   *time.Time        // Конец периода по booking_date (опционально)
	Identity  *string           // Фильтр по идентичности (опционально)
	Status    *SubmissionStatus // Фильтр по статусу (опционально)
}
