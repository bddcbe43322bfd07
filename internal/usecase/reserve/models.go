package reserve

import "time"

// Request модель запроса на бронирование даты
type Request struct {
	Date   time.Time // Дата бронирования (без времени)
	Name   string    // Имя заявителя
	Phone  string    // Телефон заявителя (из него выводится identity)
	Note   *string   // Дополнительные заметки (опционально)
	Source string    // Источник заявки (web, admin)
}

// Response модель ответа с созданной заявкой
type Response struct {
	ID          string    // UUID созданной заявки
	BookingDate time.Time // Дата бронирования
	Identity    string    // Дедупликационный ключ
	Name        string
	Phone       string
	Note        *string
	Status      string // Статус заявки (pending)

	// Занятость даты на момент коммита
	DailyCount int // Заявок на дату с учетом созданной
	DailyMax   int // Действующий дневной лимит
	Remaining  int // Оставшиеся места на дату

	CreatedAt time.Time
}
