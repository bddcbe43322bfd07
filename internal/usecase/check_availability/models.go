package check_availability

import "time"

// Request модель запроса проверки доступности даты
type Request struct {
	Date time.Time // Дата для проверки (без времени)
}

// Response модель ответа о доступности даты
// Ответ справочный: реальная проверка выполняется при приеме заявки,
// между чтением и записью состояние может измениться
type Response struct {
	Date      time.Time
	Available bool
	Status    string // open | closed
	Count     int    // Неархивных заявок на дату (0, если дата закрыта)
	Max       int    // Действующий дневной лимит (0, если дата закрыта)
	Remaining int    // Оставшиеся места (0, если дата закрыта или занята)
}
