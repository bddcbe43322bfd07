package find_next_slot

import "time"

// Request модель запроса поиска ближайшего свободного дня
type Request struct {
	FromDate    time.Time // Начало поиска (включительно)
	HorizonDays int       // Глубина поиска в днях; 0 означает дефолтный горизонт
}

// Response модель ответа с найденным днем
// Ответ справочный: чтобы занять место, нужно подать заявку, и она может
// быть отклонена, если место успеют занять
type Response struct {
	Date      time.Time // Ближайший открытый день со свободными местами
	Count     int       // Неархивных заявок на этот день
	Remaining int       // Оставшиеся места
}
