package domain

// CapacityLimits действующие лимиты вместимости
// Читаются из настроек заново при каждой операции: изменение админом
// вступает в силу со следующего запроса без перезапуска сервиса
type CapacityLimits struct {
	MaxPerDay   int // Максимум заявок на одну дату
	MaxPerMonth int // Максимум заявок одной идентичности за календарный месяц
}
