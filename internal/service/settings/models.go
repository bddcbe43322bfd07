package settings

// UpdateLimitsRequest запрос на обновление лимитов вместимости
// Поля опциональны - обновляются только переданные значения
type UpdateLimitsRequest struct {
	MaxPerDay   *int
	MaxPerMonth *int
}

// LimitsResponse действующие лимиты вместимости
type LimitsResponse struct {
	MaxPerDay   int
	MaxPerMonth int
}
