package identity

import "strings"

// PhoneExtractor вычисляет дедупликационный ключ заявителя из номера телефона
// Ключ - только цифры номера: "+7 (999) 888-77-77" и "79998887777" дают
// одну и ту же идентичность
type PhoneExtractor struct{}

// NewPhoneExtractor создает новый экземпляр экстрактора
func NewPhoneExtractor() *PhoneExtractor {
	return &PhoneExtractor{}
}

// Extract возвращает дедупликационный ключ для контактных данных
// Имя в ключе не участвует: один человек может подать заявку с разным
// написанием имени, но телефон один
func (e *PhoneExtractor) Extract(name, phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
