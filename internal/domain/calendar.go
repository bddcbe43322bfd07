package domain

import "time"

// DayStatus represents the status of a calendar day
type DayStatus string

const (
	// DayStatusOpen день открыт для бронирования
	DayStatusOpen DayStatus = "open"

	// DayStatusClosed день закрыт. В хранилище закрытые дни не хранятся:
	// отсутствие записи означает closed
	DayStatusClosed DayStatus = "closed"
)

// CalendarDay represents a day explicitly opened for booking by an admin
type CalendarDay struct {
	Date   time.Time
	Status DayStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsOpen returns true if the day accepts bookings
func (d *CalendarDay) IsOpen() bool {
	return d.Status == DayStatusOpen
}
