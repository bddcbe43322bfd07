package domain

// Default capacity values (used when the setting is missing or unparsable)
const (
	DefaultMaxBookingsPerDay   = 3
	DefaultMaxBookingsPerMonth = 1000
)

// Business validation bounds for admin-updated limits
const (
	MinBookingsPerDayLimit   = 1
	MaxBookingsPerDayLimit   = 100
	MinBookingsPerMonthLimit = 1
	MaxBookingsPerMonthLimit = 10000
)

// Settings keys
const (
	SettingMaxBookingsPerDay   = "max_bookings_per_day"
	SettingMaxBookingsPerMonth = "max_bookings_per_month"
)

// Next-slot search horizon
const (
	DefaultSearchHorizonDays = 30
	MaxSearchHorizonDays     = 90
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Submission source values
const (
	SourceWeb   = "web"
	SourceAdmin = "admin"
)
