package domain

// Default configuration values
const (
	DefaultTimezone         = "America/New_York"
	DefaultSlotMinutes      = 60
	DefaultMinLeadDays      = 0
	DefaultHandymanCapacity = 1
)

// Business validation constants
const (
	MinSlotMinutes      = 5
	MaxSlotMinutes      = 480 // 8 hours
	MinHandymanCapacity = 1
	MaxHandymanCapacity = 100
	MinLeadDaysLimit    = 0
	MaxLeadDaysLimit    = 365 // 1 year
	MaxNoteLength       = 500
	MaxServiceLength    = 200
	MaxImagesPerBooking = 10
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// InactiveStatuses список статусов, не занимающих вместимость слота.
// Используется при подсчёте занятости слотов.
var InactiveStatuses = []BookingStatus{
	StatusCancelled,
}

// TerminalStatuses список терминальных статусов (переходы из них запрещены)
var TerminalStatuses = []BookingStatus{
	StatusCompleted,
	StatusCancelled,
}
