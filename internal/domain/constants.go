package domain

// Default schedule values for a freshly registered owner
const (
	DefaultStartHour    = 9
	DefaultEndHour      = 18
	DefaultSlotsPerHour = 1
)

// DefaultWorkingDays понедельник-пятница (0=воскресенье..6=суббота)
var DefaultWorkingDays = []int{1, 2, 3, 4, 5}

// Business validation constants
const (
	MinHour         = 0
	MaxHour         = 23
	MinSlotsPerHour = 1
	MaxSlotsPerHour = 12
	MinutesPerHour  = 60

	MaxNotesLength       = 500
	MaxServiceNameLength = 100
	MaxServices          = 50
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// InactiveStatuses статусы, не занимающие место в слоте.
// Используются при подсчете занятости и фильтрации выборок.
var InactiveStatuses = []BookingStatus{
	StatusCancelled,
	StatusNoShow,
}

// TerminalStatuses статусы, из которых нет переходов
var TerminalStatuses = []BookingStatus{
	StatusCompleted,
	StatusNoShow,
	StatusCancelled,
}
