package domain

// Жизненный цикл записи:
//
//	confirmed -> completed
//	confirmed -> no_show
//	confirmed -> cancelled
//
// Все три целевых статуса терминальные: из них переходов нет.

// CanTransition reports whether the status change from -> to is legal
func CanTransition(from, to BookingStatus) bool {
	if from != StatusConfirmed {
		return false
	}
	switch to {
	case StatusCompleted, StatusNoShow, StatusCancelled:
		return true
	default:
		return false
	}
}

// IsValidStatus reports whether s is a known booking status
func IsValidStatus(s BookingStatus) bool {
	switch s {
	case StatusConfirmed, StatusCompleted, StatusNoShow, StatusCancelled:
		return true
	default:
		return false
	}
}
