package get_available_slots

import "errors"

var (
	// ErrScheduleNotFound возвращается, когда расписание владельца не найдено
	ErrScheduleNotFound = errors.New("get_available_slots: owner schedule not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_available_slots: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_available_slots: internal error")
)
