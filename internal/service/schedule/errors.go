package schedule

import "errors"

var (
	// ErrScheduleNotFound возвращается, когда расписание владельца не найдено
	ErrScheduleNotFound = errors.New("schedule not found")

	// ErrInvalidInput возвращается при некорректных параметрах расписания
	ErrInvalidInput = errors.New("invalid schedule parameters")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("schedule service: internal error")
)
