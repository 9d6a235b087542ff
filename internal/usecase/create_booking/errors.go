package create_booking

import (
	"errors"
	"fmt"
)

var (
	// ErrScheduleNotFound возвращается, когда расписание владельца не найдено
	ErrScheduleNotFound = errors.New("create_booking: owner schedule not found")

	// ErrInvalidDate возвращается при некорректной дате записи (в прошлом)
	ErrInvalidDate = errors.New("create_booking: invalid booking date")

	// ErrNonWorkingDay возвращается, когда дата приходится на нерабочий день
	ErrNonWorkingDay = errors.New("create_booking: date falls on a non-working day")

	// ErrInvalidTimeSlot возвращается, когда время вне рабочих часов
	// или не выровнено по сетке слотов
	ErrInvalidTimeSlot = errors.New("create_booking: invalid time slot")

	// ErrUnknownService возвращается, когда услуга не входит в прайс владельца
	ErrUnknownService = errors.New("create_booking: unknown service")

	// ErrSlotNotAvailable возвращается, когда выбранный слот недоступен (все места заняты)
	ErrSlotNotAvailable = errors.New("create_booking: slot is not available")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)

// CapacityError уточняет ErrSlotNotAvailable занятостью слота на момент отказа
type CapacityError struct {
	Taken int
	Limit int
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("create_booking: slot is not available, %d/%d spots taken", e.Taken, e.Limit)
}

// Unwrap позволяет проверять ошибку через errors.Is(err, ErrSlotNotAvailable)
func (e *CapacityError) Unwrap() error {
	return ErrSlotNotAvailable
}
