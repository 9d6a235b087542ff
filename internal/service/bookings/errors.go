package bookings

import "errors"

var (
	// ErrBookingNotFound возвращается, когда запись не найдена у владельца
	ErrBookingNotFound = errors.New("booking not found")

	// ErrIllegalTransition возвращается при попытке перехода из терминального
	// статуса (completed, no_show, cancelled)
	ErrIllegalTransition = errors.New("illegal status transition")

	// ErrAlreadyReminded возвращается, когда напоминание по записи уже отправлено
	ErrAlreadyReminded = errors.New("reminder already sent")

	// ErrNotRemindable возвращается для записей, по которым напоминания
	// не отправляются (блокировки слотов, записи без email)
	ErrNotRemindable = errors.New("booking is not remindable")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("bookings service: internal error")
)
