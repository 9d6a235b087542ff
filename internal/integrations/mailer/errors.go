package mailer

import "errors"

var (
	// ErrDelivery возвращается, когда почтовый API отклонил отправку
	ErrDelivery = errors.New("mailer client: delivery failed")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("mailer client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе почтового API
	ErrInvalidResponse = errors.New("mailer client: invalid response")
)
