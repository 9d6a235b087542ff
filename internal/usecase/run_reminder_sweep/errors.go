package run_reminder_sweep

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("run_reminder_sweep: internal error")
)
