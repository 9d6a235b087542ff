package owner

import "errors"

var (
	// ErrOwnerNotFound возвращается, когда владелец не найден
	ErrOwnerNotFound = errors.New("owner.repository: owner not found")

	// ErrOwnerExists возвращается при попытке повторной регистрации email
	ErrOwnerExists = errors.New("owner.repository: owner already exists")

	// ErrInvitationNotFound возвращается, когда приглашение не найдено
	ErrInvitationNotFound = errors.New("owner.repository: invitation not found")

	// ErrInvitationUsed возвращается, когда приглашение уже погашено
	ErrInvitationUsed = errors.New("owner.repository: invitation already used")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("owner.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("owner.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("owner.repository: failed to scan row")
)
