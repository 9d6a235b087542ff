package owners

import "errors"

var (
	ErrInvitationNotFound = errors.New("owners: invitation not found")
	ErrInvitationUsed     = errors.New("owners: invitation already used")
	ErrEmailMismatch      = errors.New("owners: email does not match invitation")
	ErrOwnerExists        = errors.New("owners: owner already registered")
	ErrInvalidCredentials = errors.New("owners: invalid email or password")
	ErrInvalidInput       = errors.New("owners: invalid input")
	ErrInternal           = errors.New("owners: internal error")
)
