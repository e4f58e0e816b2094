package apperr

import "errors"

// Sentinel errors shared by usecases and repositories. Handlers translate
// them to HTTP statuses in one place.
var (
	ErrNotFound          = errors.New("not found")
	ErrAlreadyExists     = errors.New("already exists")
	ErrInvalidInput      = errors.New("invalid input")
	ErrInvalidCredential = errors.New("invalid credentials")
	ErrInvalidToken      = errors.New("invalid token")
	ErrEventFull         = errors.New("event is full")
	ErrNotRegistered     = errors.New("not registered")
)
