package domain

import "errors"

// Sentinel errors for the service and repository layers.
// Match with errors.Is(); wrap with fmt.Errorf("...: %w", err).
var (
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("already exists")
	ErrValidation   = errors.New("validation failed")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
)
