package errs

import "errors"

// Error classes. Concrete sentinels across layers are marked with exactly one
// of these so the transport can map them with errors.Is.
var (
	ErrValidation     = errors.New("validation error")
	ErrAuthorization  = errors.New("authorization error")
	ErrNotFound       = errors.New("not found")
	ErrConflict       = errors.New("conflict")
	ErrAuthentication = errors.New("authentication failed")
)

// NewValidation returns a new sentinel classified as ErrValidation.
func NewValidation(msg string) error { return Mark(New(msg), ErrValidation) }

func NewAuthorization(msg string) error { return Mark(New(msg), ErrAuthorization) }

func NewNotFound(msg string) error { return Mark(New(msg), ErrNotFound) }

func NewConflict(msg string) error { return Mark(New(msg), ErrConflict) }

func NewAuthentication(msg string) error { return Mark(New(msg), ErrAuthentication) }
