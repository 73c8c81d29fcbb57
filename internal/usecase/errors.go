package usecase

import "errors"

var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrNotFound              = errors.New("resource not found")
	ErrUnauthorized          = errors.New("unauthorized")
	ErrEligibilityDenied     = errors.New("not eligible")
	ErrWriteConflict         = errors.New("write conflict")
	ErrDependencyUnavailable = errors.New("dependency unavailable")
)
