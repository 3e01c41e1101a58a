package errdefs

import "errors"

var (
	ErrNotFound            = errors.New("not found")
	ErrValidation          = errors.New("validation error")
	ErrInvalidState        = errors.New("invalid state")
	ErrConcurrencyConflict = errors.New("concurrency conflict")

	// ErrAlreadyApplied is returned by stores when an event id was already
	// recorded against a progress entry.
	ErrAlreadyApplied = errors.New("event already applied")

	ErrSweepInProgress  = errors.New("reminder sweep already in progress")
	ErrPermissionDenied = errors.New("permission denied")
)

// IsRetryable reports whether the caller may retry the operation as is.
func IsRetryable(err error) bool {
	return errors.Is(err, ErrConcurrencyConflict)
}
