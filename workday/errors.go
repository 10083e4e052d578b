/*
errors.go - Centralized error types for the workday module

PURPOSE:
  All sentinel errors in one place. The engine itself never returns
  errors (it degrades to InvalidDate, see engine.go); these sentinels
  belong to the persistence and HTTP layers, which do use ordinary Go
  error returns.

USAGE:
  if errors.Is(err, workday.ErrInvalidDate) {
      // 400, not 500
  }

SEE ALSO:
  - store.go: Store methods returning these
  - api/handlers.go: HTTP status mapping
*/
package workday

import "errors"

var (
	// ErrInvalidDate is returned when a date fails Gregorian
	// validation at a boundary that reports errors.
	ErrInvalidDate = errors.New("invalid date")

	// ErrNotConfigured is returned when the workday window is needed
	// but has not been set.
	ErrNotConfigured = errors.New("workday window not configured")

	// ErrStoreFailed is returned when persistence cannot complete.
	ErrStoreFailed = errors.New("store operation failed")

	// ErrPresetNotFound is returned when a named holiday preset does
	// not exist.
	ErrPresetNotFound = errors.New("holiday preset not found")
)

// IsClientError returns true if the error is due to invalid caller
// input rather than an internal failure.
func IsClientError(err error) bool {
	return errors.Is(err, ErrInvalidDate) || errors.Is(err, ErrNotConfigured)
}

// IsNotFound returns true if the error indicates a missing resource.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrPresetNotFound)
}
