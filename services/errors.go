// Package services holds the outcome sentinels shared by every resource service.
// Resource errors wrap one of these (or a store sentinel) so that the HTTP layer can
// classify any failure with errors.Is.
package services

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrValidation   = errors.New("validation failed")
	ErrConflict     = errors.New("conflict")
	ErrUnauthorized = errors.New("not authorized")
)

// Invalid returns a validation error carrying a client facing reason.
func Invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

// Timestamp formats the creation time stamped on documents that arrive without one.
func Timestamp(now func() time.Time) string {
	return now().UTC().Format(time.RFC3339)
}
