package services

import (
	"errors"
	"fmt"
)

// Rejection taxonomy for the booking engine. Callers branch with errors.Is;
// handlers map each to an HTTP status.
var (
	// ErrNotConfigured means no booking settings record exists yet.
	ErrNotConfigured = errors.New("booking settings not configured")

	// ErrSystemUnavailable means the booking system is inactive or unconfigured.
	ErrSystemUnavailable = errors.New("booking system is unavailable")

	// ErrInvalidSlot means the requested (date, slot) pair does not match the
	// current configuration.
	ErrInvalidSlot = errors.New("slot does not match the current booking configuration")

	// ErrSlotFull means the slot had no remaining capacity at commit time.
	ErrSlotFull = errors.New("slot is fully booked")

	// ErrValidation means a required field is missing or malformed.
	ErrValidation = errors.New("validation failed")

	// ErrNotFound means an unknown booking id on an admin update or delete.
	ErrNotFound = errors.New("record not found")
)

func validationError(msg string) error {
	return fmt.Errorf("%w: %s", ErrValidation, msg)
}
