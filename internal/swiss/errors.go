package swiss

import (
	"errors"
	"fmt"

	"swiss/internal/util"
)

// Errors returned by the tournament and its stores, test them with errors.Is.
var (
	// ErrStorageUnavailable is returned when the store cannot be reached.
	ErrStorageUnavailable = errors.New("storage unavailable")

	// ErrInvalidInput is returned for malformed arguments, eg. an odd number
	// of players given to the pairing generator.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotFound is returned when a referenced player does not exist or when
	// there is nothing to pair.
	ErrNotFound = errors.New("not found")
)

// InvalidInput returns an ErrInvalidInput carrying a user-facing message.
func InvalidInput(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %w", ErrInvalidInput, util.ErrPublic(fmt.Sprintf(format, args...)))
}

// NotFound returns an ErrNotFound carrying a user-facing message.
func NotFound(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %w", ErrNotFound, util.ErrPublic(fmt.Sprintf(format, args...)))
}
