package util

import (
	"errors"
	"strings"
)

// ErrPublic is an error whose message can be shown as-is to an end user.
type ErrPublic string

func (e ErrPublic) Error() string {
	return string(e)
}

// PublicMessage returns the user-facing message carried by err, or fallback if
// err does not wrap an ErrPublic.
func PublicMessage(err error, fallback string) string {
	var public ErrPublic
	if errors.As(err, &public) {
		return string(public)
	}

	return fallback
}

func ConcatErrors(errs []error) error {
	if len(errs) == 0 {
		return nil
	}

	filtered := make([]string, 0, len(errs))
	for _, err := range errs {
		if err != nil {
			filtered = append(filtered, err.Error())
		}
	}

	if len(filtered) == 0 {
		return nil
	}

	return errors.New(strings.Join(filtered, "; "))
}
