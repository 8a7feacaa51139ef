package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound   = errors.New("not found")
	ErrValidation = errors.New("validation error")
)

// NotFoundError reads as "<kind> not found" and matches ErrNotFound.
func NotFoundError(kind string) error {
	return fmt.Errorf("%s %w", kind, ErrNotFound)
}

func ValidationError(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}
