package service

import (
	"errors"
	"fmt"
)

// ErrNotFound maps to HTTP 404 in handlers.
var ErrNotFound = errors.New("resource not found")

// ValidationError maps to HTTP 400; its message is returned to the client.
// Missing required fields and duplicate unique keys both land here.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

func validationf(format string, args ...any) error {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}
