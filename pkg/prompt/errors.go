package prompt

import (
	"errors"
	"fmt"
)

var (
	// ErrEntityNotConfigured is returned by Prompt before a successful Configure.
	ErrEntityNotConfigured = errors.New("prompt: entity is not configured")
	// ErrEndOfInput is returned when the input stream ends before a field
	// receives an accepted value.
	ErrEndOfInput = errors.New("prompt: end of input")
	// ErrUnsupportedType is returned when a field's semantic type cannot be
	// parsed. Configure rejects such fields, so it signals a programming error.
	ErrUnsupportedType = errors.New("prompt: unsupported semantic type")
)

// Parse failure messages reported for free numeric input.
const (
	MsgIntegerRequired = "You need to enter a integer number"
	MsgFloatRequired   = "You need to enter a floating-point number"
)

// InternalError reports a programming-level failure: a missing entity, an
// unusable constructor, or a value that could not be written into the target.
type InternalError struct {
	Op    string
	Field string
	Err   error
}

func (e *InternalError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("prompt: internal error during %s of field %q: %v", e.Op, e.Field, e.Err)
	}
	return fmt.Sprintf("prompt: internal error during %s: %v", e.Op, e.Err)
}

func (e *InternalError) Unwrap() error {
	return e.Err
}
