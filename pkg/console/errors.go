package console

import "errors"

var (
	// ErrAborted signals the user aborted input (e.g., Ctrl+C).
	ErrAborted = errors.New("console: aborted")
	// ErrNilReader is returned when a reader is constructed without a source.
	ErrNilReader = errors.New("console: reader source is nil")
)
