package tabular

import (
	"errors"
	"fmt"
)

// ErrNoPath indicates no source path was given.
var ErrNoPath = errors.New("no path specified")

// ErrFileNotFound indicates the source path does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrInvalidFormat indicates the source is not of the expected kind
// or its content cannot be parsed.
var ErrInvalidFormat = errors.New("invalid format")

// OpenError represents a failure to open a dataset source. Its Err
// chain always reaches one of the sentinel errors above, so callers
// can branch with errors.Is while keeping the full message.
type OpenError struct {
	Path string
	Err  error
}

func (e *OpenError) Error() string {
	return fmt.Sprintf("cannot open dataset at %q: %v", e.Path, e.Err)
}

func (e *OpenError) Unwrap() error {
	return e.Err
}

// NewOpenError creates a new OpenError.
func NewOpenError(path string, err error) *OpenError {
	return &OpenError{Path: path, Err: err}
}
