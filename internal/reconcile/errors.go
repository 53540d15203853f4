package reconcile

import (
	"errors"
	"fmt"
)

// ErrIsDirectory is returned when the target path exists but is a directory.
var ErrIsDirectory = errors.New("path is a directory")

// StatError reports a failure to inspect the target path for a reason other
// than non-existence.
type StatError struct {
	Path  string
	Cause error
}

func (e *StatError) Error() string {
	return fmt.Sprintf("failed to inspect %s: %v", e.Path, e.Cause)
}

func (e *StatError) Unwrap() error { return e.Cause }

// ReadError reports a failure to read the current content of the target.
type ReadError struct {
	Path  string
	Cause error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("failed to read %s: %v", e.Path, e.Cause)
}

func (e *ReadError) Unwrap() error { return e.Cause }

// WriteError reports a failure to replace the content of the target.
type WriteError struct {
	Path  string
	Cause error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("failed to write %s: %v", e.Path, e.Cause)
}

func (e *WriteError) Unwrap() error { return e.Cause }
