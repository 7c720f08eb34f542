package dol

import (
	"errors"
	"fmt"
)

// ErrInvalidExecutable is matched by every *InvalidExecutableError.
var ErrInvalidExecutable = errors.New("invalid executable")

// InvalidExecutableError indicates a malformed segment table or file layout.
type InvalidExecutableError struct {
	Reason string
}

func (e *InvalidExecutableError) Error() string {
	return fmt.Sprintf("invalid executable: %s", e.Reason)
}

// Is reports whether target is ErrInvalidExecutable.
func (e *InvalidExecutableError) Is(target error) bool {
	return target == ErrInvalidExecutable
}

func invalidf(format string, args ...interface{}) error {
	return &InvalidExecutableError{Reason: fmt.Sprintf(format, args...)}
}
