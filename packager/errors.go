package packager

import (
	"fmt"
)

// UnknownFormatError indicates an input or output file type that has no
// matching format.
type UnknownFormatError struct {
	// Kind is "input" or "output"
	Kind string

	// Extension is the offending file extension (may be empty)
	Extension string
}

func (e *UnknownFormatError) Error() string {
	if e.Extension == "" {
		return fmt.Sprintf("unknown %s format", e.Kind)
	}
	return fmt.Sprintf("unknown %s format %q", e.Kind, e.Extension)
}

// MissingDependencyError indicates that a format needs an input that was not
// supplied, such as the IPL ROM for GCB images.
type MissingDependencyError struct {
	Format     string
	Dependency string
}

func (e *MissingDependencyError) Error() string {
	return fmt.Sprintf("%s: missing required %s", e.Format, e.Dependency)
}

// FixedAddressError indicates that an executable was not linked for the
// fixed entry point and load address a format's loader jumps to.
type FixedAddressError struct {
	Format    string
	Entry     uint32
	Load      uint32
	WantEntry uint32
	WantLoad  uint32
}

func (e *FixedAddressError) Error() string {
	return fmt.Sprintf("%s: invalid entry point 0x%08X and load address 0x%08X (must be 0x%08X and 0x%08X)",
		e.Format, e.Entry, e.Load, e.WantEntry, e.WantLoad)
}

// CapacityExceededError indicates that an image is larger than the format can hold.
type CapacityExceededError struct {
	Format string
	Size   int
	Max    int
}

func (e *CapacityExceededError) Error() string {
	return fmt.Sprintf("%s: image too big: %d bytes, maximum is %d", e.Format, e.Size, e.Max)
}

// RegisterOverflowError indicates that a derived count does not fit the
// header field it is stored in.
type RegisterOverflowError struct {
	Field string
	Value int
	Max   int
}

func (e *RegisterOverflowError) Error() string {
	return fmt.Sprintf("%s %d does not fit its field (maximum %d)", e.Field, e.Value, e.Max)
}
