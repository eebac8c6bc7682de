package core

import (
	"errors"
	"fmt"
)

// Sentinel validation errors. Each validation failure belongs to exactly one
// category, and the first detected problem terminates the pass.
var (
	// ErrTruncated indicates the buffer is shorter than its header or
	// declared payload requires.
	ErrTruncated = errors.New("buffer truncated")

	// ErrBadPadding indicates the two reserved prefix bytes are nonzero.
	ErrBadPadding = errors.New("nonzero reserved bytes at start of buffer")

	// ErrOverflow indicates a size computation exceeded the uint64 range.
	ErrOverflow = errors.New("declared bounds overflow uint64")
)

// OverAllocatedError indicates the buffer is longer than the header-declared
// shape requires. The format has no trailer or padding concept, so trailing
// bytes are rejected.
type OverAllocatedError struct {
	Declared uint64 // total bytes the header accounts for
	Actual   uint64 // actual buffer length
}

func (e *OverAllocatedError) Error() string {
	return fmt.Sprintf("buffer over-allocated: header declares %d bytes, buffer has %d", e.Declared, e.Actual)
}

// UnknownTypeCodeError indicates the header's type code byte is not in the
// recognized set.
type UnknownTypeCodeError struct {
	Code byte
}

func (e *UnknownTypeCodeError) Error() string {
	return fmt.Sprintf("unrecognized type code 0x%02x", e.Code)
}
