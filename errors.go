package listx

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfRange is returned when an index lies outside an operation's valid range.
	ErrOutOfRange = errors.New("index out of range")
	// ErrNilBuffer is returned by CopyTo when the destination is nil.
	ErrNilBuffer = errors.New("destination buffer is nil")
	// ErrLengthMismatch is returned by CopyTo when the destination is too short.
	ErrLengthMismatch = errors.New("destination buffer too short")
	// ErrModified is returned by an iterator advanced after its list was mutated.
	ErrModified = errors.New("list modified during iteration")
)

// IndexError reports an index rejected by an operation. It wraps ErrOutOfRange.
// Bound is the exclusive upper limit the index was checked against.
type IndexError struct {
	Op    string
	Index int
	Bound int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("%s: index %d out of range [0,%d)", e.Op, e.Index, e.Bound)
}

func (e *IndexError) Unwrap() error { return ErrOutOfRange }

// checkIndex validates 0 <= i < bound.
func checkIndex(op string, i, bound int) error {
	if i < 0 || i >= bound {
		return &IndexError{Op: op, Index: i, Bound: bound}
	}
	return nil
}
