package json

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrShapeMismatch is the kind of error returned when an Element is
	// indexed or unwrapped as a shape it does not hold.
	ErrShapeMismatch = errors.New("shape mismatch")
	// ErrOutOfRange is the kind of error returned when an Array is indexed at a
	// position outside of it.
	ErrOutOfRange = errors.New("index out of range")
)

// Error describes a failed structural access. Use errors.Is with
// ErrShapeMismatch or ErrOutOfRange to tell the kinds apart.
type Error struct {
	Op   string
	Kind error
	Want Shape
	Got  Shape
	// Index and Len are set for ErrOutOfRange.
	Index, Len int
}

func (e *Error) Error() string {
	if e.Kind == ErrOutOfRange {
		return fmt.Sprintf("json: %s %d: %s, length %d", e.Op, e.Index, e.Kind, e.Len)
	}
	return fmt.Sprintf("json: %s: %s, want %s, have %s", e.Op, e.Kind, e.Want, e.Got)
}

func (e *Error) Unwrap() error { return e.Kind }

// Must returns v, panicking if err is not nil. It is for callers that treat a
// structural error as a programming error.
func Must(v *Element, err error) *Element {
	if err != nil {
		panic(err)
	}
	return v
}
