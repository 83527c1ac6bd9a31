package json

import (
	"github.com/pkg/errors"
)

// Segment is one step of a path into an Element: K for an Object key, I for
// an Array position.
type Segment interface {
	step(e *Element) (*Element, error)
	String() string
}

// K steps into an Object by key, creating the entry when missing.
type K string

func (k K) step(e *Element) (*Element, error) { return e.Key(string(k)) }
func (k K) String() string                    { return string(AppendString(nil, string(k), Escaped)) }

// I steps into an Array by position.
type I int

func (i I) step(e *Element) (*Element, error) { return e.Index(int(i)) }
func (i I) String() string                    { return "[" + string(AppendInt(nil, int64(i))) + "]" }

// Path walks segs from e and returns the Element at the end. Missing Object
// entries along the way are created as empty Objects. The error names the
// segment that failed and wraps the Error from Key or Index.
func (e *Element) Path(segs ...Segment) (v *Element, err error) {
	v = e
	for n, s := range segs {
		if v, err = s.step(v); err != nil {
			err = errors.WithMessagef(err, "path segment %d %s", n, s)
			return nil, err
		}
	}
	return
}

// Set assigns a copy of v at the end of the path segs, see Path.
func (e *Element) Set(v *Element, segs ...Segment) (err error) {
	var target *Element
	if target, err = e.Path(segs...); err != nil {
		return
	}
	target.Assign(v)
	return
}
