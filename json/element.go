// Package json is an in-memory JSON value tree for writing JSON.
//
// An Element holds exactly one payload: null, a bool, a number, a string, an
// Object, an Array, or an opaque leaf that formats itself through the
// codec.JSON interface. The shape of a new Element is chosen by the
// constructor used to build it, so an opaque leaf whose type has no Marshal
// method does not compile.
//
// Elements form a tree. Every Element is owned by exactly one parent, and every
// operation that takes an Element from the caller (construction of aggregates,
// Assign, Set) stores a deep copy of it.
//
// The zero Element, like New(), is an empty Object. Key creates missing
// entries as empty Objects, so
//
//	e := json.New()
//	_ = e.Set(json.Number(5), json.K("a"), json.K("b"))
//
// leaves e as {"a": {"b": 5}}.
//
// Strings are written without escaping unless Escaped mode is requested, see
// Mode. None of the types in this package are safe for concurrent use.
package json

import (
	"golang.org/x/exp/constraints"
)

// Element is a JSON value of any shape.
type Element struct {
	p payload
}

// New returns an empty Object.
func New() *Element { return &Element{p: Object{}} }

func Null() *Element { return &Element{p: nullValue{}} }

func Bool(v bool) *Element { return &Element{p: boolValue(v)} }

// Number wraps any integer or floating point value. Negative integers are
// stored as int64, other integers as uint64 and floats keep their bit size.
func Number[N constraints.Integer | constraints.Float](n N) *Element {
	return &Element{p: numberOf(n)}
}

func numberOf[N constraints.Integer | constraints.Float](n N) payload {
	one, two := N(1), N(2)
	switch {
	case one/two != 0:
		// 2^24+1 survives a float64 round trip but not a float32 one.
		above24 := 16777217.0
		if float64(N(above24)) != above24 {
			return floatValue{float64(n), 32}
		}
		return floatValue{float64(n), 64}
	case n < 0:
		return intValue(int64(n))
	default:
		return uintValue(uint64(n))
	}
}

func String[S ~string | ~[]byte](s S) *Element { return &Element{p: stringValue(s)} }

// FromObject returns an Element holding a deep copy of o.
func FromObject(o Object) *Element { return &Element{p: o.clone()} }

// FromArray returns an Element holding a deep copy of a.
func FromArray(a Array) *Element { return &Element{p: a.cloneArray()} }

// Shape reports the kind of payload e holds.
func (e *Element) Shape() Shape {
	if e == nil {
		return ShapeNull
	}
	return e.payload().shape()
}

// payload returns the current payload, installing an empty Object in a zero
// Element.
func (e *Element) payload() payload {
	if e.p == nil {
		e.p = Object{}
	}
	return e.p
}

// Len is the number of entries of an Object or elements of an Array, and 0 for
// every other shape.
func (e *Element) Len() int {
	if e == nil {
		return 0
	}
	switch p := e.payload().(type) {
	case Object:
		return len(p)
	case *Array:
		return len(*p)
	}
	return 0
}

// Clone returns a deep copy of e. Nothing is shared between e and the copy
// except opaque leaves that are pointers and do not implement Cloner.
func (e *Element) Clone() *Element {
	if e == nil {
		return Null()
	}
	return &Element{p: e.payload().clone()}
}

// Assign replaces the payload of e with a deep copy of the payload of v,
// whatever the shape of either. A nil v makes e null. It returns e.
func (e *Element) Assign(v *Element) *Element {
	switch {
	case v == e:
	case v == nil:
		e.p = nullValue{}
	default:
		e.p = v.payload().clone()
	}
	return e
}

// Key returns the value at k of an Object, creating it as an empty Object if k
// is absent. It fails with ErrShapeMismatch if e is not an Object.
func (e *Element) Key(k string) (v *Element, err error) {
	if e == nil {
		err = e.mismatch("key", ShapeObject)
		return
	}
	o, ok := e.payload().(Object)
	if !ok {
		err = e.mismatch("key", ShapeObject)
		return
	}
	var found bool
	if v, found = o[k]; !found {
		v = New()
		o[k] = v
	} else if v == nil {
		v = Null()
		o[k] = v
	}
	return
}

// Index returns the element at position i of an Array. It fails with
// ErrShapeMismatch if e is not an Array and with ErrOutOfRange if i is not a
// position in it. Arrays never grow by indexing.
func (e *Element) Index(i int) (v *Element, err error) {
	if e == nil {
		err = e.mismatch("index", ShapeArray)
		return
	}
	a, ok := e.payload().(*Array)
	if !ok {
		err = e.mismatch("index", ShapeArray)
		return
	}
	if i < 0 || i >= len(*a) {
		err = &Error{Op: "index", Kind: ErrOutOfRange, Want: ShapeArray,
			Got: ShapeArray, Index: i, Len: len(*a)}
		return
	}
	if v = (*a)[i]; v == nil {
		v = Null()
		(*a)[i] = v
	}
	return
}

// RawObject returns the Object held by e for bulk manipulation. Changes to it
// are changes to e. Every Element stored in it must be owned by that slot
// alone: use Clone to put a copy of another value there, never the same
// pointer twice, and never e or one of its ancestors.
func (e *Element) RawObject() (o Object, err error) {
	if e == nil {
		err = e.mismatch("raw object", ShapeObject)
		return
	}
	var ok bool
	if o, ok = e.payload().(Object); !ok {
		err = e.mismatch("raw object", ShapeObject)
	}
	return
}

// RawArray returns the Array held by e for bulk manipulation, including
// changing its length. Changes to it are changes to e. The ownership rule of
// RawObject applies to its elements.
func (e *Element) RawArray() (a *Array, err error) {
	if e == nil {
		err = e.mismatch("raw array", ShapeArray)
		return
	}
	var ok bool
	if a, ok = e.payload().(*Array); !ok {
		err = e.mismatch("raw array", ShapeArray)
	}
	return
}

// AppendFormat appends the JSON text of e to dst. A nil Element is null.
func (e *Element) AppendFormat(dst []byte, m Mode) (b []byte) {
	if e == nil {
		return AppendNull(dst)
	}
	return e.payload().appendTo(dst, m)
}

// Marshal appends the JSON text of e in Raw mode. It makes an Element usable
// wherever a codec.JSON is.
func (e *Element) Marshal(dst []byte) (b []byte) { return e.AppendFormat(dst, Raw) }

// String returns the JSON text of e in Raw mode.
func (e *Element) String() string { return string(e.AppendFormat(nil, Raw)) }

func (e *Element) mismatch(op string, want Shape) error {
	return &Error{Op: op, Kind: ErrShapeMismatch, Want: want, Got: e.Shape()}
}
