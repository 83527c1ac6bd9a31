package json

import (
	"encoding/base64"

	"simplejson.mleku.dev/codec"
	"simplejson.mleku.dev/hex"
)

// Cloner is implemented by opaque leaves that need more than a value copy to be
// cloned, such as pointers or types holding slices.
type Cloner interface {
	codec.JSON
	CloneJSON() codec.JSON
}

// Opaque wraps any value that formats itself. Elements, Objects and Arrays are
// recognised and get their own shape instead of becoming opaque. A nil v is
// null.
func Opaque(v codec.JSON) *Element {
	switch t := v.(type) {
	case nil:
		return Null()
	case *Element:
		return t.Clone()
	case Object:
		return FromObject(t)
	case *Object:
		if t == nil {
			return Null()
		}
		return FromObject(*t)
	case Array:
		return FromArray(t)
	case *Array:
		if t == nil {
			return Null()
		}
		return FromArray(*t)
	}
	return &Element{p: opaqueValue{v}}
}

// AppendFunc formats a value of type T.
type AppendFunc[T any] func(dst []byte, v T) (b []byte)

// Func makes an opaque leaf of a value of a type that has no Marshal method of
// its own, such as a type from another package, using fn to format it.
func Func[T any](v T, fn AppendFunc[T]) *Element {
	return &Element{p: opaqueValue{funcLeaf[T]{v, fn}}}
}

type funcLeaf[T any] struct {
	v  T
	fn AppendFunc[T]
}

func (f funcLeaf[T]) Marshal(dst []byte) (b []byte) { return f.fn(dst, f.v) }

// Hex is binary data written as a quoted hexadecimal string.
type Hex []byte

func (h Hex) Marshal(dst []byte) (b []byte) {
	b = append(dst, '"')
	b = hex.EncAppend(b, h)
	b = append(b, '"')
	return
}

func (h Hex) CloneJSON() codec.JSON { return append(Hex(nil), h...) }

// Base64 is binary data written as a quoted string in standard base64 encoding.
type Base64 []byte

func (b2 Base64) Marshal(dst []byte) (b []byte) {
	b = append(dst, '"')
	b = base64.StdEncoding.AppendEncode(b, b2)
	b = append(b, '"')
	return
}

func (b2 Base64) CloneJSON() codec.JSON { return append(Base64(nil), b2...) }
