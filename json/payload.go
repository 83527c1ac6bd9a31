package json

import (
	"simplejson.mleku.dev/codec"
)

// payload is the single value an Element owns. Every shape has exactly one
// implementation, Object and *Array are their own payloads.
type payload interface {
	shape() Shape
	clone() payload
	appendTo(dst []byte, m Mode) (b []byte)
}

type nullValue struct{}

func (nullValue) shape() Shape                           { return ShapeNull }
func (nullValue) clone() payload                         { return nullValue{} }
func (nullValue) appendTo(dst []byte, _ Mode) (b []byte) { return AppendNull(dst) }

type boolValue bool

func (v boolValue) shape() Shape   { return ShapeBool }
func (v boolValue) clone() payload { return v }
func (v boolValue) appendTo(dst []byte, _ Mode) (b []byte) {
	return AppendBool(dst, bool(v))
}

type intValue int64

func (v intValue) shape() Shape   { return ShapeNumber }
func (v intValue) clone() payload { return v }
func (v intValue) appendTo(dst []byte, _ Mode) (b []byte) {
	return AppendInt(dst, int64(v))
}

type uintValue uint64

func (v uintValue) shape() Shape   { return ShapeNumber }
func (v uintValue) clone() payload { return v }
func (v uintValue) appendTo(dst []byte, _ Mode) (b []byte) {
	return AppendUint(dst, uint64(v))
}

// floatValue remembers the precision it was created with so a float32 is
// written with the digits of a float32.
type floatValue struct {
	v    float64
	bits int
}

func (v floatValue) shape() Shape   { return ShapeNumber }
func (v floatValue) clone() payload { return v }
func (v floatValue) appendTo(dst []byte, _ Mode) (b []byte) {
	return appendFloat(dst, v.v, v.bits)
}

type stringValue string

func (v stringValue) shape() Shape   { return ShapeString }
func (v stringValue) clone() payload { return v }
func (v stringValue) appendTo(dst []byte, m Mode) (b []byte) {
	return AppendString(dst, string(v), m)
}

type opaqueValue struct{ v codec.JSON }

func (v opaqueValue) shape() Shape { return ShapeOpaque }

func (v opaqueValue) clone() payload {
	if c, ok := v.v.(Cloner); ok {
		return opaqueValue{c.CloneJSON()}
	}
	return v
}

func (v opaqueValue) appendTo(dst []byte, _ Mode) (b []byte) {
	return AppendOpaque(dst, v.v)
}
