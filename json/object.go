package json

// Object is a JSON object. Entries are written in ascending key order. A nil
// value is written as null.
//
// Each value belongs to its entry only. Storing one *Element under two keys, or
// in an Object that it contains, aliases or loops the tree, and a loop never
// finishes formatting. Store v.Clone() to copy a value.
type Object map[string]*Element

// KeyValue is one entry of an object literal.
type KeyValue struct {
	Key   string
	Value *Element
}

// KV is shorthand for a KeyValue.
func KV(k string, v *Element) KeyValue { return KeyValue{k, v} }

// NewObject builds an Object Element from an ordered list of entries. Every
// value is copied. When a key repeats the last entry wins.
func NewObject(kvs ...KeyValue) *Element {
	o := make(Object, len(kvs))
	for _, kv := range kvs {
		o[kv.Key] = kv.Value.Clone()
	}
	return &Element{p: o}
}

// Keys returns the keys of o in the order they are written.
func (o Object) Keys() []string { return sortedKeys(o) }

func (o Object) shape() Shape { return ShapeObject }

func (o Object) clone() payload {
	c := make(Object, len(o))
	for k, v := range o {
		c[k] = v.Clone()
	}
	return c
}

func (o Object) appendTo(dst []byte, m Mode) (b []byte) { return AppendObject(dst, o, m) }

// Marshal appends the JSON text of o in Raw mode.
func (o Object) Marshal(dst []byte) (b []byte) { return AppendObject(dst, o, Raw) }

func (o Object) String() string { return string(o.Marshal(nil)) }
