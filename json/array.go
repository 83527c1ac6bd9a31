package json

// Array is a JSON array. A nil element is written as null. As with Object, each
// element belongs to its position only; store v.Clone() to repeat a value.
type Array []*Element

// NewArray builds an Array Element holding copies of elems.
func NewArray(elems ...*Element) *Element {
	return &Element{p: Array(elems).cloneArray()}
}

func (a Array) cloneArray() *Array {
	c := make(Array, len(a))
	for i, v := range a {
		c[i] = v.Clone()
	}
	return &c
}

func (a *Array) shape() Shape   { return ShapeArray }
func (a *Array) clone() payload { return a.cloneArray() }

func (a *Array) appendTo(dst []byte, m Mode) (b []byte) { return AppendArray(dst, *a, m) }

// Marshal appends the JSON text of a in Raw mode.
func (a Array) Marshal(dst []byte) (b []byte) { return AppendArray(dst, a, Raw) }

func (a Array) String() string { return string(a.Marshal(nil)) }
