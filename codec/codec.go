// Package codec holds the extension interface of the value engine: anything that
// can append its own JSON form to a byte slice can be carried as a leaf of a
// json.Element.
package codec

// JSON is a write-only simplification of json.Marshaler. There is no error on
// the Marshal side of the operation: a value that has a formatter always
// formats.
type JSON interface {
	// Marshal converts the data of the type into JSON, appending it to the
	// provided slice and returning the extended slice.
	Marshal(dst []byte) (b []byte)
}

// AppendFunc adapts a plain append function to the JSON interface.
type AppendFunc func(dst []byte) (b []byte)

// Marshal calls f.
func (f AppendFunc) Marshal(dst []byte) (b []byte) { return f(dst) }
