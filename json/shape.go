package json

// Shape is the kind of payload an Element currently holds.
type Shape int

const (
	ShapeNull Shape = iota
	ShapeBool
	ShapeNumber
	ShapeString
	ShapeObject
	ShapeArray
	ShapeOpaque
)

var shapeNames = []string{
	"null",
	"bool",
	"number",
	"string",
	"object",
	"array",
	"opaque",
}

func (s Shape) String() string {
	if s < 0 || int(s) >= len(shapeNames) {
		return "unknown"
	}
	return shapeNames[s]
}
