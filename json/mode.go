package json

import (
	"simplejson.mleku.dev/text"
)

// Mode selects how string contents and object keys are written.
type Mode int

const (
	// Raw writes string bytes between quotes exactly as they are. A string
	// containing a quote, a backslash or a control character produces invalid
	// JSON in this mode. It is the default.
	Raw Mode = iota
	// Escaped writes strings with the RFC8259 escapes applied (see text.Escape).
	Escaped
)

func (m Mode) String() string {
	if m == Escaped {
		return "escaped"
	}
	return "raw"
}

// ParseMode returns Escaped for "escaped" and Raw for anything else.
func ParseMode(s string) Mode {
	if s == "escaped" {
		return Escaped
	}
	return Raw
}

func (m Mode) closure() text.AppendBytesClosure {
	if m == Escaped {
		return text.Escape
	}
	return text.Noop
}
