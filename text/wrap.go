// Package text provides the quoting and escaping helpers used to write JSON
// strings and object keys.
package text

type AppendBytesClosure func(dst, src []byte) []byte

// Noop appends src unchanged.
func Noop(dst, src []byte) []byte { return append(dst, src...) }

func AppendQuote(dst, src []byte, ac AppendBytesClosure) []byte {
	dst = append(dst, '"')
	dst = ac(dst, src)
	dst = append(dst, '"')
	return dst
}

// AppendKey writes a quoted object key followed by the colon and a space.
func AppendKey(dst, k []byte, ac AppendBytesClosure) []byte {
	dst = AppendQuote(dst, k, ac)
	return append(dst, ':', ' ')
}
