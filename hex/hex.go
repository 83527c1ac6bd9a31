// Package hex is a thin wrapper around the SIMD hex encoder, used to write
// binary leaves as quoted hexadecimal strings.
package hex

import (
	"github.com/templexxx/xhex"
)

// EncAppend appends the hexadecimal form of src to dst.
func EncAppend(dst, src []byte) (b []byte) {
	l := len(dst)
	dst = append(dst, make([]byte, len(src)*2)...)
	xhex.Encode(dst[l:], src)
	return dst
}
