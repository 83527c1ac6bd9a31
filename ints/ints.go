// Package ints is an optimised encoder for decimal numbers in ASCII format. It
// is faster than strconv in part because it uses a base of 10000 and a lookup
// table.
package ints

import (
	_ "embed"
)

// run this to regenerate (pointlessly) the base 10 array of 4 places per entry
//go:generate go run ./gen/.

//go:embed base10k.txt
var base10k []byte

var powers = []uint64{
	1,
	1_0000,
	1_0000_0000,
	1_0000_0000_0000,
	1_0000_0000_0000_0000,
}

// AppendUint appends the decimal form of v to dst, four digits at a time.
func AppendUint(dst []byte, v uint64) (b []byte) {
	b = dst
	if v == 0 {
		b = append(b, '0')
		return
	}
	var trimmed bool
	for k := len(powers) - 1; k >= 0; k-- {
		q := v / powers[k]
		if !trimmed && q == 0 {
			continue
		}
		offset := q * 4
		bb := base10k[offset : offset+4]
		if !trimmed {
			for i := range bb {
				if bb[i] != '0' {
					bb = bb[i:]
					break
				}
			}
			trimmed = true
		}
		b = append(b, bb...)
		v -= q * powers[k]
	}
	return
}

// AppendInt appends the decimal form of v to dst with a leading minus sign for
// negative values.
func AppendInt(dst []byte, v int64) (b []byte) {
	if v >= 0 {
		return AppendUint(dst, uint64(v))
	}
	b = append(dst, '-')
	// -(v+1)+1 avoids overflow on math.MinInt64
	return AppendUint(b, uint64(-(v+1))+1)
}
