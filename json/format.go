package json

import (
	"math"
	"sort"
	"strconv"

	"simplejson.mleku.dev/codec"
	"simplejson.mleku.dev/ints"
	"simplejson.mleku.dev/text"
)

// The Append functions below are the formatting rules for each shape. They
// never fail.

// literal texts of null and the booleans
const (
	nullText  = "null"
	trueText  = "true"
	falseText = "false"
)

func AppendNull(dst []byte) (b []byte) { return append(dst, nullText...) }

func AppendBool(dst []byte, v bool) (b []byte) {
	if v {
		return append(dst, trueText...)
	}
	return append(dst, falseText...)
}

func AppendInt(dst []byte, v int64) (b []byte) { return ints.AppendInt(dst, v) }

func AppendUint(dst []byte, v uint64) (b []byte) { return ints.AppendUint(dst, v) }

// AppendFloat writes the shortest decimal text that reads back as the same
// float64. Plain notation is used for magnitudes in [1e-6, 1e21), exponent
// notation outside of it. NaN and the infinities have no JSON form and are
// written as null.
func AppendFloat(dst []byte, v float64) (b []byte) { return appendFloat(dst, v, 64) }

func appendFloat(dst []byte, v float64, bits int) (b []byte) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return AppendNull(dst)
	}
	f := byte('f')
	if abs := math.Abs(v); abs != 0 && (abs < 1e-6 || abs >= 1e21) {
		f = 'e'
	}
	return strconv.AppendFloat(dst, v, f, -1, bits)
}

// AppendString writes s between double quotes. In Raw mode nothing is escaped.
func AppendString(dst []byte, s string, m Mode) (b []byte) {
	return text.AppendQuote(dst, []byte(s), m.closure())
}

// AppendArray writes a as "[" elements joined by "," "]".
func AppendArray(dst []byte, a Array, m Mode) (b []byte) {
	b = append(dst, '[')
	last := len(a) - 1
	for i, v := range a {
		b = v.AppendFormat(b, m)
		if i != last {
			b = append(b, ',')
		}
	}
	b = append(b, ']')
	return
}

// AppendObject writes o as "{" entries joined by ", " "}" where each entry is
// the quoted key, ": " and the value. Entries are in ascending key order.
func AppendObject(dst []byte, o Object, m Mode) (b []byte) {
	b = append(dst, '{')
	ac := m.closure()
	keys := o.Keys()
	last := len(keys) - 1
	for i, k := range keys {
		b = text.AppendKey(b, []byte(k), ac)
		b = o[k].AppendFormat(b, m)
		if i != last {
			b = append(b, ',', ' ')
		}
	}
	b = append(b, '}')
	return
}

// AppendOpaque hands the formatting of v entirely to v.
func AppendOpaque(dst []byte, v codec.JSON) (b []byte) {
	if v == nil {
		return AppendNull(dst)
	}
	return v.Marshal(dst)
}

// Format returns the JSON text of v.
func Format(v codec.JSON) string { return string(AppendOpaque(nil, v)) }

func sortedKeys(o Object) (keys []string) {
	keys = make([]string, 0, len(o))
	for k := range o {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return
}
