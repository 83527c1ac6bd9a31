package ints

import (
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
	"lukechampine.com/frand"
)

func TestAppendUint(t *testing.T) {
	b := make([]byte, 0, 20)
	for _, v := range []uint64{0, 1, 9, 10, 9999, 10000, 10001, 100000000, math.MaxUint64} {
		b = AppendUint(b[:0], v)
		require.Equal(t, strconv.FormatUint(v, 10), string(b))
	}
	for range 100000 {
		v := frand.Uint64n(math.MaxUint64)
		b = AppendUint(b[:0], v)
		require.Equal(t, strconv.FormatUint(v, 10), string(b))
	}
}

func TestAppendInt(t *testing.T) {
	b := make([]byte, 0, 21)
	for _, v := range []int64{0, -1, 1, -10000, math.MinInt64, math.MaxInt64} {
		b = AppendInt(b[:0], v)
		require.Equal(t, strconv.FormatInt(v, 10), string(b))
	}
	for range 100000 {
		v := int64(frand.Uint64n(math.MaxUint64))
		b = AppendInt(b[:0], v)
		require.Equal(t, strconv.FormatInt(v, 10), string(b))
	}
}

func TestAppendKeepsPrefix(t *testing.T) {
	require.Equal(t, "n=69420", string(AppendUint([]byte("n="), 69420)))
}

func BenchmarkAppendUint(bb *testing.B) {
	b := make([]byte, 0, 20)
	const nTests = 10000
	testInts := make([]uint64, nTests)
	for i := range nTests {
		testInts[i] = frand.Uint64n(math.MaxInt64)
	}
	bb.Run("AppendUint", func(bb *testing.B) {
		bb.ReportAllocs()
		for i := 0; i < bb.N; i++ {
			b = AppendUint(b[:0], testInts[i%nTests])
		}
	})
	bb.Run("strconv", func(bb *testing.B) {
		bb.ReportAllocs()
		for i := 0; i < bb.N; i++ {
			b = strconv.AppendUint(b[:0], testInts[i%nTests], 10)
		}
	})
}
