package hex

import (
	stdhex "encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"
	"lukechampine.com/frand"
)

func TestEncAppend(t *testing.T) {
	for i := 0; i < 100; i++ {
		src := frand.Bytes(frand.Intn(64))
		prefix := []byte("x")
		b := EncAppend(prefix, src)
		require.Equal(t, "x"+stdhex.EncodeToString(src), string(b))
	}
}
