package json

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPath(t *testing.T) {
	e := NewObject(
		KV("bar", NewArray(Number(1), Number(2), Number(3))),
	)
	v, err := e.Path(K("bar"), I(2))
	require.NoError(t, err)
	require.Equal(t, "3", v.String())

	require.NoError(t, e.Set(NewObject(KV("x", Null())), K("bar"), I(0)))
	require.NoError(t, e.Set(Bool(true), K("bar"), I(0), K("y")))
	require.Equal(t, `{"bar": [{"x": null, "y": true},2,3]}`, e.String())

	v, err = e.Path()
	require.NoError(t, err)
	require.Same(t, e, v)
}

func TestPathErrors(t *testing.T) {
	e := NewObject(KV("bar", NewArray(Number(1))))
	_, err := e.Path(K("bar"), I(4))
	require.ErrorIs(t, err, ErrOutOfRange)
	require.Contains(t, err.Error(), "path segment 1 [4]")

	err = e.Set(Number(1), K("bar"), K("x"))
	require.ErrorIs(t, err, ErrShapeMismatch)
	require.Contains(t, err.Error(), `path segment 1 "x"`)
	require.Equal(t, `{"bar": [1]}`, e.String())
}

func TestMust(t *testing.T) {
	e := New()
	require.NotPanics(t, func() { Must(e.Key("a")).Assign(Number(1)) })
	require.Equal(t, `{"a": 1}`, e.String())
	require.Panics(t, func() { Must(Number(1).Key("a")) })
}
