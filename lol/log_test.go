package lol

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/require"
)

func TestLevelFiltering(t *testing.T) {
	color.NoColor = true
	NoTimeStomp.Store(true)
	defer NoTimeStomp.Store(false)
	buf := &bytes.Buffer{}
	l, c, e := New(buf)
	prev := Level.Load()
	defer Level.Store(prev)
	Level.Store(Warn)
	l.D.Ln("hidden")
	require.Zero(t, buf.Len())
	l.W.F("shown %d", 1)
	require.True(t, strings.Contains(buf.String(), "WRN shown 1"))
	buf.Reset()
	require.False(t, c.E(nil))
	require.True(t, c.D(errors.New("quiet")))
	require.Zero(t, buf.Len())
	err := e.E("failed %s", "here")
	require.EqualError(t, err, "failed here")
	require.True(t, strings.Contains(buf.String(), "ERR failed here"))
}

func TestGetLogLevel(t *testing.T) {
	require.Equal(t, Debug, GetLogLevel("debug"))
	require.Equal(t, Info, GetLogLevel("nonsense"))
}
