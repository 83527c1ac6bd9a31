package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/require"

	"simplejson.mleku.dev/json"
	"simplejson.mleku.dev/log"
	"simplejson.mleku.dev/lol"
)

func TestDefaults(t *testing.T) {
	c, err := New("")
	require.NoError(t, err)
	require.Equal(t, "jsonstream", c.AppName)
	require.Equal(t, "test.json", c.Output)
	require.Equal(t, 64000, c.BufferSize)
	require.Equal(t, json.Raw, c.Mode())
}

func TestFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path,
		[]byte("OUTPUT=records.json\nESCAPE=true\nLOG_LEVEL=warn\n"), 0o600))
	c, err := New(path)
	require.NoError(t, err)
	require.Equal(t, "records.json", c.Output)
	require.Equal(t, json.Escaped, c.Mode())

	buf := &bytes.Buffer{}
	c.PrintEnv(buf)
	require.True(t, strings.Contains(buf.String(), "export OUTPUT=records.json\n"))
	require.True(t, strings.Contains(buf.String(), "export ESCAPE=true\n"))
}

func TestOpenLog(t *testing.T) {
	c := &C{}
	closer, err := c.OpenLog()
	require.NoError(t, err)
	closer()

	color.NoColor = true
	prev := lol.Level.Load()
	defer lol.Level.Store(prev)
	lol.Level.Store(lol.Info)
	c.LogFile = filepath.Join(t.TempDir(), "jsonstream.log")
	closer, err = c.OpenLog()
	require.NoError(t, err)
	log.I.Ln("written to file")
	closer()
	log.I.Ln("back on stderr")
	b, err := os.ReadFile(c.LogFile)
	require.NoError(t, err)
	require.True(t, strings.Contains(string(b), "written to file"))
	require.False(t, strings.Contains(string(b), "back on stderr"))

	c.LogFile = filepath.Join(t.TempDir(), "missing", "jsonstream.log")
	_, err = c.OpenLog()
	require.Error(t, err)
}
