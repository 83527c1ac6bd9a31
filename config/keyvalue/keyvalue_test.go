package keyvalue

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

type cfg struct {
	Name    string   `env:"NAME"`
	Port    int      `env:"PORT"`
	On      bool     `env:"ON"`
	List    []string `env:"LIST"`
	Skipped string
}

func TestPrintEnv(t *testing.T) {
	buf := &bytes.Buffer{}
	PrintEnv(&cfg{Name: "two words", Port: 80, On: true, List: []string{"a", "b"}}, buf)
	require.Equal(t, `#!/usr/bin/env bash
export LIST=a,b
export NAME='two words'
export ON=true
export PORT=80
`, buf.String())
}

func TestEnvKVValue(t *testing.T) {
	kvs := EnvKV(cfg{Name: "x"})
	require.Len(t, kvs, 4)
	require.Equal(t, KV{"NAME", "x"}, kvs[0])
	require.Equal(t, "''", quote(""))
	require.Equal(t, `'it'\''s'`, quote("it's"))
}
