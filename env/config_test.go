package env

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte(`#!/usr/bin/env bash
# comment
export OUTPUT='out file.json'
LOG_LEVEL = debug

broken line
`), 0o600))
	e, err := GetEnv(path)
	require.NoError(t, err)
	require.Equal(t, Env{"OUTPUT": "out file.json", "LOG_LEVEL": "debug"}, e)
	v, ok := e.LookupEnv("OUTPUT")
	require.True(t, ok)
	require.Equal(t, "out file.json", v)
	t.Setenv("SIMPLEJSON_TEST_FALLBACK", "yes")
	v, ok = e.LookupEnv("SIMPLEJSON_TEST_FALLBACK")
	require.True(t, ok)
	require.Equal(t, "yes", v)
}

func TestGetEnvMissing(t *testing.T) {
	_, err := GetEnv(filepath.Join(t.TempDir(), "nope"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
