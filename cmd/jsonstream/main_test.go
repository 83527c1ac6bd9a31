package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"simplejson.mleku.dev/json"
	"simplejson.mleku.dev/stream"
)

var demoSteps = []string{
	`{"bar": [1,2,3], "foo": {"abc": 1.23, "def": 456}}`,
	`{"bar": [1,2,3], "foo": {"": {"123": 123}, "abc": 1.23, "def": 456}}`,
	`{"bar": [1,1000,3], "foo": {"": {"123": 123}, "abc": 1.23, "def": 456}}`,
	`{"bar": [1,-1,3], "foo": {"": {"123": 123}, "abc": 1.23, "def": 456}}`,
	`{"bar": [1,{ "complex": true, "real": 1, "imag": 2},3], "foo": {"": {"123": 123}, "abc": 1.23, "def": 456}}`,
	`{"bar": [1,null,3], "foo": {"": {"123": 123}, "abc": 1.23, "def": 456}}`,
}

func TestDemo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.json")
	out := &bytes.Buffer{}
	require.NoError(t, demo(out, path))
	require.Equal(t, strings.Join(demoSteps, "\n")+"\n", out.String())
	b, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "[\n"+strings.Join(demoSteps, ",\n")+"\n]", string(b))
}

func TestFromYAML(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.yaml")
	require.NoError(t, os.WriteFile(in, []byte(`name: "a \"b\""
---
name: c
n: 2
`), 0o600))
	path := filepath.Join(dir, "out.json")
	require.NoError(t, fromYAML(in, path, stream.WithMode(json.Escaped)))
	b, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "[\n{\"name\": \"a \\\"b\\\"\"},\n{\"n\": 2, \"name\": \"c\"}\n]", string(b))
}

func TestFromYAMLRejectsNonMapping(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.yaml")
	require.NoError(t, os.WriteFile(in, []byte("a: 1\n---\n- 1\n"), 0o600))
	path := filepath.Join(dir, "out.json")
	err := fromYAML(in, path)
	require.Error(t, err)
	b, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "[\n{\"a\": 1}\n]", string(b))
}
