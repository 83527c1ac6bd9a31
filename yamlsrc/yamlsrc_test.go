package yamlsrc

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"simplejson.mleku.dev/json"
)

const records = `
name: first
count: 3
ratio: 0.5
big: 18446744073709551615
ok: true
none: ~
tags: [a, b]
blob: !!binary aGVsbG8=
---
defaults: &d
  colour: red
  size: 1
item:
  <<: *d
  size: 2
---
- not
- a mapping
`

func TestDecoder(t *testing.T) {
	d := NewDecoder(strings.NewReader(records))
	o, err := d.NextObject()
	require.NoError(t, err)
	require.Equal(t,
		`{"big": 18446744073709551615, "blob": "aGVsbG8=", "count": 3, "name": "first", "none": null, "ok": true, "ratio": 0.5, "tags": ["a","b"]}`,
		o.String())

	o, err = d.NextObject()
	require.NoError(t, err)
	item, err := json.FromObject(o).Key("item")
	require.NoError(t, err)
	require.Equal(t, `{"colour": "red", "size": 2}`, item.String())

	_, err = d.NextObject()
	require.Error(t, err)
	require.Contains(t, err.Error(), "yaml document 2: want a mapping, have array")

	_, err = d.Next()
	require.ErrorIs(t, err, io.EOF)
	require.Equal(t, 3, d.Documents())
}

func TestConvertScalarsAndSequences(t *testing.T) {
	d := NewDecoder(strings.NewReader("[1, -2, 1.5, 'x', null, false, [], {}]"))
	e, err := d.Next()
	require.NoError(t, err)
	require.Equal(t, json.ShapeArray, e.Shape())
	require.Equal(t, `[1,-2,1.5,"x",null,false,[],{}]`, e.String())
}

func TestConvertEmptyDocument(t *testing.T) {
	d := NewDecoder(strings.NewReader("--- \n...\n"))
	e, err := d.Next()
	if err == io.EOF {
		// an empty stream has no documents at all
		return
	}
	require.NoError(t, err)
	require.Equal(t, "null", e.String())
}

func TestInvalidYAML(t *testing.T) {
	d := NewDecoder(strings.NewReader("a: [unterminated"))
	_, err := d.Next()
	require.Error(t, err)
	require.NotErrorIs(t, err, io.EOF)
}
