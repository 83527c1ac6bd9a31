// Package yamlsrc turns YAML documents into json.Element trees. It is the
// record source of the jsonstream command: every document of a YAML stream
// whose root is a mapping becomes one object of the output array.
package yamlsrc

import (
	"io"

	"gopkg.in/yaml.v3"

	"simplejson.mleku.dev/chk"
	"simplejson.mleku.dev/errorf"
	"simplejson.mleku.dev/json"
	"simplejson.mleku.dev/log"
)

const mergeTag = "!!merge"

// Decoder reads a stream of YAML documents.
type Decoder struct {
	d *yaml.Decoder
	n int
}

func NewDecoder(r io.Reader) *Decoder { return &Decoder{d: yaml.NewDecoder(r)} }

// Documents is the number of documents read so far.
func (d *Decoder) Documents() int { return d.n }

// Next converts the next document. It returns io.EOF after the last one.
func (d *Decoder) Next() (e *json.Element, err error) {
	var doc yaml.Node
	if err = d.d.Decode(&doc); err != nil {
		if err != io.EOF {
			err = errorf.E("yaml document %d: %s", d.n, err)
		}
		return
	}
	d.n++
	log.T.F("converting yaml document %d", d.n-1)
	return Convert(&doc)
}

// NextObject converts the next document and requires it to be a mapping.
func (d *Decoder) NextObject() (o json.Object, err error) {
	var e *json.Element
	if e, err = d.Next(); err != nil {
		return
	}
	if o, err = e.RawObject(); err != nil {
		err = errorf.E("yaml document %d: want a mapping, have %s", d.n-1, e.Shape())
	}
	return
}

// Convert builds an Element from a parsed YAML node. Scalars are typed by their
// resolved tag, binary scalars become json.Base64 leaves, timestamps and
// unknown tags are kept as strings.
func Convert(n *yaml.Node) (e *json.Element, err error) {
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return json.Null(), nil
		}
		return Convert(n.Content[0])
	case yaml.AliasNode:
		return Convert(n.Alias)
	case yaml.SequenceNode:
		a := make(json.Array, len(n.Content))
		for i, c := range n.Content {
			if a[i], err = Convert(c); err != nil {
				return
			}
		}
		return json.FromArray(a), nil
	case yaml.MappingNode:
		o := json.Object{}
		if err = mapping(o, n); err != nil {
			return
		}
		return json.FromObject(o), nil
	case yaml.ScalarNode:
		return scalar(n)
	}
	err = errorf.E("yaml line %d: unsupported node kind %d", n.Line, n.Kind)
	return
}

// mapping adds the entries of n to o. Explicit keys override merged ones
// whatever their order in the document.
func mapping(o json.Object, n *yaml.Node) (err error) {
	var merged []*yaml.Node
	for i := 0; i+1 < len(n.Content); i += 2 {
		k, v := n.Content[i], n.Content[i+1]
		if k.ShortTag() == mergeTag {
			merged = append(merged, v)
			continue
		}
		if k.Kind != yaml.ScalarNode {
			err = errorf.E("yaml line %d: mapping key must be a scalar", k.Line)
			return
		}
		if o[k.Value], err = Convert(v); err != nil {
			return
		}
	}
	for _, m := range merged {
		src := m
		if src.Kind == yaml.AliasNode {
			src = src.Alias
		}
		var sources []*yaml.Node
		switch src.Kind {
		case yaml.MappingNode:
			sources = []*yaml.Node{src}
		case yaml.SequenceNode:
			sources = src.Content
		default:
			err = errorf.E("yaml line %d: merge value must be a mapping", m.Line)
			return
		}
		for _, s := range sources {
			var extra json.Object
			var e *json.Element
			if e, err = Convert(s); err != nil {
				return
			}
			if extra, err = e.RawObject(); err != nil {
				err = errorf.E("yaml line %d: merge value must be a mapping", s.Line)
				return
			}
			for k, v := range extra {
				if _, ok := o[k]; !ok {
					o[k] = v
				}
			}
		}
	}
	return
}

func scalar(n *yaml.Node) (e *json.Element, err error) {
	switch n.ShortTag() {
	case "!!null":
		return json.Null(), nil
	case "!!bool":
		var b bool
		if err = n.Decode(&b); chk.E(err) {
			return
		}
		return json.Bool(b), nil
	case "!!int":
		var i int64
		if err = n.Decode(&i); err == nil {
			return json.Number(i), nil
		}
		var u uint64
		if err = n.Decode(&u); chk.E(err) {
			return
		}
		return json.Number(u), nil
	case "!!float":
		var f float64
		if err = n.Decode(&f); chk.E(err) {
			return
		}
		return json.Number(f), nil
	case "!!binary":
		// yaml hands binary scalars over as the decoded bytes in a string
		var b string
		if err = n.Decode(&b); chk.E(err) {
			return
		}
		return json.Opaque(json.Base64(b)), nil
	}
	return json.String(n.Value), nil
}
