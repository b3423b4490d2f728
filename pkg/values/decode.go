package values

import (
	"bytes"
	"io"
	"strconv"
	"strings"

	"github.com/beevik/etree"
	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/outstanding/pkg/errors"
)

// FromYAML decodes a single YAML (or JSON) document into a Value.
// Mapping key order is preserved.
func FromYAML(data []byte) (Value, error) {
	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return NewNull(), errors.Wrap(err, errors.ErrValueParse, "failed to parse YAML")
	}
	if node.Kind == 0 {
		return NewNull(), nil
	}
	return fromNode(&node)
}

// DecodeRecords decodes a stream of records from YAML or JSON. A
// top-level sequence contributes one record per item; multiple YAML
// documents each contribute their own records.
func DecodeRecords(data []byte) ([]Value, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	var records []Value
	for {
		var node yaml.Node
		err := dec.Decode(&node)
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrValueParse, "failed to parse records")
		}
		v, err := fromNode(&node)
		if err != nil {
			return nil, err
		}
		if v.Kind() == List {
			records = append(records, v.Items()...)
		} else if !v.IsNull() {
			records = append(records, v)
		}
	}
	return records, nil
}

func fromNode(n *yaml.Node) (Value, error) {
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return NewNull(), nil
		}
		return fromNode(n.Content[0])
	case yaml.AliasNode:
		return fromNode(n.Alias)
	case yaml.SequenceNode:
		items := make([]Value, 0, len(n.Content))
		for _, c := range n.Content {
			v, err := fromNode(c)
			if err != nil {
				return NewNull(), err
			}
			items = append(items, v)
		}
		return NewList(items...), nil
	case yaml.MappingNode:
		entries := make([]Entry, 0, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			v, err := fromNode(n.Content[i+1])
			if err != nil {
				return NewNull(), err
			}
			entries = append(entries, Entry{Key: n.Content[i].Value, Value: v})
		}
		return NewMap(entries...), nil
	case yaml.ScalarNode:
		return fromScalar(n), nil
	}
	return NewNull(), errors.Newf(errors.ErrValueParse, "unsupported YAML node kind %d", n.Kind)
}

func fromScalar(n *yaml.Node) Value {
	switch n.Tag {
	case "!!null":
		return NewNull()
	case "!!bool":
		b, err := strconv.ParseBool(n.Value)
		if err == nil {
			return NewBool(b)
		}
	case "!!int", "!!float":
		f, err := strconv.ParseFloat(n.Value, 64)
		if err == nil {
			return NewNumber(f)
		}
	}
	return NewString(n.Value)
}

// FromXML decodes an XML document into a Value. Attributes become map
// entries, child elements become nested maps, and repeated child names
// collapse into a list. An element with only text decodes as a string.
func FromXML(data []byte) (Value, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return NewNull(), errors.Wrap(err, errors.ErrValueParse, "failed to parse XML")
	}
	root := doc.Root()
	if root == nil {
		return NewNull(), errors.New(errors.ErrValueParse, "XML document has no root element")
	}
	return fromElement(root), nil
}

// DecodeXMLRecords treats each child of the root element as one record.
func DecodeXMLRecords(data []byte) ([]Value, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, errors.Wrap(err, errors.ErrValueParse, "failed to parse XML")
	}
	root := doc.Root()
	if root == nil {
		return nil, errors.New(errors.ErrValueParse, "XML document has no root element")
	}
	children := root.ChildElements()
	records := make([]Value, 0, len(children))
	for _, child := range children {
		records = append(records, fromElement(child))
	}
	return records, nil
}

func fromElement(e *etree.Element) Value {
	children := e.ChildElements()
	if len(children) == 0 && len(e.Attr) == 0 {
		return scalarFromText(e.Text())
	}

	var entries []Entry
	for _, a := range e.Attr {
		entries = append(entries, Entry{Key: a.Key, Value: scalarFromText(a.Value)})
	}
	for _, child := range children {
		v := fromElement(child)
		replaced := false
		for i, existing := range entries {
			if existing.Key != child.Tag {
				continue
			}
			if existing.Value.Kind() == List {
				entries[i].Value = NewList(append(existing.Value.Items(), v)...)
			} else {
				entries[i].Value = NewList(existing.Value, v)
			}
			replaced = true
			break
		}
		if !replaced {
			entries = append(entries, Entry{Key: child.Tag, Value: v})
		}
	}
	return NewMap(entries...)
}

func scalarFromText(s string) Value {
	s = strings.TrimSpace(s)
	if f, err := strconv.ParseFloat(s, 64); err == nil && s != "" {
		return NewNumber(f)
	}
	if b, err := strconv.ParseBool(s); err == nil {
		return NewBool(b)
	}
	return NewString(s)
}
