package args

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// MarshalJSON encodes the bucket as a JSON object in field order.
func (b *Bucket) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, id := range b.Fields() {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(string(id))
		if err != nil {
			return nil, err
		}
		v, _ := b.Get(id)
		val, err := v.MarshalJSON()
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", id, err)
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a JSON object, keeping the key order of the document.
// Duplicate keys are rejected.
func (b *Bucket) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("decode bucket: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("decode bucket: expected object")
	}

	out := NewBucket()
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("decode bucket: %w", err)
		}
		key, _ := tok.(string)
		id := FieldID(key)

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return fmt.Errorf("decode bucket field %s: %w", id, err)
		}
		if err := out.setDecoded(id, func(spec FieldSpec) (Value, error) {
			return decodeJSONValue(spec.Kind, raw)
		}); err != nil {
			return err
		}
	}
	if _, err := dec.Token(); err != nil {
		return fmt.Errorf("decode bucket: %w", err)
	}

	*b = *out
	return nil
}

// UnmarshalYAML decodes a YAML mapping, keeping the key order of the document.
func (b *Bucket) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("decode bucket: expected mapping at line %d", node.Line)
	}

	out := NewBucket()
	for i := 0; i+1 < len(node.Content); i += 2 {
		keyNode, valNode := node.Content[i], node.Content[i+1]
		id := FieldID(keyNode.Value)
		if err := out.setDecoded(id, func(spec FieldSpec) (Value, error) {
			return decodeYAMLValue(spec.Kind, valNode)
		}); err != nil {
			return fmt.Errorf("line %d: %w", keyNode.Line, err)
		}
	}

	*b = *out
	return nil
}

// MarshalYAML encodes the bucket as an ordered YAML mapping.
func (b *Bucket) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, id := range b.Fields() {
		v, _ := b.Get(id)
		valNode := &yaml.Node{}
		switch v.Kind() {
		case KindSingle:
			if s := v.Str(); s != nil {
				valNode.Kind, valNode.Tag, valNode.Value = yaml.ScalarNode, "!!str", *s
			} else {
				valNode.Kind, valNode.Tag, valNode.Value = yaml.ScalarNode, "!!null", "null"
			}
		case KindMulti:
			valNode.Kind, valNode.Tag = yaml.SequenceNode, "!!seq"
			for _, s := range v.Strings() {
				valNode.Content = append(valNode.Content, &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s})
			}
		case KindFlag:
			valNode.Kind, valNode.Tag, valNode.Value = yaml.ScalarNode, "!!bool", fmt.Sprintf("%t", v.Bool())
		}
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: string(id)},
			valNode,
		)
	}
	return node, nil
}

func (b *Bucket) setDecoded(id FieldID, decode func(FieldSpec) (Value, error)) error {
	spec, ok := Lookup(id)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownField, id)
	}
	if _, dup := b.Get(id); dup {
		return fmt.Errorf("decode bucket: duplicate field %s", id)
	}
	v, err := decode(spec)
	if err != nil {
		return fmt.Errorf("field %s: %w", id, err)
	}
	return b.Set(id, v)
}

func decodeYAMLValue(kind Kind, node *yaml.Node) (Value, error) {
	switch kind {
	case KindSingle:
		if node.Kind != yaml.ScalarNode {
			return Value{}, fmt.Errorf("%w: expected string or null", ErrKindMismatch)
		}
		if node.Tag == "!!null" {
			return Null(), nil
		}
		return Single(node.Value), nil
	case KindMulti:
		if node.Kind != yaml.SequenceNode {
			return Value{}, fmt.Errorf("%w: expected sequence of strings", ErrKindMismatch)
		}
		list := make([]string, 0, len(node.Content))
		for _, item := range node.Content {
			if item.Kind != yaml.ScalarNode || item.Tag == "!!null" {
				return Value{}, fmt.Errorf("%w: expected sequence of strings", ErrKindMismatch)
			}
			list = append(list, item.Value)
		}
		return Multi(list...), nil
	case KindFlag:
		var v bool
		if node.Kind != yaml.ScalarNode || node.Tag != "!!bool" {
			return Value{}, fmt.Errorf("%w: expected boolean", ErrKindMismatch)
		}
		if err := node.Decode(&v); err != nil {
			return Value{}, fmt.Errorf("%w: %v", ErrKindMismatch, err)
		}
		return Flag(v), nil
	default:
		return Value{}, fmt.Errorf("decode value: invalid kind %d", kind)
	}
}
