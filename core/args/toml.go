package args

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2/unstable"
	"gopkg.in/yaml.v3"
)

// DecodeTOML decodes a flat TOML document of `field = value` pairs, keeping
// the document order. TOML has no null, so a single field can only be unset
// by leaving it out. Tables are rejected.
func DecodeTOML(data []byte) (*Bucket, error) {
	out := NewBucket()

	p := unstable.Parser{}
	p.Reset(data)
	for p.NextExpression() {
		expr := p.Expression()
		switch expr.Kind {
		case unstable.KeyValue:
		case unstable.Table, unstable.ArrayTable:
			return nil, fmt.Errorf("decode bucket: tables are not supported")
		default:
			continue
		}

		var parts []string
		key := expr.Key()
		for key.Next() {
			parts = append(parts, string(key.Node().Data))
		}
		if len(parts) != 1 {
			return nil, fmt.Errorf("decode bucket: dotted key %q", strings.Join(parts, "."))
		}

		valNode := expr.Value()
		if err := out.setDecoded(FieldID(parts[0]), func(spec FieldSpec) (Value, error) {
			return decodeTOMLValue(spec.Kind, valNode)
		}); err != nil {
			return nil, err
		}
	}
	if err := p.Error(); err != nil {
		return nil, fmt.Errorf("decode bucket: %w", err)
	}
	return out, nil
}

func decodeTOMLValue(kind Kind, node *unstable.Node) (Value, error) {
	switch kind {
	case KindSingle:
		if node.Kind != unstable.String {
			return Value{}, fmt.Errorf("%w: expected string", ErrKindMismatch)
		}
		return Single(string(node.Data)), nil
	case KindMulti:
		if node.Kind != unstable.Array {
			return Value{}, fmt.Errorf("%w: expected array of strings", ErrKindMismatch)
		}
		var list []string
		it := node.Children()
		for it.Next() {
			child := it.Node()
			if child.Kind != unstable.String {
				return Value{}, fmt.Errorf("%w: expected array of strings", ErrKindMismatch)
			}
			list = append(list, string(child.Data))
		}
		return Multi(list...), nil
	case KindFlag:
		if node.Kind != unstable.Bool {
			return Value{}, fmt.Errorf("%w: expected boolean", ErrKindMismatch)
		}
		return Flag(string(node.Data) == "true"), nil
	default:
		return Value{}, fmt.Errorf("decode value: invalid kind %d", kind)
	}
}

// DecodeFile decodes a bucket, picking the format from the file extension:
// .json, .yaml or .yml, and .toml.
func DecodeFile(name string, data []byte) (*Bucket, error) {
	b := NewBucket()
	switch ext := strings.ToLower(filepath.Ext(name)); ext {
	case ".json":
		if err := json.Unmarshal(data, b); err != nil {
			return nil, err
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, b); err != nil {
			return nil, err
		}
	case ".toml":
		return DecodeTOML(data)
	default:
		return nil, fmt.Errorf("unsupported bucket file extension %q", ext)
	}
	return b, nil
}
