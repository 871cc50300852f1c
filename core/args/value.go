package args

import (
	"encoding/json"
	"fmt"
)

// Value is a tagged argument value: a single optional string, an ordered list
// of strings, or a flag. The zero Value has no kind and is never stored in a
// Bucket.
type Value struct {
	kind Kind
	str  *string
	list []string
	flag bool
}

// Single returns a single-string value.
func Single(s string) Value {
	return Value{kind: KindSingle, str: &s}
}

// Null returns an absent single-string value.
func Null() Value {
	return Value{kind: KindSingle}
}

// SingleOf returns a single-string value from an optional string.
func SingleOf(s *string) Value {
	if s == nil {
		return Null()
	}
	return Single(*s)
}

// Multi returns a list value. The slice is copied.
func Multi(values ...string) Value {
	list := make([]string, len(values))
	copy(list, values)
	return Value{kind: KindMulti, list: list}
}

// Flag returns a boolean value.
func Flag(b bool) Value {
	return Value{kind: KindFlag, flag: b}
}

// ZeroValue returns the implicit default for a kind: an absent string, an
// empty list, or false.
func ZeroValue(k Kind) Value {
	switch k {
	case KindSingle:
		return Null()
	case KindMulti:
		return Multi()
	case KindFlag:
		return Flag(false)
	default:
		panic(fmt.Sprintf("args: zero value of invalid kind %d", k))
	}
}

// Kind returns the value kind.
func (v Value) Kind() Kind { return v.kind }

// Str returns the optional string of a single value.
func (v Value) Str() *string {
	v.mustBe(KindSingle)
	if v.str == nil {
		return nil
	}
	s := *v.str
	return &s
}

// Strings returns a copy of the list of a multi value.
func (v Value) Strings() []string {
	v.mustBe(KindMulti)
	out := make([]string, len(v.list))
	copy(out, v.list)
	return out
}

// Bool returns the flag of a flag value.
func (v Value) Bool() bool {
	v.mustBe(KindFlag)
	return v.flag
}

func (v Value) mustBe(k Kind) {
	if v.kind != k {
		panic(fmt.Sprintf("args: %s accessor used on %s value", k, v.kind))
	}
}

// Equal compares two values of the same kind. Lists are compared position by
// position, so a reordered list is not equal. Values of different kinds are
// never equal.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindSingle:
		if v.str == nil || o.str == nil {
			return v.str == nil && o.str == nil
		}
		return *v.str == *o.str
	case KindMulti:
		if len(v.list) != len(o.list) {
			return false
		}
		for i := range v.list {
			if v.list[i] != o.list[i] {
				return false
			}
		}
		return true
	case KindFlag:
		return v.flag == o.flag
	default:
		return true
	}
}

// String renders the value for logs and CLI output.
func (v Value) String() string {
	switch v.kind {
	case KindSingle:
		if v.str == nil {
			return "<null>"
		}
		return *v.str
	case KindMulti:
		return fmt.Sprintf("%q", v.list)
	case KindFlag:
		return fmt.Sprintf("%t", v.flag)
	default:
		return "<invalid>"
	}
}

// MarshalJSON encodes the value as a JSON string, null, array or boolean.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindSingle:
		return json.Marshal(v.str)
	case KindMulti:
		if v.list == nil {
			return []byte("[]"), nil
		}
		return json.Marshal(v.list)
	case KindFlag:
		return json.Marshal(v.flag)
	default:
		return nil, fmt.Errorf("marshal value: invalid kind %d", v.kind)
	}
}

// decodeJSONValue decodes raw JSON into a value of the given kind.
func decodeJSONValue(kind Kind, raw json.RawMessage) (Value, error) {
	switch kind {
	case KindSingle:
		var s *string
		if err := json.Unmarshal(raw, &s); err != nil {
			return Value{}, fmt.Errorf("%w: expected string or null", ErrKindMismatch)
		}
		return SingleOf(s), nil
	case KindMulti:
		var list []string
		if err := json.Unmarshal(raw, &list); err != nil {
			return Value{}, fmt.Errorf("%w: expected array of strings", ErrKindMismatch)
		}
		return Multi(list...), nil
	case KindFlag:
		var b *bool
		if err := json.Unmarshal(raw, &b); err != nil || b == nil {
			return Value{}, fmt.Errorf("%w: expected boolean", ErrKindMismatch)
		}
		return Flag(*b), nil
	default:
		return Value{}, fmt.Errorf("decode value: invalid kind %d", kind)
	}
}

// Argument pairs a field with a value.
type Argument struct {
	Field FieldID `json:"field"`
	Value Value   `json:"value"`
}

// UnmarshalJSON decodes {"field": ..., "value": ...}, typing the value by the
// field's spec.
func (a *Argument) UnmarshalJSON(data []byte) error {
	var raw struct {
		Field FieldID         `json:"field"`
		Value json.RawMessage `json:"value"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	spec, ok := Lookup(raw.Field)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownField, raw.Field)
	}
	if len(raw.Value) == 0 {
		raw.Value = json.RawMessage("null")
	}
	v, err := decodeJSONValue(spec.Kind, raw.Value)
	if err != nil {
		return fmt.Errorf("field %s: %w", raw.Field, err)
	}
	a.Field = raw.Field
	a.Value = v
	return nil
}
