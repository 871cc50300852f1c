package args

import (
	"fmt"
)

// Bucket is the full set of compiler arguments of one module in one state
// (current or default). Fields keep their insertion order; a field appears at
// most once.
//
// A Bucket is not safe for concurrent mutation.
type Bucket struct {
	order  []FieldID
	values map[FieldID]Value
}

// NewBucket returns an empty bucket.
func NewBucket() *Bucket {
	return &Bucket{values: make(map[FieldID]Value)}
}

// Set stores a value. An existing field keeps its position.
func (b *Bucket) Set(id FieldID, v Value) error {
	spec, ok := Lookup(id)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownField, id)
	}
	if v.Kind() != spec.Kind {
		return fmt.Errorf("%w: %s is %s, got %s", ErrKindMismatch, id, spec.Kind, v.Kind())
	}
	b.ensure()
	if _, exists := b.values[id]; !exists {
		b.order = append(b.order, id)
	}
	b.values[id] = v
	return nil
}

// MustSet is Set for statically known fields and values; it panics on error.
func (b *Bucket) MustSet(id FieldID, v Value) *Bucket {
	if err := b.Set(id, v); err != nil {
		panic(err)
	}
	return b
}

// Get returns the stored value of a field.
func (b *Bucket) Get(id FieldID) (Value, bool) {
	if b == nil {
		return Value{}, false
	}
	v, ok := b.values[id]
	return v, ok
}

// ValueOrZero returns the stored value, or the implicit default of the
// field's kind when the field is absent.
func (b *Bucket) ValueOrZero(spec FieldSpec) Value {
	if v, ok := b.Get(spec.ID); ok {
		if v.Kind() != spec.Kind {
			panic(fmt.Sprintf("args: field %s indexed as %s but holds %s", spec.ID, spec.Kind, v.Kind()))
		}
		return v
	}
	return ZeroValue(spec.Kind)
}

// Single returns the optional string stored under a single-kind field.
// It panics if spec is not a single-kind field.
func (b *Bucket) Single(spec FieldSpec) *string {
	mustKind(spec, KindSingle)
	return b.ValueOrZero(spec).Str()
}

// Multi returns the list stored under a multi-kind field.
// It panics if spec is not a multi-kind field.
func (b *Bucket) Multi(spec FieldSpec) []string {
	mustKind(spec, KindMulti)
	return b.ValueOrZero(spec).Strings()
}

// Flag returns the flag stored under a flag-kind field.
// It panics if spec is not a flag-kind field.
func (b *Bucket) Flag(spec FieldSpec) bool {
	mustKind(spec, KindFlag)
	return b.ValueOrZero(spec).Bool()
}

func mustKind(spec FieldSpec, k Kind) {
	if spec.Kind != k {
		panic(fmt.Sprintf("args: field %s is %s, accessed as %s", spec.ID, spec.Kind, k))
	}
}

// Delete removes a field.
func (b *Bucket) Delete(id FieldID) {
	if b == nil {
		return
	}
	if _, ok := b.values[id]; !ok {
		return
	}
	delete(b.values, id)
	for i, f := range b.order {
		if f == id {
			b.order = append(b.order[:i], b.order[i+1:]...)
			break
		}
	}
}

// Fields returns the field identifiers in order.
func (b *Bucket) Fields() []FieldID {
	if b == nil {
		return nil
	}
	out := make([]FieldID, len(b.order))
	copy(out, b.order)
	return out
}

// Len returns the number of fields.
func (b *Bucket) Len() int {
	if b == nil {
		return 0
	}
	return len(b.order)
}

// Clone returns a deep copy.
func (b *Bucket) Clone() *Bucket {
	out := NewBucket()
	if b == nil {
		return out
	}
	out.order = append(out.order, b.order...)
	for id, v := range b.values {
		if v.Kind() == KindMulti {
			v = Multi(v.list...)
		}
		out.values[id] = v
	}
	return out
}

// Equal reports whether both buckets hold the same fields with equal values.
// Field order is not compared.
func (b *Bucket) Equal(o *Bucket) bool {
	if b.Len() != o.Len() {
		return false
	}
	for _, id := range b.Fields() {
		v, _ := b.Get(id)
		ov, ok := o.Get(id)
		if !ok || !v.Equal(ov) {
			return false
		}
	}
	return true
}

// Validate checks every field against the platform schema.
func (b *Bucket) Validate(p Platform) error {
	if !p.IsValid() {
		return fmt.Errorf("%w: %q", ErrUnknownPlatform, p)
	}
	for _, id := range b.Fields() {
		if !p.Accepts(id) {
			return fmt.Errorf("%w: %s is not a %s argument", ErrUnknownField, id, p)
		}
	}
	return nil
}

func (b *Bucket) ensure() {
	if b.values == nil {
		b.values = make(map[FieldID]Value)
	}
}
