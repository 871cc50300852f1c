package classify

import (
	"fmt"

	"facet-reconciler/core/args"
)

// Class is the classification of a field on a platform.
type Class int

const (
	// Additional fields are surfaced as additional arguments when they deviate
	// from the default.
	Additional Class = iota
	// Primary fields are exposed and managed by the UI directly.
	Primary
	// HiddenPrimary fields are managed through dedicated channels (plugin
	// options, plugin classpaths) and never surfaced as additional arguments.
	HiddenPrimary
	// Ignored fields are owned by another component (the SDK resolver).
	Ignored
)

func (c Class) String() string {
	switch c {
	case Primary:
		return "primary"
	case HiddenPrimary:
		return "hidden"
	case Ignored:
		return "ignored"
	default:
		return "additional"
	}
}

// MarshalText renders the class name in JSON output.
func (c Class) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// Tables lists the classified fields of one platform. Fields absent from all
// three lists are additional-eligible.
type Tables struct {
	Exposed []args.FieldID
	Hidden  []args.FieldID
	Ignored []args.FieldID
}

// Registry maps platforms to their classification tables. A Registry is
// immutable after construction and safe for concurrent use.
type Registry struct {
	tables  map[args.Platform]Tables
	classes map[args.Platform]map[args.FieldID]Class
}

// NewRegistry builds a registry from per-platform tables. It fails when a
// field is both ignored and primary on the same platform.
func NewRegistry(tables map[args.Platform]Tables) (*Registry, error) {
	r := &Registry{
		tables:  make(map[args.Platform]Tables, len(tables)),
		classes: make(map[args.Platform]map[args.FieldID]Class, len(tables)),
	}
	for p, t := range tables {
		classes := make(map[args.FieldID]Class, len(t.Exposed)+len(t.Hidden)+len(t.Ignored))
		for _, id := range t.Exposed {
			classes[id] = Primary
		}
		for _, id := range t.Hidden {
			if _, ok := classes[id]; !ok {
				classes[id] = HiddenPrimary
			}
		}
		for _, id := range t.Ignored {
			if c, ok := classes[id]; ok {
				return nil, fmt.Errorf("platform %s: field %s is both %s and ignored", p, id, c)
			}
			classes[id] = Ignored
		}
		r.tables[p] = Tables{
			Exposed: append([]args.FieldID(nil), t.Exposed...),
			Hidden:  append([]args.FieldID(nil), t.Hidden...),
			Ignored: append([]args.FieldID(nil), t.Ignored...),
		}
		r.classes[p] = classes
	}
	return r, nil
}

// Classify returns the class of a field on a platform. Platforms without a
// table fall back to the metadata table.
func (r *Registry) Classify(p args.Platform, id args.FieldID) Class {
	classes, ok := r.classes[p]
	if !ok {
		classes = r.classes[args.PlatformMetadata]
	}
	return classes[id]
}

// IsPrimary reports whether a field is primary or hidden-primary.
func (r *Registry) IsPrimary(p args.Platform, id args.FieldID) bool {
	c := r.Classify(p, id)
	return c == Primary || c == HiddenPrimary
}

// Exposed returns the UI-exposed fields of a platform in table order.
func (r *Registry) Exposed(p args.Platform) []args.FieldID {
	t, ok := r.tables[p]
	if !ok {
		t = r.tables[args.PlatformMetadata]
	}
	return append([]args.FieldID(nil), t.Exposed...)
}

// Tables returns a copy of the tables of a platform.
func (r *Registry) Tables(p args.Platform) (Tables, bool) {
	t, ok := r.tables[p]
	if !ok {
		return Tables{}, false
	}
	return Tables{
		Exposed: append([]args.FieldID(nil), t.Exposed...),
		Hidden:  append([]args.FieldID(nil), t.Hidden...),
		Ignored: append([]args.FieldID(nil), t.Ignored...),
	}, true
}
