package reconcile

import (
	"facet-reconciler/core/args"
	"facet-reconciler/core/classify"
)

// AdditionalArguments returns the fields of current that must be persisted
// explicitly: fields that are neither primary, hidden nor ignored on the
// platform and whose value differs from the default. Fields absent from
// defaults compare against the zero value of their kind. The result follows
// the field order of current and is never nil.
//
// Both buckets are expected to be normalized. current must only hold fields
// of the platform's schema.
func AdditionalArguments(registry *classify.Registry, current, defaults *args.Bucket, platform args.Platform) ([]args.Argument, error) {
	if registry == nil {
		registry = classify.Default()
	}
	if err := current.Validate(platform); err != nil {
		return nil, err
	}

	out := []args.Argument{}
	for _, id := range current.Fields() {
		switch registry.Classify(platform, id) {
		case classify.Primary, classify.HiddenPrimary, classify.Ignored:
			continue
		}

		spec := args.MustLookup(id)
		if !deviates(spec, current, defaults) {
			continue
		}
		out = append(out, args.Argument{Field: id, Value: current.ValueOrZero(spec)})
	}
	return out, nil
}

// deviates compares a field with kind-appropriate equality.
func deviates(spec args.FieldSpec, current, defaults *args.Bucket) bool {
	switch spec.Kind {
	case args.KindSingle:
		return !optionalEqual(current.Single(spec), defaults.Single(spec))
	case args.KindMulti:
		// Positional: a reordered list is a change.
		return !current.ValueOrZero(spec).Equal(defaults.ValueOrZero(spec))
	case args.KindFlag:
		return current.Flag(spec) != defaults.Flag(spec)
	default:
		return false
	}
}

func optionalEqual(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
