package args

import "errors"

var (
	// ErrUnknownField is returned for field identifiers outside the schema.
	ErrUnknownField = errors.New("unknown field")
	// ErrKindMismatch is returned when a value's kind differs from its field spec.
	ErrKindMismatch = errors.New("value kind does not match field")
	// ErrUnknownPlatform is returned by ParsePlatform.
	ErrUnknownPlatform = errors.New("unknown platform")
)
