package unions

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedDiscriminator is returned when the discriminator field is
	// missing, null, not a string, or the input is not a JSON object.
	ErrMalformedDiscriminator = errors.New("malformed discriminator")
	// ErrUnrecognizedDiscriminator is returned by struct-tagged families when
	// the discriminator names no variant in the catalog.
	ErrUnrecognizedDiscriminator = errors.New("unrecognized discriminator")
)

// DiscriminatorError describes a failure to select a variant.
type DiscriminatorError struct {
	Family string
	Field  string
	// Value is the raw discriminator string. Empty for malformed input.
	Value string
	// Reason explains a malformed discriminator ("missing", "null", ...).
	Reason string
	Err    error
}

func (e *DiscriminatorError) Error() string {
	where := e.Family
	if e.Field != "" {
		where += "." + e.Field
	}
	if errors.Is(e.Err, ErrUnrecognizedDiscriminator) {
		return fmt.Sprintf("%s: %v %q", where, e.Err, e.Value)
	}
	return fmt.Sprintf("%s: %v: %s", where, e.Err, e.Reason)
}

func (e *DiscriminatorError) Unwrap() error { return e.Err }

// FieldError wraps a failure to decode or validate the fields of a variant
// once the discriminator has been resolved.
type FieldError struct {
	Family string
	Tag    string
	Err    error
}

func (e *FieldError) Error() string {
	if e.Tag == "" {
		return fmt.Sprintf("%s: %v", e.Family, e.Err)
	}
	return fmt.Sprintf("%s[%s]: %v", e.Family, e.Tag, e.Err)
}

func (e *FieldError) Unwrap() error { return e.Err }

func malformed(family, field, reason string) error {
	return &DiscriminatorError{
		Family: family,
		Field:  field,
		Reason: reason,
		Err:    ErrMalformedDiscriminator,
	}
}

func unrecognized(family, field, value string) error {
	return &DiscriminatorError{
		Family: family,
		Field:  field,
		Value:  value,
		Err:    ErrUnrecognizedDiscriminator,
	}
}
