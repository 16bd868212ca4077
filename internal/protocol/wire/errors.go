package wire

import "fmt"

// MissingFieldError indicates a required field was not present in a payload.
type MissingFieldError struct {
	Entity string
	Field  string
}

func (e MissingFieldError) Error() string {
	return fmt.Sprintf("wire: %s: missing required field %q", e.Entity, e.Field)
}

// TypeMismatchError indicates a field was present with the wrong wire type
// or a numeric value outside the declared range.
type TypeMismatchError struct {
	Entity   string
	Field    string
	Expected string
	Actual   string
}

func (e TypeMismatchError) Error() string {
	return fmt.Sprintf("wire: %s: field %q: expected %s, got %s", e.Entity, e.Field, e.Expected, e.Actual)
}

// SentinelError indicates a scalar whose value is neither a known sentinel
// nor representable in the domain range.
type SentinelError struct {
	Entity string
	Value  int64
}

func (e SentinelError) Error() string {
	return fmt.Sprintf("wire: %s: unrepresentable sentinel value %d", e.Entity, e.Value)
}

// UnknownVariantError indicates a discriminant outside the closed set of
// known variants for a field.
type UnknownVariantError struct {
	Entity string
	Field  string
	Value  any
}

func (e UnknownVariantError) Error() string {
	return fmt.Sprintf("wire: %s: field %q: unknown variant %v", e.Entity, e.Field, e.Value)
}
