package wire

import (
	"encoding/json"
	"fmt"
	"math"
)

// Object is one parsed key/value tree from a control socket reply.
type Object map[string]any

// Parse decodes raw reply bytes into a generic value tree.
func Parse(payload []byte) (any, error) {
	var v any
	if err := json.Unmarshal(payload, &v); err != nil {
		return nil, fmt.Errorf("wire: parse payload: %w", err)
	}
	return v, nil
}

// AsObject asserts that a parsed value is a key/value tree.
func AsObject(entity string, v any) (Object, error) {
	obj, ok := v.(map[string]any)
	if !ok {
		return nil, TypeMismatchError{Entity: entity, Field: ".", Expected: "object", Actual: describe(v)}
	}
	return Object(obj), nil
}

// AsArray asserts that a parsed value is a sequence.
func AsArray(entity string, v any) ([]any, error) {
	arr, ok := v.([]any)
	if !ok {
		return nil, TypeMismatchError{Entity: entity, Field: ".", Expected: "array", Actual: describe(v)}
	}
	return arr, nil
}

// EmptyAsAbsent maps an empty object to absence. Only emptiness of the
// object itself triggers absence; populated fields with zero values do not.
func EmptyAsAbsent(obj Object) (Object, bool) {
	if len(obj) == 0 {
		return nil, false
	}
	return obj, true
}

// String returns a required string field.
func (o Object) String(entity, field string) (string, error) {
	v, ok := o[field]
	if !ok {
		return "", MissingFieldError{Entity: entity, Field: field}
	}
	s, ok := v.(string)
	if !ok {
		return "", TypeMismatchError{Entity: entity, Field: field, Expected: "string", Actual: describe(v)}
	}
	return s, nil
}

// Bool returns a required bool field.
func (o Object) Bool(entity, field string) (bool, error) {
	v, ok := o[field]
	if !ok {
		return false, MissingFieldError{Entity: entity, Field: field}
	}
	b, ok := v.(bool)
	if !ok {
		return false, TypeMismatchError{Entity: entity, Field: field, Expected: "bool", Actual: describe(v)}
	}
	return b, nil
}

// Float returns a required floating point field.
func (o Object) Float(entity, field string) (float64, error) {
	v, ok := o[field]
	if !ok {
		return 0, MissingFieldError{Entity: entity, Field: field}
	}
	f, ok := v.(float64)
	if !ok {
		return 0, TypeMismatchError{Entity: entity, Field: field, Expected: "number", Actual: describe(v)}
	}
	return f, nil
}

// Int returns a required integer field. A number with a fractional part is
// a type mismatch, not a truncation.
func (o Object) Int(entity, field string) (int64, error) {
	f, err := o.Float(entity, field)
	if err != nil {
		return 0, err
	}
	if f != math.Trunc(f) {
		return 0, TypeMismatchError{Entity: entity, Field: field, Expected: "integer", Actual: fmt.Sprintf("number %v", f)}
	}
	return int64(f), nil
}

// IntIn returns a required integer field range-checked to [min, max].
func (o Object) IntIn(entity, field string, min, max int64) (int64, error) {
	n, err := o.Int(entity, field)
	if err != nil {
		return 0, err
	}
	if n < min || n > max {
		return 0, TypeMismatchError{
			Entity:   entity,
			Field:    field,
			Expected: fmt.Sprintf("integer in [%d, %d]", min, max),
			Actual:   fmt.Sprintf("number %d", n),
		}
	}
	return n, nil
}

// IntElem validates a standalone array element as an integer in [min, max].
func IntElem(entity, field string, v any, min, max int64) (int64, error) {
	f, ok := v.(float64)
	if !ok {
		return 0, TypeMismatchError{Entity: entity, Field: field, Expected: "number", Actual: describe(v)}
	}
	if f != math.Trunc(f) {
		return 0, TypeMismatchError{Entity: entity, Field: field, Expected: "integer", Actual: fmt.Sprintf("number %v", f)}
	}
	n := int64(f)
	if n < min || n > max {
		return 0, TypeMismatchError{
			Entity:   entity,
			Field:    field,
			Expected: fmt.Sprintf("integer in [%d, %d]", min, max),
			Actual:   fmt.Sprintf("number %d", n),
		}
	}
	return n, nil
}

// StringElem validates a standalone array element as a string.
func StringElem(entity, field string, v any) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", TypeMismatchError{Entity: entity, Field: field, Expected: "string", Actual: describe(v)}
	}
	return s, nil
}

// Object returns a required nested key/value tree field.
func (o Object) Object(entity, field string) (Object, error) {
	v, ok := o[field]
	if !ok {
		return nil, MissingFieldError{Entity: entity, Field: field}
	}
	obj, ok := v.(map[string]any)
	if !ok {
		return nil, TypeMismatchError{Entity: entity, Field: field, Expected: "object", Actual: describe(v)}
	}
	return Object(obj), nil
}

// Array returns a required sequence field.
func (o Object) Array(entity, field string) ([]any, error) {
	v, ok := o[field]
	if !ok {
		return nil, MissingFieldError{Entity: entity, Field: field}
	}
	arr, ok := v.([]any)
	if !ok {
		return nil, TypeMismatchError{Entity: entity, Field: field, Expected: "array", Actual: describe(v)}
	}
	return arr, nil
}

// Has reports whether a field is present, regardless of its type.
func (o Object) Has(field string) bool {
	_, ok := o[field]
	return ok
}

// describe names the wire type of a parsed value for error reporting.
func describe(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case bool:
		return "bool"
	case float64:
		return "number"
	case string:
		return "string"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	default:
		return fmt.Sprintf("%T", v)
	}
}
