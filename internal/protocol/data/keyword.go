package data

import (
	"encoding/json"
	"math"
	"strconv"

	"github.com/danmuck/hyprctl/internal/protocol/wire"
)

// ValueKind selects which wire field of an option reply is authoritative.
type ValueKind uint8

const (
	// KindAuto applies the selection heuristic documented on DecodeKeyword.
	KindAuto ValueKind = iota
	KindInt
	KindFloat
	KindString
)

func (k ValueKind) String() string {
	switch k {
	case KindAuto:
		return "auto"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	default:
		return "kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// OptionValue is a closed union: exactly one of a 64-bit integer, a
// 64-bit float or a string is live.
type OptionValue struct {
	kind ValueKind
	i    int64
	f    float64
	s    string
}

func IntValue(v int64) OptionValue {
	return OptionValue{kind: KindInt, i: v}
}

func FloatValue(v float64) OptionValue {
	return OptionValue{kind: KindFloat, f: v}
}

func StringValue(v string) OptionValue {
	return OptionValue{kind: KindString, s: v}
}

func (v OptionValue) Kind() ValueKind {
	return v.kind
}

func (v OptionValue) Int() (int64, bool) {
	return v.i, v.kind == KindInt
}

func (v OptionValue) Float() (float64, bool) {
	return v.f, v.kind == KindFloat
}

func (v OptionValue) Str() (string, bool) {
	return v.s, v.kind == KindString
}

func (v OptionValue) String() string {
	switch v.kind {
	case KindInt:
		return strconv.FormatInt(v.i, 10)
	case KindFloat:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	case KindString:
		return v.s
	default:
		return ""
	}
}

// MarshalJSON emits the live variant only.
func (v OptionValue) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindInt:
		return json.Marshal(v.i)
	case KindFloat:
		return json.Marshal(v.f)
	default:
		return json.Marshal(v.s)
	}
}

// Keyword is one named option with its resolved value.
type Keyword struct {
	Option string      `json:"option"`
	Value  OptionValue `json:"value"`
}

// optionRaw mirrors the getoption wire record, which carries all three
// value fields populated at once regardless of the option's true type.
type optionRaw struct {
	option string
	i      int64
	f      float64
	s      string
}

func decodeOptionRaw(obj wire.Object) (optionRaw, error) {
	var raw optionRaw
	var err error
	if raw.option, err = obj.String("keyword", "option"); err != nil {
		return optionRaw{}, err
	}
	if raw.i, err = obj.Int("keyword", "int"); err != nil {
		return optionRaw{}, err
	}
	if raw.f, err = obj.Float("keyword", "float"); err != nil {
		return optionRaw{}, err
	}
	if raw.s, err = obj.String("keyword", "str"); err != nil {
		return optionRaw{}, err
	}
	return raw, nil
}

// DecodeKeyword normalizes a getoption reply. The wire record does not
// say which of its three value fields is authoritative, so the caller
// may pin the kind. KindAuto applies this heuristic: a non-empty str
// that is not a rendering of the numeric fields wins; otherwise float
// wins iff it carries a fractional part; otherwise int. Callers that
// know the option's declared type should pass it explicitly.
func DecodeKeyword(v any, kind ValueKind) (Keyword, error) {
	obj, err := wire.AsObject("keyword", v)
	if err != nil {
		return Keyword{}, err
	}
	raw, err := decodeOptionRaw(obj)
	if err != nil {
		return Keyword{}, err
	}

	var value OptionValue
	switch kind {
	case KindInt:
		value = IntValue(raw.i)
	case KindFloat:
		value = FloatValue(raw.f)
	case KindString:
		value = StringValue(raw.s)
	case KindAuto:
		value = pickAuto(raw)
	default:
		return Keyword{}, wire.UnknownVariantError{Entity: "keyword", Field: "kind", Value: kind}
	}
	return Keyword{Option: raw.option, Value: value}, nil
}

func pickAuto(raw optionRaw) OptionValue {
	if raw.s != "" &&
		raw.s != strconv.FormatInt(raw.i, 10) &&
		raw.s != strconv.FormatFloat(raw.f, 'g', -1, 64) {
		return StringValue(raw.s)
	}
	if raw.f != math.Trunc(raw.f) {
		return FloatValue(raw.f)
	}
	return IntValue(raw.i)
}
