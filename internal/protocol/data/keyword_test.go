package data

import (
	"testing"

	"github.com/danmuck/hyprctl/internal/protocol/wire"
	"github.com/danmuck/hyprctl/internal/testutil/testlog"
)

func parseKeyword(t *testing.T, payload string) any {
	t.Helper()
	v, err := wire.Parse([]byte(payload))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	return v
}

func TestDecodeKeywordPinnedKind(t *testing.T) {
	testlog.Start(t)
	v := parseKeyword(t, `{"option": "general:border_size", "int": 2, "float": 2.0, "str": "2"}`)

	kw, err := DecodeKeyword(v, KindInt)
	if err != nil {
		t.Fatalf("decode int: %v", err)
	}
	if n, ok := kw.Value.Int(); !ok || n != 2 {
		t.Fatalf("unexpected int value: %+v", kw.Value)
	}

	kw, err = DecodeKeyword(v, KindFloat)
	if err != nil {
		t.Fatalf("decode float: %v", err)
	}
	if f, ok := kw.Value.Float(); !ok || f != 2.0 {
		t.Fatalf("unexpected float value: %+v", kw.Value)
	}

	kw, err = DecodeKeyword(v, KindString)
	if err != nil {
		t.Fatalf("decode string: %v", err)
	}
	if s, ok := kw.Value.Str(); !ok || s != "2" {
		t.Fatalf("unexpected string value: %+v", kw.Value)
	}
	if kw.Option != "general:border_size" {
		t.Fatalf("unexpected option name: %q", kw.Option)
	}
}

func TestDecodeKeywordAutoHeuristic(t *testing.T) {
	testlog.Start(t)

	// Numeric rendering in str: the integer field wins.
	kw, err := DecodeKeyword(parseKeyword(t, `{"option": "general:gaps_in", "int": 5, "float": 5.0, "str": "5"}`), KindAuto)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if n, ok := kw.Value.Int(); !ok || n != 5 {
		t.Fatalf("expected int 5, got %+v", kw.Value)
	}

	// Fractional float wins over its truncated int rendering.
	kw, err = DecodeKeyword(parseKeyword(t, `{"option": "misc:sensitivity", "int": 0, "float": 0.75, "str": "0.75"}`), KindAuto)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if f, ok := kw.Value.Float(); !ok || f != 0.75 {
		t.Fatalf("expected float 0.75, got %+v", kw.Value)
	}

	// A str that is no rendering of the numbers is a genuine string option.
	kw, err = DecodeKeyword(parseKeyword(t, `{"option": "general:layout", "int": 0, "float": 0.0, "str": "dwindle"}`), KindAuto)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if s, ok := kw.Value.Str(); !ok || s != "dwindle" {
		t.Fatalf("expected string dwindle, got %+v", kw.Value)
	}
}

func TestDecodeKeywordRequiresAllWireFields(t *testing.T) {
	testlog.Start(t)
	_, err := DecodeKeyword(parseKeyword(t, `{"option": "general:layout", "int": 0, "str": "dwindle"}`), KindAuto)
	me, ok := err.(wire.MissingFieldError)
	if !ok {
		t.Fatalf("expected MissingFieldError, got %T: %v", err, err)
	}
	if me.Field != "float" {
		t.Fatalf("unexpected field: %+v", me)
	}
}

func TestOptionValueMarshalEmitsLiveVariant(t *testing.T) {
	testlog.Start(t)
	out, err := IntValue(7).MarshalJSON()
	if err != nil || string(out) != "7" {
		t.Fatalf("int marshal: %s %v", out, err)
	}
	out, err = StringValue("dwindle").MarshalJSON()
	if err != nil || string(out) != `"dwindle"` {
		t.Fatalf("string marshal: %s %v", out, err)
	}
}
