package data

import (
	"testing"

	"github.com/danmuck/hyprctl/internal/protocol/wire"
	"github.com/danmuck/hyprctl/internal/testutil/testlog"
)

const clientPayload = `{
	"address": "0x55d18a9d1c40",
	"at": [10, -20],
	"size": [1280, 720],
	"workspace": {"id": 2, "name": "web"},
	"floating": false,
	"monitor": 0,
	"class": "firefox",
	"title": "Mozilla Firefox",
	"pid": 4242,
	"xwayland": false
}`

func TestDecodeActiveWindowEmptyObjectIsAbsent(t *testing.T) {
	testlog.Start(t)
	v, err := wire.Parse([]byte(`{}`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	aw, err := DecodeActiveWindow(v)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if aw.Present() {
		t.Fatalf("expected absent active window, got %+v", aw)
	}
	out, err := aw.MarshalJSON()
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(out) != "{}" {
		t.Fatalf("absent window must re-encode as empty object, got %s", out)
	}
}

func TestDecodeActiveWindowPopulated(t *testing.T) {
	testlog.Start(t)
	v, err := wire.Parse([]byte(clientPayload))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	aw, err := DecodeActiveWindow(v)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !aw.Present() {
		t.Fatalf("expected present active window")
	}
	c := *aw.Client
	if c.Address != "0x55d18a9d1c40" {
		t.Fatalf("unexpected address: %q", c.Address)
	}
	if c.At != [2]int16{10, -20} || c.Size != [2]uint16{1280, 720} {
		t.Fatalf("unexpected geometry: %+v", c)
	}
	num, ok := c.Workspace.ID.Num()
	if !ok || num != 2 || c.Workspace.Name != "web" {
		t.Fatalf("unexpected workspace: %+v", c.Workspace)
	}
	if c.Class != "firefox" || c.Title != "Mozilla Firefox" || c.PID != 4242 {
		t.Fatalf("unexpected identity: %+v", c)
	}
	if c.Floating || c.XWayland || c.Monitor != 0 {
		t.Fatalf("unexpected flags: %+v", c)
	}
}

func TestDecodeClientsTupleRangeChecked(t *testing.T) {
	testlog.Start(t)
	v, err := wire.Parse([]byte(`[{
		"address": "0x1", "at": [40000, 0], "size": [100, 100],
		"workspace": {"id": 1, "name": "1"}, "floating": false,
		"monitor": 0, "class": "a", "title": "b", "pid": 1, "xwayland": false
	}]`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	_, err = DecodeClients(v)
	te, ok := err.(wire.TypeMismatchError)
	if !ok {
		t.Fatalf("expected TypeMismatchError, got %T: %v", err, err)
	}
	if te.Field != "at[0]" {
		t.Fatalf("unexpected field: %+v", te)
	}
}

func TestDecodeClientsPartialObjectFails(t *testing.T) {
	testlog.Start(t)
	// A populated but incomplete client is a decode failure, never an
	// absent window.
	v, err := wire.Parse([]byte(`{"address": "0x1"}`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	_, err = DecodeActiveWindow(v)
	if _, ok := err.(wire.MissingFieldError); !ok {
		t.Fatalf("expected MissingFieldError, got %T: %v", err, err)
	}
}
