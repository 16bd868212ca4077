package exporter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/danmuck/hyprctl/internal/client"
	"github.com/danmuck/hyprctl/internal/testutil/testlog"
)

type fakeTransport struct {
	replies map[string]string
}

func (f fakeTransport) Request(_ context.Context, cmd string) ([]byte, error) {
	reply, ok := f.replies[cmd]
	if !ok {
		return nil, fmt.Errorf("no canned reply for %q", cmd)
	}
	return []byte(reply), nil
}

func newTestExporter(replies map[string]string) *Exporter {
	gin.SetMode(gin.TestMode)
	return New(DefaultConfig(), client.New(fakeTransport{replies: replies}))
}

func TestHealthRoute(t *testing.T) {
	testlog.Start(t)
	e := newTestExporter(nil)
	rec := httptest.NewRecorder()
	e.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d", rec.Code)
	}
	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("parse body: %v", err)
	}
	if body["status"] != "ok" || body["service"] != "hyprexportd" {
		t.Fatalf("unexpected body: %v", body)
	}
}

func TestWorkspacesRouteDecodesState(t *testing.T) {
	testlog.Start(t)
	e := newTestExporter(map[string]string{
		"j/workspaces": `[{"id": 1, "name": "dev", "monitor": "DP-1", "windows": 2, "hasfullscreen": false}]`,
	})
	rec := httptest.NewRecorder()
	e.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/workspaces", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d body: %s", rec.Code, rec.Body.String())
	}
	var out []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("parse body: %v", err)
	}
	if len(out) != 1 || out[0]["name"] != "dev" || out[0]["id"] != float64(1) {
		t.Fatalf("unexpected body: %v", out)
	}
}

func TestEntityRouteSurfacesDecodeFailure(t *testing.T) {
	testlog.Start(t)
	e := newTestExporter(map[string]string{
		"j/workspaces": `[{"id": -5, "name": "x", "monitor": "DP-1", "windows": 0, "hasfullscreen": false}]`,
	})
	rec := httptest.NewRecorder()
	e.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/workspaces", nil))
	if rec.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", rec.Code)
	}
}

func TestPollRefreshesGauges(t *testing.T) {
	testlog.Start(t)
	e := newTestExporter(map[string]string{
		"j/monitors": `[]`,
		"j/workspaces": `[
			{"id": 1, "name": "dev", "monitor": "DP-1", "windows": 3, "hasfullscreen": false},
			{"id": -99, "name": "special", "monitor": "DP-1", "windows": 1, "hasfullscreen": false}
		]`,
		"j/clients": `[]`,
	})
	if err := e.Poll(context.Background()); err != nil {
		t.Fatalf("poll: %v", err)
	}
}

func TestPollPropagatesTransportFailure(t *testing.T) {
	testlog.Start(t)
	e := newTestExporter(nil)
	if err := e.Poll(context.Background()); err == nil {
		t.Fatalf("expected poll error")
	}
}
