package exporter

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/danmuck/hyprctl/internal/testutil/testlog"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "exporter.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadConfigDefaultsAndOverrides(t *testing.T) {
	testlog.Start(t)
	path := writeConfig(t, `
addr = "127.0.0.1:9300"
cors_origins = ["http://localhost:3000"]
socket_path = "/tmp/hypr/.socket.sock"
`)
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Addr != "127.0.0.1:9300" {
		t.Fatalf("unexpected addr: %q", cfg.Addr)
	}
	if cfg.Service != "hyprexportd" {
		t.Fatalf("expected default service name, got %q", cfg.Service)
	}
	if cfg.PollIntervalMS != 2000 {
		t.Fatalf("expected default poll interval, got %d", cfg.PollIntervalMS)
	}
	if cfg.SocketPath != "/tmp/hypr/.socket.sock" {
		t.Fatalf("unexpected socket path: %q", cfg.SocketPath)
	}
	if len(cfg.CorsOrigins) != 1 {
		t.Fatalf("unexpected cors origins: %v", cfg.CorsOrigins)
	}
}

func TestLoadConfigRejectsMissingFile(t *testing.T) {
	testlog.Start(t)
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Fatalf("expected error")
	}
}

func TestLoadConfigRejectsMalformedToml(t *testing.T) {
	testlog.Start(t)
	path := writeConfig(t, `addr = [broken`)
	if _, err := LoadConfig(path); err == nil {
		t.Fatalf("expected error")
	}
}
