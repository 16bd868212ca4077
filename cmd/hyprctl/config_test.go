package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/danmuck/hyprctl/internal/testutil/testlog"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "hyprctl.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadCLIConfigDefaultsAndOverrides(t *testing.T) {
	testlog.Start(t)
	path := writeConfig(t, `
socket_path = "/tmp/hypr/.socket.sock"
timeout_ms = 1500
pretty = false
`)
	cfg, err := loadCLIConfig(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.SocketPath != "/tmp/hypr/.socket.sock" {
		t.Fatalf("unexpected socket path: %q", cfg.SocketPath)
	}
	if cfg.Timeout != 1500*time.Millisecond {
		t.Fatalf("unexpected timeout: %v", cfg.Timeout)
	}
	if cfg.Pretty {
		t.Fatalf("expected pretty disabled")
	}
}

func TestLoadCLIConfigPartialFileKeepsDefaults(t *testing.T) {
	testlog.Start(t)
	path := writeConfig(t, `socket_path = "/tmp/s.sock"`)
	cfg, err := loadCLIConfig(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Timeout != 5*time.Second {
		t.Fatalf("default timeout lost: %v", cfg.Timeout)
	}
	if !cfg.Pretty {
		t.Fatalf("default pretty lost")
	}
}

func TestLoadCLIConfigRejectsNonPositiveTimeout(t *testing.T) {
	testlog.Start(t)
	path := writeConfig(t, `timeout_ms = 0`)
	if _, err := loadCLIConfig(path); err == nil {
		t.Fatalf("expected error")
	}
}
