package transport

import (
	"context"
	"io"
	"net"
	"path/filepath"
	"testing"
	"time"

	"github.com/danmuck/hyprctl/internal/testutil/testlog"
)

// serveOnce accepts one connection, records the command it receives and
// writes reply before closing, matching the compositor's one-shot socket.
func serveOnce(t *testing.T, path string, reply []byte) <-chan string {
	t.Helper()
	ln, err := net.Listen("unix", path)
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	t.Cleanup(func() { ln.Close() })

	received := make(chan string, 1)
	go func() {
		conn, err := ln.Accept()
		if err != nil {
			return
		}
		defer conn.Close()
		buf := make([]byte, 256)
		n, err := conn.Read(buf)
		if err != nil && err != io.EOF {
			return
		}
		received <- string(buf[:n])
		conn.Write(reply)
	}()
	return received
}

func TestRequestRoundTrip(t *testing.T) {
	testlog.Start(t)
	path := filepath.Join(t.TempDir(), "hypr.sock")
	received := serveOnce(t, path, []byte(`[{"id":1}]`))

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	payload, err := Socket{Path: path}.Request(ctx, "j/workspaces")
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if string(payload) != `[{"id":1}]` {
		t.Fatalf("unexpected payload: %s", payload)
	}
	select {
	case cmd := <-received:
		if cmd != "j/workspaces" {
			t.Fatalf("unexpected command on wire: %q", cmd)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("server never received command")
	}
}

func TestRequestDialFailure(t *testing.T) {
	testlog.Start(t)
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	_, err := Socket{Path: filepath.Join(t.TempDir(), "missing.sock")}.Request(ctx, "j/monitors")
	if err == nil {
		t.Fatalf("expected dial error")
	}
}

func TestDiscoverRequiresEnvironment(t *testing.T) {
	testlog.Start(t)
	t.Setenv(EnvRuntimeDir, "/run/user/1000")
	t.Setenv(EnvInstanceSignature, "")
	if _, err := Discover(); err != ErrNoInstance {
		t.Fatalf("expected ErrNoInstance, got %v", err)
	}

	t.Setenv(EnvInstanceSignature, "abc123_169")
	sock, err := Discover()
	if err != nil {
		t.Fatalf("discover: %v", err)
	}
	want := "/run/user/1000/hypr/abc123_169/.socket.sock"
	if sock.Path != want {
		t.Fatalf("unexpected path: %q want %q", sock.Path, want)
	}

	t.Setenv(EnvRuntimeDir, "")
	if _, err := Discover(); err != ErrNoRuntimeDir {
		t.Fatalf("expected ErrNoRuntimeDir, got %v", err)
	}
}
