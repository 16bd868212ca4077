// Package transport owns the control socket connection lifecycle.
//
// The compositor answers one command per connection and closes the
// stream after replying, so every request dials fresh. Retry policy
// belongs to the caller.
package transport

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	EnvRuntimeDir        = "XDG_RUNTIME_DIR"
	EnvInstanceSignature = "HYPRLAND_INSTANCE_SIGNATURE"

	socketName = ".socket.sock"
)

var (
	ErrNoRuntimeDir = errors.New("transport: XDG_RUNTIME_DIR not set")
	ErrNoInstance   = errors.New("transport: HYPRLAND_INSTANCE_SIGNATURE not set")
)

// Socket addresses one compositor control socket.
type Socket struct {
	Path string
}

// Discover resolves the control socket path for the running compositor
// instance from the environment.
func Discover() (Socket, error) {
	runtimeDir := os.Getenv(EnvRuntimeDir)
	if runtimeDir == "" {
		return Socket{}, ErrNoRuntimeDir
	}
	instance := os.Getenv(EnvInstanceSignature)
	if instance == "" {
		return Socket{}, ErrNoInstance
	}
	return Socket{Path: filepath.Join(runtimeDir, "hypr", instance, socketName)}, nil
}

// Request sends one command and reads the full reply. The context
// deadline bounds the whole exchange via connection deadlines.
func (s Socket) Request(ctx context.Context, cmd string) ([]byte, error) {
	start := time.Now()

	var dialer net.Dialer
	conn, err := dialer.DialContext(ctx, "unix", s.Path)
	if err != nil {
		return nil, fmt.Errorf("transport: dial %s: %w", s.Path, err)
	}
	defer conn.Close()

	if deadline, ok := ctx.Deadline(); ok {
		if err := conn.SetDeadline(deadline); err != nil {
			return nil, fmt.Errorf("transport: set deadline: %w", err)
		}
	}

	if _, err := conn.Write([]byte(cmd)); err != nil {
		return nil, fmt.Errorf("transport: write command %q: %w", cmd, err)
	}

	payload, err := io.ReadAll(conn)
	if err != nil {
		return nil, fmt.Errorf("transport: read reply for %q: %w", cmd, err)
	}

	log.Debug().
		Str("command", cmd).
		Int("bytes", len(payload)).
		Dur("duration", time.Since(start)).
		Msg("socket_request")
	return payload, nil
}
