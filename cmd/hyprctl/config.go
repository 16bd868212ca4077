package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// cliConfig is the resolved hyprctl runtime configuration.
type cliConfig struct {
	SocketPath string
	Timeout    time.Duration
	Pretty     bool
}

func defaultCLIConfig() cliConfig {
	return cliConfig{
		Timeout: 5 * time.Second,
		Pretty:  true,
	}
}

// hyprctl config.toml key mapping to runtime settings.
type fileConfig struct {
	SocketPath string `toml:"socket_path"`
	TimeoutMS  int    `toml:"timeout_ms"`
	Pretty     bool   `toml:"pretty"`
}

// loadCLIConfig overlays a TOML file on the defaults; only keys present
// in the file override.
func loadCLIConfig(path string) (cliConfig, error) {
	cfg := defaultCLIConfig()

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return cliConfig{}, fmt.Errorf("load hyprctl config: %w", err)
	}

	if meta.IsDefined("socket_path") {
		cfg.SocketPath = strings.TrimSpace(raw.SocketPath)
	}
	if meta.IsDefined("timeout_ms") {
		if raw.TimeoutMS <= 0 {
			return cliConfig{}, fmt.Errorf("load hyprctl config: timeout_ms must be positive, got %d", raw.TimeoutMS)
		}
		cfg.Timeout = time.Duration(raw.TimeoutMS) * time.Millisecond
	}
	if meta.IsDefined("pretty") {
		cfg.Pretty = raw.Pretty
	}
	return cfg, nil
}
