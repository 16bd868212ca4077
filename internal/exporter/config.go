package exporter

import (
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Config holds the hyprexportd runtime settings.
type Config struct {
	Service        string   `toml:"service"`
	Addr           string   `toml:"addr"`
	CorsOrigins    []string `toml:"cors_origins"`
	SocketPath     string   `toml:"socket_path"`
	PollIntervalMS int      `toml:"poll_interval_ms"`
}

func DefaultConfig() Config {
	return Config{
		Service:        "hyprexportd",
		Addr:           ":9187",
		PollIntervalMS: 2000,
	}
}

// LoadConfig reads a TOML config and overlays it on the defaults.
// SocketPath stays empty unless set; the caller falls back to
// environment discovery.
func LoadConfig(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("load exporter config: %w", err)
	}
	var cfg Config
	if err := toml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse exporter config: %w", err)
	}
	defaults := DefaultConfig()
	if strings.TrimSpace(cfg.Service) == "" {
		cfg.Service = defaults.Service
	}
	if strings.TrimSpace(cfg.Addr) == "" {
		cfg.Addr = defaults.Addr
	}
	if cfg.PollIntervalMS <= 0 {
		cfg.PollIntervalMS = defaults.PollIntervalMS
	}
	cfg.SocketPath = strings.TrimSpace(cfg.SocketPath)
	return cfg, nil
}
