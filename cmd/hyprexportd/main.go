package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/danmuck/hyprctl/internal/client"
	"github.com/danmuck/hyprctl/internal/exporter"
	"github.com/danmuck/hyprctl/internal/observability"
	"github.com/danmuck/hyprctl/internal/transport"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "hyprexportd: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("hyprexportd", flag.ContinueOnError)
	configPath := fs.String("config", "", "TOML config file")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg := exporter.DefaultConfig()
	if *configPath != "" {
		loaded, err := exporter.LoadConfig(*configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	observability.InitLogger(cfg.Service)

	sock := transport.Socket{Path: cfg.SocketPath}
	if sock.Path == "" {
		discovered, err := transport.Discover()
		if err != nil {
			return err
		}
		sock = discovered
	}

	e := exporter.New(cfg, client.New(sock))
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	e.StartPolling(ctx)
	return e.Run()
}
