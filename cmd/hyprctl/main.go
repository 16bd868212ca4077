package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/danmuck/hyprctl/internal/client"
	"github.com/danmuck/hyprctl/internal/logging"
	"github.com/danmuck/hyprctl/internal/protocol/data"
	"github.com/danmuck/hyprctl/internal/transport"
)

const usage = `usage: hyprctl [flags] <query> [option]

queries:
  monitors workspaces clients activewindow layers devices version
  getoption <name>

flags:
  -config path    TOML config file
  -socket path    control socket path (overrides config and discovery)
  -timeout d      request timeout (default 5s)
  -kind k         option value kind for getoption: auto|int|float|string
  -compact        single-line JSON output
`

func main() {
	logging.ConfigureRuntime()
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "hyprctl: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("hyprctl", flag.ContinueOnError)
	fs.Usage = func() { fmt.Fprint(os.Stderr, usage) }
	configPath := fs.String("config", "", "TOML config file")
	socketPath := fs.String("socket", "", "control socket path")
	timeout := fs.Duration("timeout", 0, "request timeout")
	kindName := fs.String("kind", "auto", "option value kind for getoption")
	compact := fs.Bool("compact", false, "single-line JSON output")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 1 {
		fs.Usage()
		return fmt.Errorf("missing query")
	}

	cfg := defaultCLIConfig()
	if *configPath != "" {
		loaded, err := loadCLIConfig(*configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if *socketPath != "" {
		cfg.SocketPath = *socketPath
	}
	if *timeout > 0 {
		cfg.Timeout = *timeout
	}
	if *compact {
		cfg.Pretty = false
	}

	sock, err := resolveSocket(cfg)
	if err != nil {
		return err
	}

	kind, err := parseKind(*kindName)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Timeout)
	defer cancel()

	out, err := query(ctx, client.New(sock), fs.Args(), kind)
	if err != nil {
		return err
	}
	return printJSON(out, cfg.Pretty)
}

func resolveSocket(cfg cliConfig) (transport.Socket, error) {
	if cfg.SocketPath != "" {
		return transport.Socket{Path: cfg.SocketPath}, nil
	}
	return transport.Discover()
}

func parseKind(name string) (data.ValueKind, error) {
	switch name {
	case "auto":
		return data.KindAuto, nil
	case "int":
		return data.KindInt, nil
	case "float":
		return data.KindFloat, nil
	case "string":
		return data.KindString, nil
	default:
		return 0, fmt.Errorf("unknown value kind %q", name)
	}
}

func query(ctx context.Context, c *client.Client, args []string, kind data.ValueKind) (any, error) {
	switch args[0] {
	case "monitors":
		return c.Monitors(ctx)
	case "workspaces":
		return c.Workspaces(ctx)
	case "clients":
		return c.Clients(ctx)
	case "activewindow":
		return c.ActiveWindow(ctx)
	case "layers":
		return c.Layers(ctx)
	case "devices":
		return c.Devices(ctx)
	case "version":
		return c.Version(ctx)
	case "getoption":
		if len(args) < 2 {
			return nil, fmt.Errorf("getoption requires an option name")
		}
		return c.KeywordTyped(ctx, args[1], kind)
	default:
		return nil, fmt.Errorf("unknown query %q", args[0])
	}
}

func printJSON(v any, pretty bool) error {
	var out []byte
	var err error
	if pretty {
		out, err = json.MarshalIndent(v, "", "  ")
	} else {
		out, err = json.Marshal(v)
	}
	if err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	fmt.Println(string(out))
	return nil
}
