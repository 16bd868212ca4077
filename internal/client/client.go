// Package client is the typed surface over the control socket: one
// method per catalog entry, each pairing the request with its decoder.
package client

import (
	"context"
	"fmt"

	"github.com/danmuck/hyprctl/internal/protocol/command"
	"github.com/danmuck/hyprctl/internal/protocol/data"
	"github.com/danmuck/hyprctl/internal/protocol/wire"
)

// Transport sends one command and returns the raw reply payload.
type Transport interface {
	Request(ctx context.Context, cmd string) ([]byte, error)
}

type Client struct {
	tr Transport
}

func New(tr Transport) *Client {
	return &Client{tr: tr}
}

// request renders the catalog entry, sends it and parses the reply into
// a generic tree for the entity decoder.
func (c *Client) request(ctx context.Context, req command.Request) (any, error) {
	cmd, err := req.Command()
	if err != nil {
		return nil, err
	}
	payload, err := c.tr.Request(ctx, cmd)
	if err != nil {
		return nil, fmt.Errorf("client: %s: %w", req.Kind, err)
	}
	return wire.Parse(payload)
}

func (c *Client) Monitors(ctx context.Context) ([]data.Monitor, error) {
	v, err := c.request(ctx, command.NewRequest(command.Monitors))
	if err != nil {
		return nil, err
	}
	return data.DecodeMonitors(v)
}

func (c *Client) Workspaces(ctx context.Context) ([]data.Workspace, error) {
	v, err := c.request(ctx, command.NewRequest(command.Workspaces))
	if err != nil {
		return nil, err
	}
	return data.DecodeWorkspaces(v)
}

func (c *Client) Clients(ctx context.Context) ([]data.Client, error) {
	v, err := c.request(ctx, command.NewRequest(command.Clients))
	if err != nil {
		return nil, err
	}
	return data.DecodeClients(v)
}

func (c *Client) ActiveWindow(ctx context.Context) (data.ActiveWindow, error) {
	v, err := c.request(ctx, command.NewRequest(command.ActiveWindow))
	if err != nil {
		return data.ActiveWindow{}, err
	}
	return data.DecodeActiveWindow(v)
}

func (c *Client) Layers(ctx context.Context) (data.Layers, error) {
	v, err := c.request(ctx, command.NewRequest(command.Layers))
	if err != nil {
		return nil, err
	}
	return data.DecodeLayers(v)
}

func (c *Client) Devices(ctx context.Context) (data.Devices, error) {
	v, err := c.request(ctx, command.NewRequest(command.Devices))
	if err != nil {
		return data.Devices{}, err
	}
	return data.DecodeDevices(v)
}

func (c *Client) Version(ctx context.Context) (data.Version, error) {
	v, err := c.request(ctx, command.NewRequest(command.Version))
	if err != nil {
		return data.Version{}, err
	}
	return data.DecodeVersion(v)
}

// Keyword looks up a named option and resolves its value with the
// KindAuto policy.
func (c *Client) Keyword(ctx context.Context, option string) (data.Keyword, error) {
	return c.KeywordTyped(ctx, option, data.KindAuto)
}

// KeywordTyped looks up a named option with the caller pinning which
// wire field is authoritative.
func (c *Client) KeywordTyped(ctx context.Context, option string, kind data.ValueKind) (data.Keyword, error) {
	v, err := c.request(ctx, command.NewKeyword(option))
	if err != nil {
		return data.Keyword{}, err
	}
	return data.DecodeKeyword(v, kind)
}
