package data

import (
	"fmt"

	"github.com/danmuck/hyprctl/internal/protocol/command"
	"github.com/danmuck/hyprctl/internal/protocol/wire"
)

// Decode parses a raw reply payload and routes it to the decoder for the
// requested entity kind. Keyword requests resolve their value with the
// KindAuto policy; callers needing a pinned kind use DecodeKeyword.
func Decode(req command.Request, payload []byte) (any, error) {
	v, err := wire.Parse(payload)
	if err != nil {
		return nil, err
	}
	switch req.Kind {
	case command.Monitors:
		return DecodeMonitors(v)
	case command.Workspaces:
		return DecodeWorkspaces(v)
	case command.Clients:
		return DecodeClients(v)
	case command.ActiveWindow:
		return DecodeActiveWindow(v)
	case command.Layers:
		return DecodeLayers(v)
	case command.Devices:
		return DecodeDevices(v)
	case command.Version:
		return DecodeVersion(v)
	case command.Keyword:
		return DecodeKeyword(v, KindAuto)
	default:
		return nil, fmt.Errorf("data: no decoder for request kind %d", uint8(req.Kind))
	}
}
