// Package command enumerates the data requests the control socket answers.
// It is routing metadata only: a catalog entry identifies which entity
// decoder must run on the reply, it carries no decode logic itself.
package command

import (
	"fmt"
	"strings"
)

// Kind identifies one entity shape the socket can return.
type Kind uint8

const (
	Monitors Kind = iota + 1
	Workspaces
	Clients
	ActiveWindow
	Layers
	Devices
	Version
	Keyword
)

func (k Kind) String() string {
	switch k {
	case Monitors:
		return "monitors"
	case Workspaces:
		return "workspaces"
	case Clients:
		return "clients"
	case ActiveWindow:
		return "activewindow"
	case Layers:
		return "layers"
	case Devices:
		return "devices"
	case Version:
		return "version"
	case Keyword:
		return "getoption"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Request is one catalog entry. Option is set only for Keyword requests.
type Request struct {
	Kind   Kind
	Option string
}

// NewRequest builds a catalog entry for a fixed entity kind.
func NewRequest(kind Kind) Request {
	return Request{Kind: kind}
}

// NewKeyword builds a catalog entry for a named option lookup.
func NewKeyword(option string) Request {
	return Request{Kind: Keyword, Option: option}
}

// Command renders the wire command string for this entry. The j/ prefix
// requests the structured reply form.
func (r Request) Command() (string, error) {
	switch r.Kind {
	case Monitors, Workspaces, Clients, ActiveWindow, Layers, Devices, Version:
		return "j/" + r.Kind.String(), nil
	case Keyword:
		option := strings.TrimSpace(r.Option)
		if option == "" {
			return "", fmt.Errorf("command: keyword request missing option name")
		}
		if strings.ContainsAny(option, " \t\n") {
			return "", fmt.Errorf("command: keyword option %q contains whitespace", option)
		}
		return "j/getoption " + option, nil
	default:
		return "", fmt.Errorf("command: unknown request kind %d", uint8(r.Kind))
	}
}
