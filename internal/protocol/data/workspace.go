package data

import (
	"strconv"

	"github.com/danmuck/hyprctl/internal/protocol/wire"
)

// specialWorkspaceSentinel is the wire id the compositor reports for the
// special workspace.
const specialWorkspaceSentinel int64 = -99

// WorkspaceID is a closed union: either a regular workspace numbered
// 0..255 or the special workspace. The zero value is Regular(0).
type WorkspaceID struct {
	special bool
	num     uint8
}

// SpecialWorkspace returns the id of the special workspace.
func SpecialWorkspace() WorkspaceID {
	return WorkspaceID{special: true}
}

// RegularWorkspace returns the id of a numbered workspace.
func RegularWorkspace(n uint8) WorkspaceID {
	return WorkspaceID{num: n}
}

func (id WorkspaceID) IsSpecial() bool {
	return id.special
}

// Num returns the workspace number; ok is false for the special workspace.
func (id WorkspaceID) Num() (uint8, bool) {
	if id.special {
		return 0, false
	}
	return id.num, true
}

// Raw returns the wire encoding of the id.
func (id WorkspaceID) Raw() int64 {
	if id.special {
		return specialWorkspaceSentinel
	}
	return int64(id.num)
}

func (id WorkspaceID) String() string {
	if id.special {
		return "special"
	}
	return strconv.FormatUint(uint64(id.num), 10)
}

// MarshalJSON re-emits the wire scalar, sentinel included.
func (id WorkspaceID) MarshalJSON() ([]byte, error) {
	return strconv.AppendInt(nil, id.Raw(), 10), nil
}

// DecodeWorkspaceID coerces the raw wire scalar into the closed union.
// −99 is the special workspace, 0..255 is a regular workspace, anything
// else is unrepresentable and fails rather than being clamped.
func DecodeWorkspaceID(raw int64) (WorkspaceID, error) {
	switch {
	case raw == specialWorkspaceSentinel:
		return SpecialWorkspace(), nil
	case raw >= 0 && raw <= 255:
		return RegularWorkspace(uint8(raw)), nil
	default:
		return WorkspaceID{}, wire.SentinelError{Entity: "workspace id", Value: raw}
	}
}

// WorkspaceBasic is the minimal workspace reference embedded in monitor
// and client records. It is a snapshot copy, not a link.
type WorkspaceBasic struct {
	ID   WorkspaceID `json:"id"`
	Name string      `json:"name"`
}

// Workspace is one logical desktop.
type Workspace struct {
	ID         WorkspaceID `json:"id"`
	Name       string      `json:"name"`
	Monitor    string      `json:"monitor"`
	Windows    uint8       `json:"windows"`
	Fullscreen bool        `json:"fullscreen"`
}

// workspaceRaw mirrors the wire record before sentinel coercion.
type workspaceRaw struct {
	id         int64
	name       string
	monitor    string
	windows    uint8
	fullscreen bool
}

func decodeWorkspaceRaw(entity string, obj wire.Object) (workspaceRaw, error) {
	var raw workspaceRaw
	var err error
	if raw.id, err = obj.Int(entity, "id"); err != nil {
		return workspaceRaw{}, err
	}
	if raw.name, err = obj.String(entity, "name"); err != nil {
		return workspaceRaw{}, err
	}
	if raw.monitor, err = obj.String(entity, "monitor"); err != nil {
		return workspaceRaw{}, err
	}
	windows, err := obj.IntIn(entity, "windows", 0, 255)
	if err != nil {
		return workspaceRaw{}, err
	}
	raw.windows = uint8(windows)
	// The wire spells this one without camel case.
	if raw.fullscreen, err = obj.Bool(entity, "hasfullscreen"); err != nil {
		return workspaceRaw{}, err
	}
	return raw, nil
}

func normalizeWorkspace(raw workspaceRaw) (Workspace, error) {
	id, err := DecodeWorkspaceID(raw.id)
	if err != nil {
		return Workspace{}, err
	}
	return Workspace{
		ID:         id,
		Name:       raw.name,
		Monitor:    raw.monitor,
		Windows:    raw.windows,
		Fullscreen: raw.fullscreen,
	}, nil
}

func decodeWorkspaceBasic(entity string, obj wire.Object) (WorkspaceBasic, error) {
	rawID, err := obj.Int(entity, "id")
	if err != nil {
		return WorkspaceBasic{}, err
	}
	id, err := DecodeWorkspaceID(rawID)
	if err != nil {
		return WorkspaceBasic{}, err
	}
	name, err := obj.String(entity, "name")
	if err != nil {
		return WorkspaceBasic{}, err
	}
	return WorkspaceBasic{ID: id, Name: name}, nil
}

// DecodeWorkspace normalizes one workspace record.
func DecodeWorkspace(v any) (Workspace, error) {
	obj, err := wire.AsObject("workspace", v)
	if err != nil {
		return Workspace{}, err
	}
	raw, err := decodeWorkspaceRaw("workspace", obj)
	if err != nil {
		return Workspace{}, err
	}
	return normalizeWorkspace(raw)
}

// DecodeWorkspaces normalizes the workspaces reply.
func DecodeWorkspaces(v any) ([]Workspace, error) {
	arr, err := wire.AsArray("workspaces", v)
	if err != nil {
		return nil, err
	}
	out := make([]Workspace, 0, len(arr))
	for i, item := range arr {
		entity := "workspaces[" + strconv.Itoa(i) + "]"
		obj, err := wire.AsObject(entity, item)
		if err != nil {
			return nil, err
		}
		raw, err := decodeWorkspaceRaw(entity, obj)
		if err != nil {
			return nil, err
		}
		ws, err := normalizeWorkspace(raw)
		if err != nil {
			return nil, err
		}
		out = append(out, ws)
	}
	return out, nil
}
