package data

import (
	"fmt"
	"strconv"

	"github.com/danmuck/hyprctl/internal/protocol/wire"
)

// Transform is one of the eight fixed output rotation/flip variants.
type Transform uint8

const (
	TransformNormal Transform = iota
	TransformNormal90
	TransformNormal180
	TransformNormal270
	TransformFlipped
	TransformFlipped90
	TransformFlipped180
	TransformFlipped270
)

// Code returns the numeric wire code; round-trips with DecodeTransform
// for all eight variants.
func (t Transform) Code() uint8 {
	return uint8(t)
}

func (t Transform) String() string {
	switch t {
	case TransformNormal:
		return "normal"
	case TransformNormal90:
		return "90"
	case TransformNormal180:
		return "180"
	case TransformNormal270:
		return "270"
	case TransformFlipped:
		return "flipped"
	case TransformFlipped90:
		return "flipped-90"
	case TransformFlipped180:
		return "flipped-180"
	case TransformFlipped270:
		return "flipped-270"
	default:
		return fmt.Sprintf("transform(%d)", uint8(t))
	}
}

// DecodeTransform is total over 0..7; any other code is an unknown variant.
func DecodeTransform(code int64) (Transform, error) {
	if code < 0 || code > 7 {
		return 0, wire.UnknownVariantError{Entity: "monitor", Field: "transform", Value: code}
	}
	return Transform(code), nil
}

// Monitor is one physical or virtual display.
type Monitor struct {
	ID              uint8          `json:"id"`
	Name            string         `json:"name"`
	Width           uint16         `json:"width"`
	Height          uint16         `json:"height"`
	RefreshRate     float32        `json:"refreshRate"`
	X               int32          `json:"x"`
	Y               int32          `json:"y"`
	ActiveWorkspace WorkspaceBasic `json:"activeWorkspace"`
	Reserved        [4]uint8       `json:"reserved"`
	Scale           float32        `json:"scale"`
	Transform       Transform      `json:"transform"`
	Focused         bool           `json:"focused"`
}

func decodeMonitor(entity string, obj wire.Object) (Monitor, error) {
	var m Monitor

	id, err := obj.IntIn(entity, "id", 0, 255)
	if err != nil {
		return Monitor{}, err
	}
	m.ID = uint8(id)

	if m.Name, err = obj.String(entity, "name"); err != nil {
		return Monitor{}, err
	}

	// Width and height are strictly positive; a zero-sized display is a
	// wire violation, not a degenerate monitor.
	width, err := obj.IntIn(entity, "width", 1, 65535)
	if err != nil {
		return Monitor{}, err
	}
	m.Width = uint16(width)
	height, err := obj.IntIn(entity, "height", 1, 65535)
	if err != nil {
		return Monitor{}, err
	}
	m.Height = uint16(height)

	refresh, err := obj.Float(entity, "refreshRate")
	if err != nil {
		return Monitor{}, err
	}
	m.RefreshRate = float32(refresh)

	x, err := obj.IntIn(entity, "x", -2147483648, 2147483647)
	if err != nil {
		return Monitor{}, err
	}
	m.X = int32(x)
	y, err := obj.IntIn(entity, "y", -2147483648, 2147483647)
	if err != nil {
		return Monitor{}, err
	}
	m.Y = int32(y)

	wsObj, err := obj.Object(entity, "activeWorkspace")
	if err != nil {
		return Monitor{}, err
	}
	if m.ActiveWorkspace, err = decodeWorkspaceBasic(entity+".activeWorkspace", wsObj); err != nil {
		return Monitor{}, err
	}

	reserved, err := obj.Array(entity, "reserved")
	if err != nil {
		return Monitor{}, err
	}
	if len(reserved) != 4 {
		return Monitor{}, wire.TypeMismatchError{
			Entity:   entity,
			Field:    "reserved",
			Expected: "array of 4 integers",
			Actual:   fmt.Sprintf("array of %d", len(reserved)),
		}
	}
	for i, item := range reserved {
		n, err := wire.IntElem(entity, "reserved["+strconv.Itoa(i)+"]", item, 0, 255)
		if err != nil {
			return Monitor{}, err
		}
		m.Reserved[i] = uint8(n)
	}

	scale, err := obj.Float(entity, "scale")
	if err != nil {
		return Monitor{}, err
	}
	m.Scale = float32(scale)

	code, err := obj.Int(entity, "transform")
	if err != nil {
		return Monitor{}, err
	}
	if m.Transform, err = DecodeTransform(code); err != nil {
		return Monitor{}, err
	}

	if m.Focused, err = obj.Bool(entity, "focused"); err != nil {
		return Monitor{}, err
	}
	return m, nil
}

// DecodeMonitors normalizes the monitors reply.
func DecodeMonitors(v any) ([]Monitor, error) {
	arr, err := wire.AsArray("monitors", v)
	if err != nil {
		return nil, err
	}
	out := make([]Monitor, 0, len(arr))
	for i, item := range arr {
		entity := "monitors[" + strconv.Itoa(i) + "]"
		obj, err := wire.AsObject(entity, item)
		if err != nil {
			return nil, err
		}
		m, err := decodeMonitor(entity, obj)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, nil
}
