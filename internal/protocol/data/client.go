package data

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/danmuck/hyprctl/internal/protocol/wire"
)

// Address is the compositor's opaque identifier for a surface. It is
// compared and hashed as a token, never parsed for structure.
type Address string

// Client is one window.
type Client struct {
	Address   Address        `json:"address"`
	At        [2]int16       `json:"at"`
	Size      [2]uint16      `json:"size"`
	Workspace WorkspaceBasic `json:"workspace"`
	Floating  bool           `json:"floating"`
	Monitor   uint8          `json:"monitor"`
	Class     string         `json:"class"`
	Title     string         `json:"title"`
	PID       uint32         `json:"pid"`
	XWayland  bool           `json:"xwayland"`
}

// ActiveWindow wraps the possibly-absent focused client. The wire encodes
// absence as an empty object rather than null.
type ActiveWindow struct {
	Client *Client
}

func (w ActiveWindow) Present() bool {
	return w.Client != nil
}

// MarshalJSON reproduces the wire form: an empty object when no window
// is focused.
func (w ActiveWindow) MarshalJSON() ([]byte, error) {
	if w.Client == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(*w.Client)
}

func decodeClient(entity string, obj wire.Object) (Client, error) {
	var c Client

	addr, err := obj.String(entity, "address")
	if err != nil {
		return Client{}, err
	}
	c.Address = Address(addr)

	at, err := intPair(entity, obj, "at", -32768, 32767)
	if err != nil {
		return Client{}, err
	}
	c.At = [2]int16{int16(at[0]), int16(at[1])}

	size, err := intPair(entity, obj, "size", 0, 65535)
	if err != nil {
		return Client{}, err
	}
	c.Size = [2]uint16{uint16(size[0]), uint16(size[1])}

	wsObj, err := obj.Object(entity, "workspace")
	if err != nil {
		return Client{}, err
	}
	if c.Workspace, err = decodeWorkspaceBasic(entity+".workspace", wsObj); err != nil {
		return Client{}, err
	}

	if c.Floating, err = obj.Bool(entity, "floating"); err != nil {
		return Client{}, err
	}

	monitor, err := obj.IntIn(entity, "monitor", 0, 255)
	if err != nil {
		return Client{}, err
	}
	c.Monitor = uint8(monitor)

	if c.Class, err = obj.String(entity, "class"); err != nil {
		return Client{}, err
	}
	if c.Title, err = obj.String(entity, "title"); err != nil {
		return Client{}, err
	}

	pid, err := obj.IntIn(entity, "pid", 0, 4294967295)
	if err != nil {
		return Client{}, err
	}
	c.PID = uint32(pid)

	if c.XWayland, err = obj.Bool(entity, "xwayland"); err != nil {
		return Client{}, err
	}
	return c, nil
}

// intPair decodes a two-element numeric tuple field such as at or size.
func intPair(entity string, obj wire.Object, field string, min, max int64) ([2]int64, error) {
	arr, err := obj.Array(entity, field)
	if err != nil {
		return [2]int64{}, err
	}
	if len(arr) != 2 {
		return [2]int64{}, wire.TypeMismatchError{
			Entity:   entity,
			Field:    field,
			Expected: "array of 2 integers",
			Actual:   fmt.Sprintf("array of %d", len(arr)),
		}
	}
	var out [2]int64
	for i, item := range arr {
		n, err := wire.IntElem(entity, field+"["+strconv.Itoa(i)+"]", item, min, max)
		if err != nil {
			return [2]int64{}, err
		}
		out[i] = n
	}
	return out, nil
}

// DecodeClient normalizes one client record.
func DecodeClient(v any) (Client, error) {
	obj, err := wire.AsObject("client", v)
	if err != nil {
		return Client{}, err
	}
	return decodeClient("client", obj)
}

// DecodeClients normalizes the clients reply.
func DecodeClients(v any) ([]Client, error) {
	arr, err := wire.AsArray("clients", v)
	if err != nil {
		return nil, err
	}
	out := make([]Client, 0, len(arr))
	for i, item := range arr {
		entity := "clients[" + strconv.Itoa(i) + "]"
		obj, err := wire.AsObject(entity, item)
		if err != nil {
			return nil, err
		}
		c, err := decodeClient(entity, obj)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

// DecodeActiveWindow normalizes the activewindow reply. An empty object
// means no window is focused; any populated object must decode as a full
// client.
func DecodeActiveWindow(v any) (ActiveWindow, error) {
	obj, err := wire.AsObject("activewindow", v)
	if err != nil {
		return ActiveWindow{}, err
	}
	present, ok := wire.EmptyAsAbsent(obj)
	if !ok {
		return ActiveWindow{}, nil
	}
	c, err := decodeClient("activewindow", present)
	if err != nil {
		return ActiveWindow{}, err
	}
	return ActiveWindow{Client: &c}, nil
}
