package data

import (
	"strconv"

	"github.com/danmuck/hyprctl/internal/protocol/wire"
)

// Mouse is one pointer device.
type Mouse struct {
	Address Address `json:"address"`
	Name    string  `json:"name"`
}

// Keyboard is one keyboard device with its xkb configuration.
type Keyboard struct {
	Address      Address `json:"address"`
	Name         string  `json:"name"`
	Rules        string  `json:"rules"`
	Model        string  `json:"model"`
	Layout       string  `json:"layout"`
	Variant      string  `json:"variant"`
	Options      string  `json:"options"`
	ActiveKeymap string  `json:"active_keymap"`
}

// TabletType is the closed set of tablet device kinds.
type TabletType uint8

const (
	TabletPad TabletType = iota + 1
	TabletTool
)

func (t TabletType) String() string {
	switch t {
	case TabletPad:
		return "tabletPad"
	case TabletTool:
		return "tabletTool"
	default:
		return "tabletType(" + strconv.Itoa(int(t)) + ")"
	}
}

// TabletBelongsTo names the parent of a tablet device. The wire shape
// depends on the tablet's type: a pad's parent carries a name and address,
// a tool's parent is a bare address.
type TabletBelongsTo struct {
	Type    TabletType `json:"type"`
	Name    string     `json:"name,omitempty"`
	Address Address    `json:"address"`
}

// Tablet is one tablet device. Type and BelongsTo are absent for tablets
// that report neither; that is a valid record, not a decode failure.
type Tablet struct {
	Address   Address          `json:"address"`
	Type      *TabletType      `json:"type,omitempty"`
	BelongsTo *TabletBelongsTo `json:"belongsTo,omitempty"`
	Name      string           `json:"name,omitempty"`
}

// Devices is the full input device inventory.
type Devices struct {
	Mice      []Mouse    `json:"mice"`
	Keyboards []Keyboard `json:"keyboards"`
	Tablets   []Tablet   `json:"tablets"`
}

func decodeMouse(entity string, obj wire.Object) (Mouse, error) {
	addr, err := obj.String(entity, "address")
	if err != nil {
		return Mouse{}, err
	}
	name, err := obj.String(entity, "name")
	if err != nil {
		return Mouse{}, err
	}
	return Mouse{Address: Address(addr), Name: name}, nil
}

func decodeKeyboard(entity string, obj wire.Object) (Keyboard, error) {
	var kb Keyboard
	addr, err := obj.String(entity, "address")
	if err != nil {
		return Keyboard{}, err
	}
	kb.Address = Address(addr)
	for _, f := range []struct {
		field string
		dst   *string
	}{
		{"name", &kb.Name},
		{"rules", &kb.Rules},
		{"model", &kb.Model},
		{"layout", &kb.Layout},
		{"variant", &kb.Variant},
		{"options", &kb.Options},
		{"active_keymap", &kb.ActiveKeymap},
	} {
		v, err := obj.String(entity, f.field)
		if err != nil {
			return Keyboard{}, err
		}
		*f.dst = v
	}
	return kb, nil
}

func decodeTabletType(entity string, raw string) (TabletType, error) {
	switch raw {
	case "tabletPad":
		return TabletPad, nil
	case "tabletTool":
		return TabletTool, nil
	default:
		return 0, wire.UnknownVariantError{Entity: entity, Field: "type", Value: raw}
	}
}

func decodeTablet(entity string, obj wire.Object) (Tablet, error) {
	var tb Tablet

	addr, err := obj.String(entity, "address")
	if err != nil {
		return Tablet{}, err
	}
	tb.Address = Address(addr)

	if obj.Has("name") {
		if tb.Name, err = obj.String(entity, "name"); err != nil {
			return Tablet{}, err
		}
	}

	if obj.Has("type") {
		rawType, err := obj.String(entity, "type")
		if err != nil {
			return Tablet{}, err
		}
		tt, err := decodeTabletType(entity, rawType)
		if err != nil {
			return Tablet{}, err
		}
		tb.Type = &tt
	}

	if !obj.Has("belongsTo") {
		return tb, nil
	}

	// The belongsTo shape is selected by the already-decoded type
	// discriminant; a parent without a discriminant is undecodable.
	if tb.Type == nil {
		return Tablet{}, wire.MissingFieldError{Entity: entity, Field: "type"}
	}
	switch *tb.Type {
	case TabletPad:
		parentObj, err := obj.Object(entity, "belongsTo")
		if err != nil {
			return Tablet{}, err
		}
		parentEntity := entity + ".belongsTo"
		name, err := parentObj.String(parentEntity, "name")
		if err != nil {
			return Tablet{}, err
		}
		parentAddr, err := parentObj.String(parentEntity, "address")
		if err != nil {
			return Tablet{}, err
		}
		tb.BelongsTo = &TabletBelongsTo{Type: TabletPad, Name: name, Address: Address(parentAddr)}
	case TabletTool:
		parentAddr, err := obj.String(entity, "belongsTo")
		if err != nil {
			return Tablet{}, err
		}
		tb.BelongsTo = &TabletBelongsTo{Type: TabletTool, Address: Address(parentAddr)}
	}
	return tb, nil
}

// DecodeDevices normalizes the devices reply.
func DecodeDevices(v any) (Devices, error) {
	obj, err := wire.AsObject("devices", v)
	if err != nil {
		return Devices{}, err
	}

	var devices Devices

	mice, err := obj.Array("devices", "mice")
	if err != nil {
		return Devices{}, err
	}
	devices.Mice = make([]Mouse, 0, len(mice))
	for i, item := range mice {
		entity := "devices.mice[" + strconv.Itoa(i) + "]"
		mObj, err := wire.AsObject(entity, item)
		if err != nil {
			return Devices{}, err
		}
		m, err := decodeMouse(entity, mObj)
		if err != nil {
			return Devices{}, err
		}
		devices.Mice = append(devices.Mice, m)
	}

	keyboards, err := obj.Array("devices", "keyboards")
	if err != nil {
		return Devices{}, err
	}
	devices.Keyboards = make([]Keyboard, 0, len(keyboards))
	for i, item := range keyboards {
		entity := "devices.keyboards[" + strconv.Itoa(i) + "]"
		kObj, err := wire.AsObject(entity, item)
		if err != nil {
			return Devices{}, err
		}
		kb, err := decodeKeyboard(entity, kObj)
		if err != nil {
			return Devices{}, err
		}
		devices.Keyboards = append(devices.Keyboards, kb)
	}

	tablets, err := obj.Array("devices", "tablets")
	if err != nil {
		return Devices{}, err
	}
	devices.Tablets = make([]Tablet, 0, len(tablets))
	for i, item := range tablets {
		entity := "devices.tablets[" + strconv.Itoa(i) + "]"
		tObj, err := wire.AsObject(entity, item)
		if err != nil {
			return Devices{}, err
		}
		tb, err := decodeTablet(entity, tObj)
		if err != nil {
			return Devices{}, err
		}
		devices.Tablets = append(devices.Tablets, tb)
	}

	return devices, nil
}
