package data

import (
	"strconv"

	"github.com/danmuck/hyprctl/internal/protocol/wire"
)

// LayerClient is one layer-shell surface.
type LayerClient struct {
	Address   Address `json:"address"`
	X         int32   `json:"x"`
	Y         int32   `json:"y"`
	W         uint16  `json:"w"`
	H         uint16  `json:"h"`
	Namespace string  `json:"namespace"`
}

// LayerDisplay maps layer level names to their surfaces. The slice order
// within a level is the z-order reported by the compositor and is
// preserved as-is.
type LayerDisplay struct {
	Levels map[string][]LayerClient `json:"levels"`
}

// Layers maps display names to their layer surfaces.
type Layers map[string]LayerDisplay

func decodeLayerClient(entity string, obj wire.Object) (LayerClient, error) {
	var lc LayerClient

	addr, err := obj.String(entity, "address")
	if err != nil {
		return LayerClient{}, err
	}
	lc.Address = Address(addr)

	x, err := obj.IntIn(entity, "x", -2147483648, 2147483647)
	if err != nil {
		return LayerClient{}, err
	}
	lc.X = int32(x)
	y, err := obj.IntIn(entity, "y", -2147483648, 2147483647)
	if err != nil {
		return LayerClient{}, err
	}
	lc.Y = int32(y)

	w, err := obj.IntIn(entity, "w", 0, 65535)
	if err != nil {
		return LayerClient{}, err
	}
	lc.W = uint16(w)
	h, err := obj.IntIn(entity, "h", 0, 65535)
	if err != nil {
		return LayerClient{}, err
	}
	lc.H = uint16(h)

	if lc.Namespace, err = obj.String(entity, "namespace"); err != nil {
		return LayerClient{}, err
	}
	return lc, nil
}

// DecodeLayers normalizes the layers reply: display name -> level name ->
// ordered surfaces.
func DecodeLayers(v any) (Layers, error) {
	obj, err := wire.AsObject("layers", v)
	if err != nil {
		return nil, err
	}
	out := make(Layers, len(obj))
	for display, rawDisplay := range obj {
		displayEntity := "layers[" + display + "]"
		displayObj, err := wire.AsObject(displayEntity, rawDisplay)
		if err != nil {
			return nil, err
		}
		levelsObj, err := displayObj.Object(displayEntity, "levels")
		if err != nil {
			return nil, err
		}
		levels := make(map[string][]LayerClient, len(levelsObj))
		for level, rawLevel := range levelsObj {
			levelEntity := displayEntity + ".levels[" + level + "]"
			arr, err := wire.AsArray(levelEntity, rawLevel)
			if err != nil {
				return nil, err
			}
			surfaces := make([]LayerClient, 0, len(arr))
			for i, item := range arr {
				entity := levelEntity + "[" + strconv.Itoa(i) + "]"
				surfObj, err := wire.AsObject(entity, item)
				if err != nil {
					return nil, err
				}
				lc, err := decodeLayerClient(entity, surfObj)
				if err != nil {
					return nil, err
				}
				surfaces = append(surfaces, lc)
			}
			levels[level] = surfaces
		}
		out[display] = LayerDisplay{Levels: levels}
	}
	return out, nil
}
