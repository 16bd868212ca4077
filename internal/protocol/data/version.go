package data

import (
	"strconv"

	"github.com/danmuck/hyprctl/internal/protocol/wire"
)

// Version is the compositor build snapshot.
type Version struct {
	Branch        string   `json:"branch"`
	Commit        string   `json:"commit"`
	Dirty         bool     `json:"dirty"`
	CommitMessage string   `json:"commit_message"`
	Flags         []string `json:"flags"`
}

// DecodeVersion normalizes the version reply.
func DecodeVersion(v any) (Version, error) {
	obj, err := wire.AsObject("version", v)
	if err != nil {
		return Version{}, err
	}

	var out Version
	if out.Branch, err = obj.String("version", "branch"); err != nil {
		return Version{}, err
	}
	if out.Commit, err = obj.String("version", "commit"); err != nil {
		return Version{}, err
	}
	if out.Dirty, err = obj.Bool("version", "dirty"); err != nil {
		return Version{}, err
	}
	if out.CommitMessage, err = obj.String("version", "commit_message"); err != nil {
		return Version{}, err
	}

	flags, err := obj.Array("version", "flags")
	if err != nil {
		return Version{}, err
	}
	out.Flags = make([]string, 0, len(flags))
	for i, item := range flags {
		flag, err := wire.StringElem("version", "flags["+strconv.Itoa(i)+"]", item)
		if err != nil {
			return Version{}, err
		}
		out.Flags = append(out.Flags, flag)
	}
	return out, nil
}
