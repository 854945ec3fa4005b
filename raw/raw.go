// Package raw provides the pre-escaped markup leaf used in JsonML trees.
//
// A Raw value is appended to a tree as an opaque child: the tree layer never
// descends into it and a renderer emits it without escaping.
package raw

import "encoding/json"

type Raw struct {
	markup string
}

func New(markup string) Raw {
	return Raw{markup: markup}
}

func (r Raw) String() string {
	return r.markup
}

// MarshalJSON encodes r as its plain markup string. Rawness does not
// survive a round trip through JSON.
func (r Raw) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.markup)
}

func (r Raw) MarshalText() ([]byte, error) {
	return []byte(r.markup), nil
}

func IsRaw(v any) bool {
	switch x := v.(type) {
	case Raw:
		return true
	case *Raw:
		return x != nil
	default:
		return false
	}
}
