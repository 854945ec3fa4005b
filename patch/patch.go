// Package patch applies RFC 6902 JSON patches to JsonML trees.
//
// Patch paths address the generic encoding, so /2/1 is slot 1 of the
// element in slot 2 of the root. The patched document must still be a
// valid JsonML element.
package patch

import (
	"encoding/json"
	"fmt"

	jsonpatch "github.com/evanphx/json-patch"

	"github.com/signadot/jsonml/debug"
	"github.com/signadot/jsonml/encode"
	"github.com/signadot/jsonml/ir"
)

type Patch struct {
	ops jsonpatch.Patch
}

func Decode(d []byte) (*Patch, error) {
	ops, err := jsonpatch.DecodePatch(d)
	if err != nil {
		return nil, fmt.Errorf("error decoding patch: %w", err)
	}
	return &Patch{ops: ops}, nil
}

// Apply returns a patched copy of doc. doc is not modified.
func (p *Patch) Apply(doc any) (any, error) {
	d, err := json.Marshal(encode.Plain(doc))
	if err != nil {
		return nil, err
	}
	out, err := p.ops.Apply(d)
	if err != nil {
		return nil, fmt.Errorf("error applying patch: %w", err)
	}
	if debug.Patch() {
		debug.Logf("patched %s\n   -> %s\n", d, out)
	}
	res, err := encode.Decode(out)
	if err != nil {
		return nil, err
	}
	if _, err := ir.FromAny(res); err != nil {
		return nil, fmt.Errorf("patched document: %w", err)
	}
	return res, nil
}

// Apply decodes patchJSON and applies it to doc.
func Apply(doc any, patchJSON []byte) (any, error) {
	p, err := Decode(patchJSON)
	if err != nil {
		return nil, err
	}
	return p.Apply(doc)
}
