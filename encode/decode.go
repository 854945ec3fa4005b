package encode

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/goccy/go-yaml"

	"github.com/signadot/jsonml/format"
)

var ErrTrailingData = errors.New("trailing data after document")

// Decode reads one JSON (default) or YAML document into generic data in
// which every sequence is a *[]any and every mapping a map[string]any, so
// the result can be mutated with package jsonml. JSON numbers decode as
// json.Number.
func Decode(d []byte, opts ...DecodeOption) (any, error) {
	ds := &decState{}
	for _, opt := range opts {
		opt(ds)
	}
	var v any
	switch ds.format {
	case format.JSONFormat:
		dec := json.NewDecoder(bytes.NewReader(d))
		dec.UseNumber()
		if err := dec.Decode(&v); err != nil {
			return nil, fmt.Errorf("error decoding json: %w", err)
		}
		if _, err := dec.Token(); err != io.EOF {
			return nil, ErrTrailingData
		}
	case format.YAMLFormat:
		if err := yaml.Unmarshal(d, &v); err != nil {
			return nil, fmt.Errorf("error decoding yaml: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %d", format.ErrBadFormat, ds.format)
	}
	return Normalize(v), nil
}

// Normalize rewrites generic data in place so that sequences are *[]any
// and mappings with non-string keys become map[string]any.
func Normalize(v any) any {
	switch x := v.(type) {
	case []any:
		for i := range x {
			x[i] = Normalize(x[i])
		}
		return &x
	case *[]any:
		if x == nil {
			return nil
		}
		s := *x
		for i := range s {
			s[i] = Normalize(s[i])
		}
		return x
	case map[string]any:
		for k, e := range x {
			x[k] = Normalize(e)
		}
		return x
	case map[any]any:
		res := make(map[string]any, len(x))
		for k, e := range x {
			res[fmt.Sprint(k)] = Normalize(e)
		}
		return res
	default:
		return v
	}
}
