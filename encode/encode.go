package encode

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/signadot/jsonml/format"
	"github.com/signadot/jsonml/ir"
	"github.com/signadot/jsonml/raw"
)

type EncState struct {
	depth, indent int

	format format.Format
	wire   bool

	Color func(ir.Type, ColorAttr, string) string
}

// Encode writes node followed by a newline. JSON output is laid out as
// JsonML: one element per line unless all of its children are leaves, in
// which case it stays on one line. Wire JSON is compact. node must be a
// valid JsonML node for the laid out form, which drops nullish children the
// way jsonml.AppendChild ignores them; wire JSON and YAML write any generic
// data as is.
func Encode(node any, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{
		indent: 2,
	}
	for _, opt := range opts {
		opt(es)
	}
	switch es.format {
	case format.YAMLFormat:
		d, err := yaml.Marshal(plain(node, true))
		if err != nil {
			return fmt.Errorf("error encoding yaml: %w", err)
		}
		_, err = w.Write(d)
		return err
	case format.JSONFormat:
	default:
		return fmt.Errorf("%w: %d", format.ErrBadFormat, es.format)
	}
	if es.wire {
		enc := json.NewEncoder(w)
		enc.SetEscapeHTML(false)
		return enc.Encode(Plain(node))
	}
	n, err := ir.FromAny(node)
	if err != nil {
		return err
	}
	if err := encode(n, w, es); err != nil {
		return err
	}
	return writeString(w, "\n")
}

// MustString encodes node with opts and panics on error.
func MustString(node any, opts ...EncodeOption) string {
	buf := bytes.NewBuffer(nil)
	if err := Encode(node, buf, opts...); err != nil {
		panic(err)
	}
	return buf.String()
}

func encode(n *ir.Node, w io.Writer, es *EncState) error {
	switch n.Type {
	case ir.TextType:
		return writeValue(w, es, ir.TextType, ValueColor, n.Text)
	case ir.RawType:
		return writeValue(w, es, ir.RawType, ValueColor, n.Raw.String())
	case ir.ElementType:
	default:
		return fmt.Errorf("%w: type %s", ir.ErrUnsupported, n.Type)
	}
	if err := writeSep(w, es, "["); err != nil {
		return err
	}
	if err := writeValue(w, es, ir.ElementType, TagColor, n.Tag); err != nil {
		return err
	}
	if n.Attrs != nil {
		if err := writeSep(w, es, ", "); err != nil {
			return err
		}
		if err := encodeAttrs(n.Attrs, w, es); err != nil {
			return err
		}
	}
	if len(n.Children) == 0 {
		return writeSep(w, es, "]")
	}
	if allLeaves(n) {
		for _, c := range n.Children {
			if err := writeSep(w, es, ", "); err != nil {
				return err
			}
			if err := encode(c, w, es); err != nil {
				return err
			}
		}
		return writeSep(w, es, "]")
	}
	es.depth++
	for _, c := range n.Children {
		if err := writeSep(w, es, ","); err != nil {
			return err
		}
		if err := writeNL(w, es); err != nil {
			return err
		}
		if err := encode(c, w, es); err != nil {
			return err
		}
	}
	es.depth--
	if err := writeNL(w, es); err != nil {
		return err
	}
	return writeSep(w, es, "]")
}

func encodeAttrs(attrs map[string]any, w io.Writer, es *EncState) error {
	if err := writeSep(w, es, "{"); err != nil {
		return err
	}
	for i, k := range slices.Sorted(maps.Keys(attrs)) {
		if i > 0 {
			if err := writeSep(w, es, ", "); err != nil {
				return err
			}
		}
		if err := writeValue(w, es, ir.ElementType, FieldColor, k); err != nil {
			return err
		}
		if err := writeSep(w, es, ": "); err != nil {
			return err
		}
		if err := writeValue(w, es, ir.ElementType, ValueColor, attrs[k]); err != nil {
			return err
		}
	}
	return writeSep(w, es, "}")
}

func allLeaves(n *ir.Node) bool {
	for _, c := range n.Children {
		if !c.Type.IsLeaf() {
			return false
		}
	}
	return true
}

func writeValue(w io.Writer, es *EncState, t ir.Type, a ColorAttr, v any) error {
	s, err := quote(v)
	if err != nil {
		return err
	}
	if es.Color != nil {
		s = es.Color(t, a, s)
	}
	return writeString(w, s)
}

func writeSep(w io.Writer, es *EncState, s string) error {
	if es.Color != nil {
		s = es.Color(ir.ElementType, SepColor, s)
	}
	return writeString(w, s)
}

func writeNL(w io.Writer, es *EncState) error {
	return writeString(w, "\n"+strings.Repeat(" ", es.depth*es.indent))
}

func writeString(w io.Writer, s string) error {
	_, err := io.WriteString(w, s)
	return err
}

// quote encodes v as JSON without escaping markup characters.
func quote(v any) (string, error) {
	buf := bytes.NewBuffer(nil)
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(Plain(v)); err != nil {
		return "", err
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}

// Plain returns a copy of v using only types every encoder understands:
// []any for sequences and string for raw leaves.
func Plain(v any) any {
	return plain(v, false)
}

// plain is Plain, also turning json.Number into int64 or float64 when
// numbers is set, for encoders which would otherwise write them as strings.
func plain(v any, numbers bool) any {
	switch x := v.(type) {
	case *[]any:
		if x == nil {
			return nil
		}
		return plain(*x, numbers)
	case []any:
		res := make([]any, len(x))
		for i := range x {
			res[i] = plain(x[i], numbers)
		}
		return res
	case map[string]any:
		res := make(map[string]any, len(x))
		for k, e := range x {
			res[k] = plain(e, numbers)
		}
		return res
	case raw.Raw:
		return x.String()
	case *raw.Raw:
		if x == nil {
			return nil
		}
		return x.String()
	case json.Number:
		if !numbers {
			return v
		}
		if i, err := x.Int64(); err == nil {
			return i
		}
		if f, err := x.Float64(); err == nil {
			return f
		}
		return x.String()
	default:
		return v
	}
}
