package jsonml

import (
	"github.com/signadot/jsonml/debug"
	"github.com/signadot/jsonml/raw"
)

// OnAppend observes an element child about to be appended to parent. It is
// called before parent changes. A non-nil error aborts the append.
type OnAppend func(parent *[]any, child any) error

// AppendChild folds child into parent.
//
//   - fragments are unrolled and each of their children appended in turn
//   - element sequences are pushed by reference, after calling onAppend
//   - raw leaves are pushed by reference
//   - attribute mappings are merged into parent as by AddAttributes
//   - strings, numbers and booleans become text, coalesced with a trailing
//     text child of parent
//   - nil is ignored
//
// parent must be a *[]any. onAppend may be nil.
func AppendChild(parent, child any, onAppend OnAppend) error {
	p, ok := parent.(*[]any)
	if !ok || p == nil {
		return shapeErr("mutable sequence", parent)
	}
	work := []any{child}
	for len(work) > 0 {
		v := work[len(work)-1]
		work = work[:len(work)-1]
		if IsFragment(v) {
			s, _ := sequence(v)
			if debug.Append() {
				debug.Logf("unroll fragment of %d children into <%s>\n", len(s)-1, GetTagName(p))
			}
			for i := len(s) - 1; i >= 1; i-- {
				work = append(work, s[i])
			}
			continue
		}
		if err := appendOne(p, v, onAppend); err != nil {
			return err
		}
	}
	return nil
}

func appendOne(p *[]any, child any, onAppend OnAppend) error {
	switch {
	case IsNullish(child):
		return nil
	case IsSequence(child):
		if !IsElement(child) {
			return shapeErr("element", child)
		}
		if onAppend != nil {
			if err := onAppend(p, child); err != nil {
				return err
			}
		}
		if debug.Append() {
			debug.Logf("append <%s> to <%s>\n", GetTagName(child), GetTagName(p))
		}
		*p = append(*p, child)
	case raw.IsRaw(child):
		*p = append(*p, child)
	case !IsScalar(child):
		return AddAttributes(p, child)
	default:
		appendText(p, Text(child))
	}
	return nil
}

func appendText(p *[]any, text string) {
	s := *p
	if text != "" && len(s) > 1 {
		if last, ok := s[len(s)-1].(string); ok {
			if debug.Append() {
				debug.Logf("coalesce %q onto %q\n", text, last)
			}
			s[len(s)-1] = last + text
			return
		}
	}
	if text != "" || len(s) == 0 {
		*p = append(s, text)
	}
}
