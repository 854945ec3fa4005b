package jsonml

import (
	"fmt"
	"maps"
	"slices"

	"github.com/signadot/jsonml/debug"
)

// HasAttributes reports whether slot 1 of node holds an attribute mapping.
// It fails when node is not an element.
func HasAttributes(node any) (bool, error) {
	if !IsElement(node) {
		return false, shapeErr("element", node)
	}
	s, _ := sequence(node)
	return len(s) > 1 && IsAttributes(s[1]), nil
}

// GetAttributes returns the attribute mapping of node. The mapping is
// shared with node, so writes to it change node.
//
// When node has no mapping, GetAttributes returns a fresh detached mapping,
// or, if addIfMissing is set, inserts a fresh mapping into slot 1 of node
// and returns it. Insertion requires node to be a *[]any.
func GetAttributes(node any, addIfMissing bool) (map[string]any, error) {
	has, err := HasAttributes(node)
	if err != nil {
		return nil, err
	}
	if has {
		s, _ := sequence(node)
		return s[1].(map[string]any), nil
	}
	if !addIfMissing {
		return map[string]any{}, nil
	}
	p, ok := node.(*[]any)
	if !ok {
		return nil, fmt.Errorf("%w: cannot insert attributes into %T", ErrInvalidShape, node)
	}
	attrs := map[string]any{}
	insertAttributes(p, attrs)
	return attrs, nil
}

// AddAttributes attaches attrs to node. If node has no mapping, attrs
// itself becomes slot 1 and stays aliased with the caller. Otherwise attrs
// is merged key by key into the existing mapping and is not retained.
func AddAttributes(node, attrs any) error {
	if !IsElement(node) {
		return shapeErr("element", node)
	}
	if !IsAttributes(attrs) {
		return shapeErr("attributes", attrs)
	}
	a := attrs.(map[string]any)
	s, _ := sequence(node)
	if len(s) > 1 && IsAttributes(s[1]) {
		if debug.Attrs() {
			debug.Logf("merge attributes %s into <%s>\n", a, GetTagName(node))
		}
		maps.Copy(s[1].(map[string]any), a)
		return nil
	}
	p, ok := node.(*[]any)
	if !ok {
		return fmt.Errorf("%w: cannot insert attributes into %T", ErrInvalidShape, node)
	}
	insertAttributes(p, a)
	return nil
}

// GetAttribute returns the value of key, or nil when node has no mapping or
// the key is absent.
func GetAttribute(node any, key string) (any, error) {
	has, err := HasAttributes(node)
	if err != nil {
		return nil, err
	}
	if !has {
		return nil, nil
	}
	s, _ := sequence(node)
	return s[1].(map[string]any)[key], nil
}

func SetAttribute(node any, key string, value any) error {
	attrs, err := GetAttributes(node, true)
	if err != nil {
		return err
	}
	attrs[key] = value
	return nil
}

// insertAttributes shifts the children of p right by one and places attrs
// in slot 1. Slot 0 of p is a string, checked by the callers.
func insertAttributes(p *[]any, attrs map[string]any) {
	if debug.Attrs() {
		debug.Logf("insert attributes into <%s>\n", GetTagName(p))
	}
	*p = slices.Insert(*p, 1, any(attrs))
}
