package jsonml

import "reflect"

// sequence returns the slots of v when v is a []any or a non-nil *[]any.
func sequence(v any) ([]any, bool) {
	switch x := v.(type) {
	case []any:
		return x, true
	case *[]any:
		if x == nil {
			return nil, false
		}
		return *x, true
	default:
		return nil, false
	}
}

func IsSequence(v any) bool {
	_, ok := sequence(v)
	return ok
}

// IsFragment reports whether node is a sequence with the empty tag.
func IsFragment(node any) bool {
	s, ok := sequence(node)
	if !ok || len(s) == 0 {
		return false
	}
	tag, ok := s[0].(string)
	return ok && tag == ""
}

// GetTagName returns the tag of a sequence node, or "" when node is not a
// sequence or has no string in slot 0.
func GetTagName(node any) string {
	s, _ := sequence(node)
	if len(s) == 0 {
		return ""
	}
	tag, _ := s[0].(string)
	return tag
}

// IsElement reports whether node is a sequence whose slot 0 is a string, or
// is itself a string.
func IsElement(node any) bool {
	if _, ok := node.(string); ok {
		return true
	}
	s, ok := sequence(node)
	if !ok || len(s) == 0 {
		return false
	}
	_, ok = s[0].(string)
	return ok
}

func IsAttributes(v any) bool {
	m, ok := v.(map[string]any)
	return ok && m != nil
}

// IsNullish reports whether v is nil or a nil pointer, map or interface.
// Nullish values are ignored when appended.
func IsNullish(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

// IsScalar reports whether v has a bool, string, integer or float kind and
// so becomes text when appended.
func IsScalar(v any) bool {
	switch reflect.ValueOf(v).Kind() {
	case reflect.Bool, reflect.String,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}
