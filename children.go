package jsonml

// GetChildren returns a copy of the children of node, skipping the
// attribute slot when present. It returns nil for a node without children
// and for anything that is not a sequence.
func GetChildren(node any) []any {
	s, ok := sequence(node)
	if !ok || len(s) < 2 {
		return nil
	}
	start := 1
	if IsAttributes(s[1]) {
		start = 2
	}
	if start >= len(s) {
		return nil
	}
	res := make([]any, len(s)-start)
	copy(res, s[start:])
	return res
}
