package ir

// Truth reports whether node carries content: non-empty text, a raw leaf
// with markup, or an element with attributes or children.
func Truth(node *Node) bool {
	switch node.Type {
	case TextType:
		return node.Text != ""
	case RawType:
		return node.Raw.String() != ""
	case ElementType:
		return len(node.Attrs) != 0 || len(node.Children) != 0
	default:
		panic("type")
	}
}
