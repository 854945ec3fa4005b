package jsonml

// Builder assembles one element in place. The zero value is not usable;
// use NewBuilder or Wrap.
type Builder struct {
	node *[]any

	// OnAppend, when set, observes every element child appended through
	// the builder.
	OnAppend OnAppend
}

// NewBuilder starts a new element with the given tag. An empty tag starts
// a fragment.
func NewBuilder(tag string) *Builder {
	node := []any{tag}
	return &Builder{node: &node}
}

// Wrap returns a builder which appends to an existing node.
func Wrap(node *[]any) *Builder {
	return &Builder{node: node}
}

// Append folds each value into the element in order, stopping at the first
// error.
func (b *Builder) Append(vs ...any) error {
	for _, v := range vs {
		if err := AppendChild(b.node, v, b.OnAppend); err != nil {
			return err
		}
	}
	return nil
}

func (b *Builder) SetAttribute(key string, value any) error {
	return SetAttribute(b.node, key, value)
}

func (b *Builder) AddAttributes(attrs map[string]any) error {
	return AddAttributes(b.node, attrs)
}

func (b *Builder) Attribute(key string) any {
	v, _ := GetAttribute(b.node, key)
	return v
}

func (b *Builder) Tag() string {
	return GetTagName(b.node)
}

func (b *Builder) Children() []any {
	return GetChildren(b.node)
}

// Node returns the element being built. It is shared with the builder.
func (b *Builder) Node() *[]any {
	return b.node
}

// Elem builds an element from a tag and values folded in as by AppendChild.
func Elem(tag string, vs ...any) (*[]any, error) {
	b := NewBuilder(tag)
	if err := b.Append(vs...); err != nil {
		return nil, err
	}
	return b.Node(), nil
}
