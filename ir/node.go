package ir

import (
	"fmt"
	"maps"

	"github.com/signadot/jsonml"
	"github.com/signadot/jsonml/raw"
)

type Node struct {
	Type        Type
	Parent      *Node
	ParentIndex int

	Tag      string
	Attrs    map[string]any
	Children []*Node

	Text string
	Raw  raw.Raw
}

func FromText(v string) *Node {
	return &Node{Type: TextType, Text: v}
}

func FromRaw(r raw.Raw) *Node {
	return &Node{Type: RawType, Raw: r}
}

// FromElement builds an element node and adopts children.
func FromElement(tag string, attrs map[string]any, children ...*Node) *Node {
	res := &Node{
		Type:     ElementType,
		Tag:      tag,
		Attrs:    attrs,
		Children: make([]*Node, len(children)),
	}
	for i, c := range children {
		c.Parent = res
		c.ParentIndex = i
		res.Children[i] = c
	}
	return res
}

func (y *Node) IsFragment() bool {
	return y.Type == ElementType && y.Tag == ""
}

// FromAny classifies generic JsonML data into a Node tree. Scalars in child
// position become text and nullish children are dropped, as with
// jsonml.AppendChild. Any other value fails with ErrInvalidShape. Attribute mappings are
// shared with v.
func FromAny(v any) (*Node, error) {
	return fromAny(v, nil, 0)
}

func fromAny(v any, parent *Node, index int) (*Node, error) {
	var res *Node
	switch {
	case raw.IsRaw(v):
		switch r := v.(type) {
		case raw.Raw:
			res = FromRaw(r)
		case *raw.Raw:
			res = FromRaw(*r)
		}
	case jsonml.IsSequence(v):
		if !jsonml.IsElement(v) {
			return nil, fmt.Errorf("%w: element expected, got %v", ErrInvalidShape, v)
		}
		res = &Node{Type: ElementType, Tag: jsonml.GetTagName(v)}
		has, err := jsonml.HasAttributes(v)
		if err != nil {
			return nil, err
		}
		if has {
			res.Attrs, _ = jsonml.GetAttributes(v, false)
		}
		for _, c := range jsonml.GetChildren(v) {
			if jsonml.IsNullish(c) {
				continue
			}
			if jsonml.IsAttributes(c) {
				return nil, fmt.Errorf("%w: attributes of <%s> outside slot 1", ErrInvalidShape, res.Tag)
			}
			child, err := fromAny(c, res, len(res.Children))
			if err != nil {
				return nil, err
			}
			res.Children = append(res.Children, child)
		}
	case jsonml.IsNullish(v):
		return nil, fmt.Errorf("%w: node expected, got null", ErrInvalidShape)
	case jsonml.IsAttributes(v):
		return nil, fmt.Errorf("%w: node expected, got attributes", ErrInvalidShape)
	case jsonml.IsScalar(v):
		res = FromText(jsonml.Text(v))
	default:
		return nil, fmt.Errorf("%w: node expected, got %T", ErrInvalidShape, v)
	}
	res.Parent = parent
	res.ParentIndex = index
	return res, nil
}

// ToAny converts y back to generic JsonML data with *[]any sequences. The
// result is assembled with jsonml.AppendChild, so fragments below the root
// are flattened and adjacent text is coalesced. Attribute mappings are
// copied.
func (y *Node) ToAny() (any, error) {
	switch y.Type {
	case TextType:
		return y.Text, nil
	case RawType:
		return y.Raw, nil
	case ElementType:
		res := &[]any{y.Tag}
		if y.Attrs != nil {
			if err := jsonml.AddAttributes(res, maps.Clone(y.Attrs)); err != nil {
				return nil, err
			}
		}
		for _, c := range y.Children {
			v, err := c.ToAny()
			if err != nil {
				return nil, err
			}
			if err := jsonml.AppendChild(res, v, nil); err != nil {
				return nil, err
			}
		}
		return res, nil
	default:
		return nil, fmt.Errorf("%w: type %s", ErrUnsupported, y.Type)
	}
}

func (y *Node) Clone() *Node {
	res := &Node{}
	return y.CloneTo(res)
}

func (y *Node) CloneTo(dst *Node) *Node {
	dst.Type = y.Type
	dst.Parent = y.Parent
	dst.ParentIndex = y.ParentIndex
	dst.Tag = y.Tag
	dst.Attrs = maps.Clone(y.Attrs)
	dst.Text = y.Text
	dst.Raw = y.Raw
	dst.Children = make([]*Node, len(y.Children))
	for i, yc := range y.Children {
		dstI := &Node{}
		yc.CloneTo(dstI)
		dstI.Parent = dst
		dstI.ParentIndex = i
		dst.Children[i] = dstI
	}
	return dst
}

func (y *Node) Visit(f func(y *Node, isPost bool) (bool, error)) error {
	dive, err := f(y, false)
	if err != nil {
		return err
	}
	if dive {
		for _, yy := range y.Children {
			if err := yy.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(y, true); err != nil {
		return err
	}
	return nil
}

func (y *Node) Depth() int {
	d := 0
	for p := y.Parent; p != nil; p = p.Parent {
		d++
	}
	return d
}

func (y *Node) Root() *Node {
	res := y
	for res.Parent != nil {
		res = res.Parent
	}
	return res
}

// InnerText concatenates the text leaves beneath y in document order.
// Raw leaves are skipped.
func (y *Node) InnerText() string {
	switch y.Type {
	case TextType:
		return y.Text
	case ElementType:
		var res []byte
		for _, c := range y.Children {
			res = append(res, c.InnerText()...)
		}
		return string(res)
	default:
		return ""
	}
}

// Elements returns the element children of y.
func (y *Node) Elements() []*Node {
	var res []*Node
	for _, c := range y.Children {
		if c.Type == ElementType {
			res = append(res, c)
		}
	}
	return res
}
