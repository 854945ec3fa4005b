// Package ir provides a tagged variant view of JsonML trees.
//
// # Overview
//
// Package jsonml works directly on generic data, re-deriving the kind of a
// value from its shape on every call. Code that walks a finished tree
// (printers, queries) is simpler against a closed set of node kinds, which
// this package provides. FromAny is the single translation boundary from
// generic data; ToAny goes back.
//
// # Node Types
//
//   - TextType: a text leaf, held in Text
//   - ElementType: Tag, optional Attrs and Children; an empty Tag is a fragment
//   - RawType: a pre-escaped markup leaf, held in Raw
//
// Each node records its Parent and its ParentIndex in Parent.Children.
//
// # Creating Nodes
//
//	n := ir.FromElement("p", map[string]any{"class": "x"},
//		ir.FromText("hello "),
//		ir.FromElement("em", nil, ir.FromText("world")),
//	)
//
// # Conversion
//
//	n, err := ir.FromAny([]any{"p", "hello"})
//	v, err := n.ToAny() // &[]any{"p", "hello"}
//
// FromAny coerces scalar children to text, drops nil children and rejects
// attribute mappings outside slot 1. ToAny rebuilds the tree through
// jsonml.AppendChild so the result satisfies the encoding's invariants.
//
// # Thread Safety
//
// Node structures are not thread-safe.
package ir
