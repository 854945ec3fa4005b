// Package jsonml builds and inspects markup trees encoded as JsonML.
//
// # Encoding
//
// A JsonML node is one of:
//
//   - a text leaf: a string
//   - an element: a sequence whose first slot is the tag name, optionally
//     followed by an attribute mapping, followed by child nodes
//   - a raw-markup leaf: a [raw.Raw] value holding pre-escaped markup
//
// Nodes are plain Go values of the kind produced by encoding/json:
//
//	[]any            sequence (read-only)
//	*[]any           sequence (mutable)
//	map[string]any   attribute mapping
//	string           text
//
// For example
//
//	["div", {"class": "note"}, ["em", "hello"], " world"]
//
// is a div element with one attribute, an em child and a text child.
//
// A fragment is an element whose tag is the empty string. It carries
// several sibling nodes without a wrapping element and is always flattened
// when appended to a parent.
//
// # Mutation
//
// A Go slice cannot grow through a copy of its header, so every operation
// that changes the number of slots of a node (AppendChild, SetAttribute,
// GetAttributes with addIfMissing, AddAttributes on a node without a
// mapping) requires a *[]any. Elements appended as children are stored by
// reference: appending a *[]any child keeps it live, and later appends to
// that child are visible through the parent.
//
//	root := &[]any{"ul"}
//	for _, item := range items {
//		li := &[]any{"li"}
//		if err := jsonml.AppendChild(li, item, nil); err != nil {
//			return err
//		}
//		if err := jsonml.AppendChild(root, li, nil); err != nil {
//			return err
//		}
//	}
//
// AppendChild folds any value into a parent: fragments are unrolled, element
// sequences and raw leaves are pushed, mappings merge into the parent's
// attributes, scalars are coerced to text and coalesced with a trailing text
// child, and nil is ignored.
//
// # Errors
//
// Operations that require a particular shape fail with an error wrapping
// [ErrInvalidShape]. IsFragment, GetTagName, IsElement, IsAttributes and
// GetChildren never fail.
//
// # Thread Safety
//
// Nodes are not safe for concurrent mutation. Synchronize access or give
// each goroutine its own tree.
//
// # Related Packages
//
//   - github.com/signadot/jsonml/ir - tagged variant view of a tree
//   - github.com/signadot/jsonml/encode - JSON and YAML codecs
//   - github.com/signadot/jsonml/jpath - addressing elements by path
package jsonml
