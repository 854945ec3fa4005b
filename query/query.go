// Package query selects elements of a JsonML tree with boolean expressions
// written in the expr language (https://expr-lang.org).
//
// Expressions see one element at a time through Env:
//
//	Tag == "a" && "href" in Attrs
//	Depth > 1 && Text contains "TODO"
//	Tag matches "^h[1-6]$"
package query

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/signadot/jsonml/debug"
	"github.com/signadot/jsonml/ir"
)

// Env is the environment an expression is evaluated in.
type Env struct {
	Tag   string         `expr:"Tag"`
	Attrs map[string]any `expr:"Attrs"`
	// Text is the concatenated text beneath the element.
	Text     string `expr:"Text"`
	Depth    int    `expr:"Depth"`
	Children int    `expr:"Children"`
	Path     string `expr:"Path"`
	Empty    bool   `expr:"Empty"`
}

type Query struct {
	src string
	prg *vm.Program
}

func Compile(src string) (*Query, error) {
	prg, err := expr.Compile(src, expr.Env(Env{}), expr.AsBool())
	if err != nil {
		return nil, err
	}
	return &Query{src: src, prg: prg}, nil
}

func (q *Query) String() string {
	return q.src
}

// Match evaluates q against element n. Leaves never match.
func (q *Query) Match(n *ir.Node) (bool, error) {
	if n.Type != ir.ElementType {
		return false, nil
	}
	attrs := n.Attrs
	if attrs == nil {
		attrs = map[string]any{}
	}
	env := Env{
		Tag:      n.Tag,
		Attrs:    attrs,
		Text:     n.InnerText(),
		Depth:    n.Depth(),
		Children: len(n.Children),
		Path:     n.Path(),
		Empty:    !ir.Truth(n),
	}
	res, err := expr.Run(q.prg, env)
	if err != nil {
		return false, fmt.Errorf("error evaluating %q on %s: %w", q.src, env.Path, err)
	}
	ok, _ := res.(bool)
	if debug.Query() {
		debug.Logf("query %q on <%s> at %q: %t\n", q.src, n.Tag, env.Path, ok)
	}
	return ok, nil
}

// Select returns the elements beneath and including root for which q
// holds, in document order.
func Select(root *ir.Node, q *Query) ([]*ir.Node, error) {
	var res []*ir.Node
	err := root.Visit(func(y *ir.Node, isPost bool) (bool, error) {
		if isPost || y.Type != ir.ElementType {
			return false, nil
		}
		ok, err := q.Match(y)
		if err != nil {
			return false, err
		}
		if ok {
			res = append(res, y)
		}
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}
