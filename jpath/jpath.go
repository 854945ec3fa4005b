// Package jpath addresses elements inside a JsonML tree.
//
// A path is a sequence of steps separated by '/'. Each step names a tag,
// or '*' for any tag, and optionally a zero based index among the element
// children matching it:
//
//	body/div[1]/p
//	*[2]/em
//
// The empty path addresses the root. Text and raw children are never
// matched.
package jpath

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/signadot/jsonml/ir"
)

var (
	ErrSyntax  = errors.New("path syntax error")
	ErrNoMatch = errors.New("no matching element")
)

type Path struct {
	Steps []*Step `parser:"( @@ ( '/' @@ )* )?"`
}

type Step struct {
	Any   bool   `parser:"( @'*'"`
	Tag   string `parser:"| @Ident )"`
	Index *int   `parser:"( '[' @Int ']' )?"`
}

func (s *Step) String() string {
	tag := s.Tag
	if s.Any {
		tag = ""
	}
	return ir.PathStep(tag, s.index())
}

func (s *Step) index() int {
	if s.Index == nil {
		return 0
	}
	return *s.Index
}

func (s *Step) matches(tag string) bool {
	return s.Any || s.Tag == tag
}

func (p *Path) String() string {
	steps := make([]string, len(p.Steps))
	for i, s := range p.Steps {
		steps[i] = s.String()
	}
	return strings.Join(steps, "/")
}

var (
	pathLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Ident", Pattern: ir.PathTagPattern},
		{Name: "Int", Pattern: `[0-9]+`},
		{Name: "Punct", Pattern: `[/\[\]*]`},
		{Name: "Whitespace", Pattern: `\s+`},
	})
	pathParser = participle.MustBuild[Path](
		participle.Lexer(pathLexer),
		participle.Elide("Whitespace"),
		participle.UseLookahead(1),
	)
)

// Parse parses a path expression. Leading and trailing slashes are
// ignored.
func Parse(s string) (*Path, error) {
	s = strings.Trim(strings.TrimSpace(s), "/")
	if s == "" {
		return &Path{}, nil
	}
	p, err := pathParser.ParseString("", s)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSyntax, err)
	}
	return p, nil
}
