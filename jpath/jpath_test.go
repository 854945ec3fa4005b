package jpath

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/signadot/jsonml"
	"github.com/signadot/jsonml/ir"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in, want string
		steps    int
	}{
		{"", "", 0},
		{"/", "", 0},
		{"body", "body", 1},
		{"/body/div[1]/p", "body/div[1]/p", 3},
		{"*[2] / em", "*[2]/em", 2},
		{"svg:rect[0]", "svg:rect", 1},
		{"my-el/h1", "my-el/h1", 2},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			p, err := Parse(tt.in)
			if err != nil {
				t.Fatal(err)
			}
			if len(p.Steps) != tt.steps {
				t.Errorf("got %d steps, want %d", len(p.Steps), tt.steps)
			}
			if p.String() != tt.want {
				t.Errorf("String() = %q, want %q", p.String(), tt.want)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	for _, in := range []string{"p[", "p[x]", "p//q", "[1]", "p]"} {
		if _, err := Parse(in); !errors.Is(err, ErrSyntax) {
			t.Errorf("Parse(%q) err = %v, want ErrSyntax", in, err)
		}
	}
}

func doc() *[]any {
	return &[]any{"html",
		&[]any{"head", &[]any{"title", "t"}},
		&[]any{"body", map[string]any{"class": "main"},
			"intro",
			&[]any{"p", "one"},
			&[]any{"div", &[]any{"p", "nested"}},
			&[]any{"p", "two"},
		},
	}
}

func TestResolve(t *testing.T) {
	root := doc()
	tests := []struct {
		path string
		want any
	}{
		{"", root},
		{"head/title", &[]any{"title", "t"}},
		{"body/p", &[]any{"p", "one"}},
		{"body/p[1]", &[]any{"p", "two"}},
		{"body/*[1]/p", &[]any{"p", "nested"}},
		{"*[1]/div/p", &[]any{"p", "nested"}},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := Lookup(root, tt.path)
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
}

func TestResolveMutable(t *testing.T) {
	root := doc()
	p, err := Lookup(root, "body/div/p")
	if err != nil {
		t.Fatal(err)
	}
	if err := jsonml.AppendChild(p, " text", nil); err != nil {
		t.Fatal(err)
	}
	again, _ := Lookup(root, "body/div/p")
	if diff := cmp.Diff(&[]any{"p", "nested text"}, again); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestResolveNoMatch(t *testing.T) {
	root := doc()
	tests := []struct {
		path string
		hint string
	}{
		{"body/pp", `did you mean "p"?`},
		{"bdy", `did you mean "body"?`},
		{"body/p[5]", "only 2 matching elements"},
		{"body/table", "body/table"},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			_, err := Lookup(root, tt.path)
			if !errors.Is(err, ErrNoMatch) {
				t.Fatalf("err = %v, want ErrNoMatch", err)
			}
			if !strings.Contains(err.Error(), tt.hint) {
				t.Errorf("error %q does not contain %q", err, tt.hint)
			}
		})
	}
	if _, err := Lookup("text", "p"); !errors.Is(err, jsonml.ErrInvalidShape) {
		t.Errorf("err = %v, want ErrInvalidShape", err)
	}
}

func TestSuggest(t *testing.T) {
	tags := []string{"section", "span", "p"}
	if got := suggest("secton", tags); got != "section" {
		t.Errorf("got %q", got)
	}
	if got := suggest("table", tags); got != "" {
		t.Errorf("got %q, want no suggestion", got)
	}
}

func TestResolveNodePaths(t *testing.T) {
	root := &[]any{"body",
		&[]any{"a b", "first"},
		&[]any{"p", "second"},
		&[]any{"1x", "third"},
		&[]any{"p", &[]any{"svg:g", "fourth"}, &[]any{"x y", "fifth"}},
	}
	n, err := ir.FromAny(root)
	if err != nil {
		t.Fatal(err)
	}
	var paths []string
	err = n.Visit(func(y *ir.Node, isPost bool) (bool, error) {
		if isPost || y.Type != ir.ElementType {
			return true, nil
		}
		paths = append(paths, y.Path())
		got, err := Lookup(root, y.Path())
		if err != nil {
			return false, err
		}
		if jsonml.GetTagName(got) != y.Tag {
			t.Errorf("%q resolved to <%s>, want <%s>", y.Path(), jsonml.GetTagName(got), y.Tag)
		}
		return true, nil
	})
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"", "*", "p", "*[2]", "p[1]", "p[1]/svg:g", "p[1]/*[1]"}
	if diff := cmp.Diff(want, paths); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}
