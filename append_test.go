package jsonml

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/signadot/jsonml/raw"
)

var rawComparer = cmp.Comparer(func(a, b raw.Raw) bool { return a.String() == b.String() })

func TestAppendChildParent(t *testing.T) {
	for _, parent := range []any{"hello", []any{"p"}, nil, (*[]any)(nil), map[string]any{}} {
		if err := AppendChild(parent, "world", nil); !errors.Is(err, ErrInvalidShape) {
			t.Errorf("AppendChild(%#v, ...) err = %v, want ErrInvalidShape", parent, err)
		}
	}
	if err := AppendChild(&[]any{"p"}, "world", nil); err != nil {
		t.Error(err)
	}
}

func TestAppendChild(t *testing.T) {
	subtree := []any{"section", []any{"p", "hello"}, []any{"p", "world"}}
	child := &[]any{"p"}
	r := raw.New("<b>pre</b>")
	tests := []struct {
		name   string
		parent *[]any
		add    []any
		want   *[]any
	}{
		{
			"fragment",
			&[]any{"div"},
			[]any{[]any{"", []any{"em", "hello"}, []any{"strong", "world"}}},
			&[]any{"div", []any{"em", "hello"}, []any{"strong", "world"}},
		},
		{
			"nested fragment",
			&[]any{"div"},
			[]any{[]any{"", "a", []any{"", []any{"em", "b"}, "c"}, "d"}},
			&[]any{"div", "a", []any{"em", "b"}, "cd"},
		},
		{
			"fragment with attributes",
			&[]any{"div"},
			[]any{&[]any{"", map[string]any{"id": "x"}, "text"}},
			&[]any{"div", map[string]any{"id": "x"}, "text"},
		},
		{
			"element",
			&[]any{"div"},
			[]any{child},
			&[]any{"div", child},
		},
		{
			"element with descendants",
			&[]any{"div", map[string]any{"a": 1}},
			[]any{subtree},
			&[]any{"div", map[string]any{"a": 1}, subtree},
		},
		{
			"raw",
			&[]any{"div"},
			[]any{r},
			&[]any{"div", r},
		},
		{
			"attributes",
			&[]any{"div"},
			[]any{map[string]any{"a": 1}},
			&[]any{"div", map[string]any{"a": 1}},
		},
		{
			"attributes merge",
			&[]any{"div", map[string]any{"a": 1}, "x"},
			[]any{map[string]any{"b": 2}},
			&[]any{"div", map[string]any{"a": 1, "b": 2}, "x"},
		},
		{
			"coalesce text",
			&[]any{"p", map[string]any{"a": 1}, "foo"},
			[]any{"bar"},
			&[]any{"p", map[string]any{"a": 1}, "foobar"},
		},
		{
			"coerce to string",
			&[]any{"p", map[string]any{"a": 1}, "foo"},
			[]any{5, true},
			&[]any{"p", map[string]any{"a": 1}, "foo5true"},
		},
		{
			"coerce numbers",
			&[]any{"p"},
			[]any{1.5, " ", json.Number("42"), " ", uint8(7), " ", 1e21, " ", -0.0000001},
			&[]any{"p", "1.5 42 7 1e+21 -1e-7"},
		},
		{
			"text node",
			&[]any{"p"},
			[]any{"hello"},
			&[]any{"p", "hello"},
		},
		{
			"text after element",
			&[]any{"p", []any{"br"}},
			[]any{"a", "b"},
			&[]any{"p", []any{"br"}, "ab"},
		},
		{
			"text after attributes",
			&[]any{"p", map[string]any{}},
			[]any{"a"},
			&[]any{"p", map[string]any{}, "a"},
		},
		{
			"empty string",
			&[]any{"p"},
			[]any{""},
			&[]any{"p"},
		},
		{
			"nil",
			&[]any{"p", "x"},
			[]any{nil, (*[]any)(nil)},
			&[]any{"p", "x"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, v := range tt.add {
				if err := AppendChild(tt.parent, v, nil); err != nil {
					t.Fatal(err)
				}
			}
			if diff := cmp.Diff(tt.want, tt.parent, rawComparer); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
}

func TestAppendChildByReference(t *testing.T) {
	parent := &[]any{"ul"}
	li := &[]any{"li"}
	if err := AppendChild(parent, li, nil); err != nil {
		t.Fatal(err)
	}
	if err := AppendChild(li, "later", nil); err != nil {
		t.Fatal(err)
	}
	want := &[]any{"ul", &[]any{"li", "later"}}
	if diff := cmp.Diff(want, parent); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestAppendChildFragmentUnmutated(t *testing.T) {
	fragment := []any{"", []any{"em", "hello"}, []any{"strong", "world"}}
	if err := AppendChild(&[]any{"div"}, fragment, nil); err != nil {
		t.Fatal(err)
	}
	want := []any{"", []any{"em", "hello"}, []any{"strong", "world"}}
	if diff := cmp.Diff(want, fragment); diff != "" {
		t.Errorf("fragment changed (-want +got):\n%s", diff)
	}
}

func TestAppendChildDeepFragment(t *testing.T) {
	var frag any = []any{"em", "x"}
	for range 100000 {
		frag = []any{"", frag}
	}
	parent := &[]any{"div"}
	if err := AppendChild(parent, frag, nil); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(&[]any{"div", []any{"em", "x"}}, parent); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestAppendChildInvalidElement(t *testing.T) {
	for _, child := range []any{[]any{}, []any{5}, []any{nil}, []any{true}, &[]any{}} {
		if err := AppendChild(&[]any{"div"}, child, nil); !errors.Is(err, ErrInvalidShape) {
			t.Errorf("AppendChild(..., %#v) err = %v, want ErrInvalidShape", child, err)
		}
	}
	type point struct{ X, Y int }
	if err := AppendChild(&[]any{"div"}, point{1, 2}, nil); !errors.Is(err, ErrInvalidShape) {
		t.Errorf("struct child: err = %v, want ErrInvalidShape", err)
	}
}

// What is the use case for this behavior? Kept for compatibility.
func TestAppendChildEmptyParent(t *testing.T) {
	node := &[]any{}
	steps := []struct {
		add  string
		want *[]any
	}{
		{"", &[]any{""}},
		{"x", &[]any{"", "x"}},
		{"z", &[]any{"", "xz"}},
	}
	for _, s := range steps {
		if err := AppendChild(node, s.add, nil); err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff(s.want, node); diff != "" {
			t.Errorf("after %q (-want +got):\n%s", s.add, diff)
		}
	}
}

func TestOnAppend(t *testing.T) {
	t.Run("before append", func(t *testing.T) {
		node := &[]any{"div"}
		el := &[]any{"p"}
		calls := 0
		err := AppendChild(node, el, func(parent *[]any, child any) error {
			calls++
			if parent != node {
				t.Error("hook got a different parent")
			}
			if child != any(el) {
				t.Error("hook got a different child")
			}
			if diff := cmp.Diff(&[]any{"div"}, parent); diff != "" {
				t.Errorf("parent already changed (-want +got):\n%s", diff)
			}
			return nil
		})
		if err != nil {
			t.Fatal(err)
		}
		if calls != 1 {
			t.Errorf("hook called %d times", calls)
		}
	})
	t.Run("once per element", func(t *testing.T) {
		node := &[]any{"div"}
		var seen []string
		frag := []any{"", []any{"em"}, "text", raw.New("r"), map[string]any{"a": 1}, []any{"", []any{"b"}}}
		err := AppendChild(node, frag, func(_ *[]any, child any) error {
			seen = append(seen, GetTagName(child))
			return nil
		})
		if err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff([]string{"em", "b"}, seen); diff != "" {
			t.Errorf("(-want +got):\n%s", diff)
		}
	})
	t.Run("error aborts", func(t *testing.T) {
		node := &[]any{"div"}
		boom := errors.New("boom")
		err := AppendChild(node, []any{"p"}, func(*[]any, any) error { return boom })
		if !errors.Is(err, boom) {
			t.Errorf("err = %v, want boom", err)
		}
		if diff := cmp.Diff(&[]any{"div"}, node); diff != "" {
			t.Errorf("(-want +got):\n%s", diff)
		}
	})
}
