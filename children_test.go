package jsonml

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestGetChildren(t *testing.T) {
	want := []any{[]any{"p", "hello world"}, "more text"}
	tests := []struct {
		name string
		node any
		want []any
	}{
		{
			"with attributes",
			[]any{"div", map[string]any{"a": 1, "b": 2}, []any{"p", "hello world"}, "more text"},
			want,
		},
		{
			"without attributes",
			[]any{"div", []any{"p", "hello world"}, "more text"},
			want,
		},
		{
			"pointer",
			&[]any{"div", []any{"p", "hello world"}, "more text"},
			want,
		},
		{"no children", []any{"br"}, nil},
		{"attributes only", []any{"br", map[string]any{"a": 1}}, nil},
		{"empty", []any{}, nil},
		{"text", "hello", nil},
		{"nil", nil, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GetChildren(tt.node)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
}

func TestGetChildrenCopy(t *testing.T) {
	node := &[]any{"div", "a", []any{"b"}}
	children := GetChildren(node)
	children[0] = "changed"
	if (*node)[1] != "a" {
		t.Error("GetChildren returned a live view")
	}
	if diff := cmp.Diff(&[]any{"div", "a", []any{"b"}}, node); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}
