package jpath

import (
	"fmt"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/signadot/jsonml"
	"github.com/signadot/jsonml/debug"
)

// Resolve walks p from root and returns the addressed element as stored in
// its parent, so a *[]any result can be mutated in place.
func Resolve(root any, p *Path) (any, error) {
	if !jsonml.IsSequence(root) || !jsonml.IsElement(root) {
		return nil, fmt.Errorf("%w: root is not an element", jsonml.ErrInvalidShape)
	}
	cur := root
	for i, step := range p.Steps {
		next, tags := child(cur, step)
		if next == nil {
			return nil, noMatch(p, i, tags)
		}
		if debug.Path() {
			debug.Logf("path step %s matched <%s>\n", step, jsonml.GetTagName(next))
		}
		cur = next
	}
	return cur, nil
}

// Lookup parses s and resolves it from root.
func Lookup(root any, s string) (any, error) {
	p, err := Parse(s)
	if err != nil {
		return nil, err
	}
	return Resolve(root, p)
}

// child returns the element child of parent addressed by step, or nil and
// the tags of all element children.
func child(parent any, step *Step) (any, []string) {
	var tags []string
	n := 0
	for _, c := range jsonml.GetChildren(parent) {
		if !jsonml.IsSequence(c) || !jsonml.IsElement(c) {
			continue
		}
		tag := jsonml.GetTagName(c)
		tags = append(tags, tag)
		if !step.matches(tag) {
			continue
		}
		if n == step.index() {
			return c, nil
		}
		n++
	}
	return nil, tags
}

func noMatch(p *Path, i int, tags []string) error {
	step := p.Steps[i]
	at := (&Path{Steps: p.Steps[:i+1]}).String()
	count := 0
	for _, tag := range tags {
		if step.matches(tag) {
			count++
		}
	}
	if count > 0 {
		return fmt.Errorf("%w: %s (only %d matching elements)", ErrNoMatch, at, count)
	}
	if s := suggest(step.Tag, tags); s != "" {
		return fmt.Errorf("%w: %s (did you mean %q?)", ErrNoMatch, at, s)
	}
	return fmt.Errorf("%w: %s", ErrNoMatch, at)
}

// suggest returns the tag closest to tag by edit distance, if it is close
// enough to be a plausible typo.
func suggest(tag string, tags []string) string {
	if tag == "" {
		return ""
	}
	best, bestDist := "", -1
	for _, t := range tags {
		d := levenshtein.ComputeDistance(strings.ToLower(tag), strings.ToLower(t))
		if bestDist == -1 || d < bestDist {
			best, bestDist = t, d
		}
	}
	if bestDist == -1 || bestDist > max(1, len(tag)/3) {
		return ""
	}
	return best
}
