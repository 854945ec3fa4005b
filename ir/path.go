package ir

import (
	"regexp"
	"strconv"
)

// PathTagPattern matches the tags a path step can name. Other tags are
// addressed with the wildcard.
const PathTagPattern = `[a-zA-Z_][a-zA-Z0-9_:.\-]*`

var pathTagRe = regexp.MustCompile(`^` + PathTagPattern + `$`)

func IsPathTag(tag string) bool {
	return pathTagRe.MatchString(tag)
}

// Path returns the jpath expression addressing y from its root: one
// tag[index] step per ancestor below the root, index counting siblings
// with the same tag. Elements whose tag cannot be written in a path
// (fragments, "a b", "1x") are addressed with the wildcard, counting all
// element siblings. The root has the empty path. Leaves report the path of
// their element.
func (y *Node) Path() string {
	if y.Parent == nil {
		return ""
	}
	if y.Type != ElementType {
		return y.Parent.Path()
	}
	tag := y.Tag
	if !IsPathTag(tag) {
		tag = ""
	}
	i := 0
	for _, sib := range y.Parent.Elements() {
		if sib == y {
			break
		}
		if tag == "" || sib.Tag == tag {
			i++
		}
	}
	step := PathStep(tag, i)
	prefix := y.Parent.Path()
	if prefix == "" {
		return step
	}
	return prefix + "/" + step
}

// PathStep formats one path step. Index 0 is left implicit.
func PathStep(tag string, index int) string {
	if tag == "" {
		tag = "*"
	}
	if index == 0 {
		return tag
	}
	return tag + "[" + strconv.Itoa(index) + "]"
}
