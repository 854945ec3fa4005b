package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Append bool
	Attrs  bool
	Path   bool
	Query  bool
	Patch  bool
}

var d *debug

func init() {
	d = &debug{}
	d.Append = boolEnv("JSONML_DEBUG_APPEND")
	d.Attrs = boolEnv("JSONML_DEBUG_ATTRS")
	d.Path = boolEnv("JSONML_DEBUG_PATH")
	d.Query = boolEnv("JSONML_DEBUG_QUERY")
	d.Patch = boolEnv("JSONML_DEBUG_PATCH")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Append() bool {
	return d.Append
}
func Attrs() bool {
	return d.Attrs
}
func Path() bool {
	return d.Path
}
func Query() bool {
	return d.Query
}
func Patch() bool {
	return d.Patch
}
