package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/signadot/jsonml/format"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("JSONML_CONFIG", "")
	c, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	want := Config{InputFormat: "json", OutputFormat: "json", Color: "auto", Indent: 2}
	if c != want {
		t.Errorf("got %+v, want %+v", c, want)
	}
}

func TestLoadFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("input_format: yaml\nindent: 4\ncolor: never\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("JSONML_CONFIG", path)
	t.Setenv("JSONML_WIRE", "true")
	c, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if c.InputFormat != "yaml" || c.Indent != 4 || c.Color != "never" || !c.Wire {
		t.Errorf("unexpected config %+v", c)
	}
	in, out, err := c.Formats()
	if err != nil || in != format.YAMLFormat || out != format.JSONFormat {
		t.Errorf("Formats() = %v, %v, %v", in, out, err)
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	t.Setenv("JSONML_CONFIG", filepath.Join(t.TempDir(), "nope.yaml"))
	if _, err := Load(); err != nil {
		t.Errorf("missing file should not fail: %v", err)
	}
}

func TestValidate(t *testing.T) {
	bad := []Config{
		{InputFormat: "xml", OutputFormat: "json", Color: "auto"},
		{InputFormat: "json", OutputFormat: "json", Color: "rainbow"},
		{InputFormat: "json", OutputFormat: "json", Color: "auto", Indent: -1},
	}
	for _, c := range bad {
		if err := c.Validate(); !errors.Is(err, ErrBadConfig) {
			t.Errorf("Validate(%+v) = %v, want ErrBadConfig", c, err)
		}
	}
}
