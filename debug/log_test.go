package debug

import (
	"bytes"
	"strings"
	"testing"
)

func TestLogf(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	old := out
	out = buf
	defer func() { out = old }()

	seq := []any{"p", "x"}
	Logf("append %s to %s (%d)\n", &seq, "div", 3)
	got := buf.String()
	if !strings.Contains(got, `"p"`) || !strings.Contains(got, "to div (3)") {
		t.Errorf("unexpected log output %q", got)
	}
}

func TestBoolEnv(t *testing.T) {
	t.Setenv("JSONML_TEST_FLAG", "true")
	if !boolEnv("JSONML_TEST_FLAG") {
		t.Error("expected flag to be set")
	}
	t.Setenv("JSONML_TEST_FLAG", "nope")
	if boolEnv("JSONML_TEST_FLAG") {
		t.Error("unparsable flag should be false")
	}
	if boolEnv("JSONML_TEST_FLAG_UNSET") {
		t.Error("unset flag should be false")
	}
}
