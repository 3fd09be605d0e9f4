package logging

import (
	"bytes"
	"testing"
)

func TestIsTTY_Buffer(t *testing.T) {
	var buf bytes.Buffer
	if IsTTY(&buf) {
		t.Error("bytes.Buffer should not be a TTY")
	}
}

func TestSupportsColor_NoColorEnv(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	var buf bytes.Buffer
	if supportsColor(&buf, true) {
		t.Error("NO_COLOR should disable color even on a TTY")
	}
}

func TestSupportsColor_DumbTerm(t *testing.T) {
	t.Setenv("TERM", "dumb")
	var buf bytes.Buffer
	if supportsColor(&buf, true) {
		t.Error("TERM=dumb should disable color")
	}
}

func TestSupportsColor_NonTTY(t *testing.T) {
	var buf bytes.Buffer
	if SupportsColor(&buf) {
		t.Error("non-TTY writer should not support color")
	}
}
