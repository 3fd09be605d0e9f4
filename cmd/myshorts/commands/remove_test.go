package commands

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

func TestConfirmRemoval(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"yes confirms", "yes\n", true},
		{"y confirms", "y\n", true},
		{"Y confirms (case insensitive)", "Y\n", true},
		{"YES confirms (case insensitive)", "YES\n", true},
		{"no rejects", "no\n", false},
		{"n rejects", "n\n", false},
		{"empty rejects", "\n", false},
		{"garbage rejects", "maybe\n", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			in := strings.NewReader(tt.input)

			got := confirmRemoval(&out, in, "deploy", "kubectl rollout restart")
			if got != tt.want {
				t.Errorf("confirmRemoval() = %v, want %v", got, tt.want)
			}

			// Verify prompt was written
			output := out.String()
			if !strings.Contains(output, "deploy") {
				t.Error("prompt should contain the shortcut name")
			}
			if !strings.Contains(output, "[y/N]") {
				t.Error("prompt should contain [y/N]")
			}
		})
	}
}

func TestRunRemove_Force(t *testing.T) {
	path := withTempStore(t)

	var out bytes.Buffer
	if err := runAddWithWriter(&out, []string{"deploy", "echo hi"}); err != nil {
		t.Fatal(err)
	}

	removeForce = true
	defer func() { removeForce = false }()

	out.Reset()
	if err := runRemoveWithIO([]string{"deploy"}, &out, strings.NewReader("")); err != nil {
		t.Fatalf("runRemoveWithIO() error = %v", err)
	}
	if !strings.Contains(out.String(), `Removed "deploy"`) {
		t.Errorf("output = %q", out.String())
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(data), "deploy") {
		t.Error("shortcut should be gone from the document")
	}
}

func TestRunRemove_DryRunLeavesDocument(t *testing.T) {
	path := withTempStore(t)

	var out bytes.Buffer
	if err := runAddWithWriter(&out, []string{"deploy", "echo hi"}); err != nil {
		t.Fatal(err)
	}
	before, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	removeDryRun = true
	defer func() { removeDryRun = false }()

	out.Reset()
	if err := runRemoveWithIO([]string{"deploy"}, &out, strings.NewReader("")); err != nil {
		t.Fatalf("runRemoveWithIO() error = %v", err)
	}
	if !strings.Contains(out.String(), `Would remove "deploy"`) {
		t.Errorf("output = %q", out.String())
	}

	after, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(before, after) {
		t.Error("dry-run must not modify the document")
	}
}

func TestRunRemove_Declined(t *testing.T) {
	withTempStore(t)

	var out bytes.Buffer
	if err := runAddWithWriter(&out, []string{"deploy", "echo hi"}); err != nil {
		t.Fatal(err)
	}

	out.Reset()
	if err := runRemoveWithIO([]string{"deploy"}, &out, strings.NewReader("n\n")); err != nil {
		t.Fatalf("runRemoveWithIO() error = %v", err)
	}
	if !strings.Contains(out.String(), "Removal cancelled") {
		t.Errorf("output = %q", out.String())
	}

	// Still there
	out.Reset()
	if err := runShowWithWriter(&out, []string{"deploy"}); err != nil {
		t.Errorf("shortcut should still exist: %v", err)
	}
}

func TestRunRemove_MissingNameIsNotAnError(t *testing.T) {
	withTempStore(t)

	var out bytes.Buffer
	if err := runRemoveWithIO([]string{"nothing"}, &out, strings.NewReader("y\n")); err != nil {
		t.Fatalf("unknown name should warn, not fail: %v", err)
	}
	if !strings.Contains(out.String(), `No shortcut named "nothing"`) {
		t.Errorf("output = %q", out.String())
	}
}

func TestRemoveCommand_Metadata(t *testing.T) {
	if removeCmd.Use != "remove <name>" {
		t.Errorf("Use = %q", removeCmd.Use)
	}
	for _, flag := range []string{"force", "dry-run"} {
		if removeCmd.Flags().Lookup(flag) == nil {
			t.Errorf("remove is missing --%s", flag)
		}
	}
}
