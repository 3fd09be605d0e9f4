package commands

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/jmwatte/myshorts/internal/errors"
)

func TestRunAdd(t *testing.T) {
	path := withTempStore(t)

	var out bytes.Buffer
	if err := runAddWithWriter(&out, []string{"deploy", "kubectl", "rollout", "restart"}); err != nil {
		t.Fatalf("runAddWithWriter() error = %v", err)
	}

	if !strings.Contains(out.String(), `Added "deploy"`) {
		t.Errorf("output = %q, want it to mention the added name", out.String())
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "kubectl rollout restart") {
		t.Errorf("document = %s, want joined command text", data)
	}
}

func TestRunAdd_DuplicateIsKept(t *testing.T) {
	path := withTempStore(t)

	var out bytes.Buffer
	if err := runAddWithWriter(&out, []string{"deploy", "echo one"}); err != nil {
		t.Fatal(err)
	}

	out.Reset()
	if err := runAddWithWriter(&out, []string{"deploy", "echo two"}); err != nil {
		t.Fatalf("duplicate add should warn, not fail: %v", err)
	}
	if !strings.Contains(out.String(), "already exists") {
		t.Errorf("output = %q, want an already-exists warning", out.String())
	}

	// First entry is untouched
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "echo one") || strings.Contains(string(data), "echo two") {
		t.Errorf("document = %s, want the original command preserved", data)
	}
}

func TestRunAdd_EmptyCommandFails(t *testing.T) {
	withTempStore(t)

	var out bytes.Buffer
	err := runAddWithWriter(&out, []string{"deploy", "   "})
	if !errors.Is(err, errors.ErrEmptyCommand) {
		t.Errorf("error = %v, want ErrEmptyCommand", err)
	}
}

func TestRunSet_Overwrites(t *testing.T) {
	path := withTempStore(t)

	var out bytes.Buffer
	if err := runSetWithWriter(&out, []string{"deploy", "echo one"}); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), `Added "deploy"`) {
		t.Errorf("first set output = %q, want Added", out.String())
	}

	out.Reset()
	if err := runSetWithWriter(&out, []string{"deploy", "echo two"}); err != nil {
		t.Fatalf("overwriting set error = %v", err)
	}
	if !strings.Contains(out.String(), `Updated "deploy"`) {
		t.Errorf("second set output = %q, want Updated", out.String())
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "echo two") || strings.Contains(string(data), "echo one") {
		t.Errorf("document = %s, want only the overwritten command", data)
	}
}

func TestAddCommand_Metadata(t *testing.T) {
	if addCmd.Use != "add <name> <command>..." {
		t.Errorf("Use = %q", addCmd.Use)
	}
	if setCmd.Use != "set <name> <command>..." {
		t.Errorf("Use = %q", setCmd.Use)
	}
	for _, flag := range []string{"description", "category"} {
		if addCmd.Flags().Lookup(flag) == nil {
			t.Errorf("add is missing --%s", flag)
		}
		if setCmd.Flags().Lookup(flag) == nil {
			t.Errorf("set is missing --%s", flag)
		}
	}
}
