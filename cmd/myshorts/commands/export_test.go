package commands

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/jmwatte/myshorts/internal/shortcut"
)

func TestRunExport_JSON(t *testing.T) {
	withTempStore(t)
	seedCatalog(t)

	var out bytes.Buffer
	if err := runExportWithWriter(&out); err != nil {
		t.Fatalf("runExportWithWriter() error = %v", err)
	}

	var got map[string]shortcut.Entry
	if err := json.Unmarshal(out.Bytes(), &got); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if got["deploy"].Command != "kubectl rollout restart deploy/api" {
		t.Errorf("exported entry = %+v", got["deploy"])
	}
}

func TestRunExport_YAML(t *testing.T) {
	withTempStore(t)
	seedCatalog(t)

	exportFormat = "yaml"
	defer func() { exportFormat = "json" }()

	var out bytes.Buffer
	if err := runExportWithWriter(&out); err != nil {
		t.Fatal(err)
	}

	var got map[string]map[string]string
	if err := yaml.Unmarshal(out.Bytes(), &got); err != nil {
		t.Fatalf("output is not valid YAML: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("got %d entries, want 2", len(got))
	}
}

func TestRunExport_TOMLToFile(t *testing.T) {
	withTempStore(t)
	seedCatalog(t)

	dest := filepath.Join(t.TempDir(), "shortcuts.toml")
	exportFormat = "toml"
	exportOutput = dest
	defer func() {
		exportFormat = "json"
		exportOutput = ""
	}()

	var out bytes.Buffer
	if err := runExportWithWriter(&out); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(dest)
	if err != nil {
		t.Fatalf("export file not written: %v", err)
	}
	if !strings.Contains(string(data), "deploy") {
		t.Errorf("export = %s", data)
	}
}

func TestRunExport_UnknownFormat(t *testing.T) {
	withTempStore(t)

	exportFormat = "xml"
	defer func() { exportFormat = "json" }()

	var out bytes.Buffer
	if err := runExportWithWriter(&out); err == nil {
		t.Error("expected error for unknown format")
	}
}
