package commands

import (
	"path/filepath"
	"testing"

	"github.com/jmwatte/myshorts/internal/config"
)

// withTempStore points the commands at a store file under t.TempDir and
// restores the previous config afterwards. Backups are disabled.
func withTempStore(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "shortcuts.json")
	orig := cfg
	cfg = &config.Config{
		Version:   1,
		StorePath: path,
		Runner:    "shell",
	}
	t.Cleanup(func() { cfg = orig })
	return path
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		maxLen int
		want   string
	}{
		{"shorter than max", "hello", 10, "hello"},
		{"exactly max", "hello", 5, "hello"},
		{"longer than max", "hello world", 8, "hello..."},
		{"max below ellipsis", "hello", 2, "he"},
		{"multibyte runes", "héllo wörld", 8, "héllo..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := truncate(tt.input, tt.maxLen); got != tt.want {
				t.Errorf("truncate(%q, %d) = %q, want %q", tt.input, tt.maxLen, got, tt.want)
			}
		})
	}
}

func TestActiveConfig_Defaults(t *testing.T) {
	orig := cfg
	cfg = nil
	t.Cleanup(func() { cfg = orig })

	got := activeConfig()
	if got.Runner != "shell" {
		t.Errorf("default runner = %q, want %q", got.Runner, "shell")
	}
	if got.Backup.Keep != 5 {
		t.Errorf("default backup.keep = %d, want 5", got.Backup.Keep)
	}
}
