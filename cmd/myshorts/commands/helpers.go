package commands

import (
	"log/slog"

	"github.com/jmwatte/myshorts/internal/backup"
	"github.com/jmwatte/myshorts/internal/config"
	"github.com/jmwatte/myshorts/internal/paths"
	"github.com/jmwatte/myshorts/internal/shortcut"
)

// ANSI color codes for terminal output.
const (
	colorReset  = "\033[0m"
	colorBold   = "\033[1m"
	colorCyan   = "\033[36m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorGray   = "\033[90m"
)

// truncate shortens a string to maxLen runes, adding "..." if truncated.
func truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen < 3 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-3]) + "..."
}

// activeConfig returns the loaded config, or defaults when loading never ran
// (e.g., in tests that bypass cobra initialization).
func activeConfig() *config.Config {
	if cfg != nil {
		return cfg
	}
	return &config.Config{
		Version: 1,
		Runner:  "shell",
		Backup:  config.BackupConfig{Keep: 5},
	}
}

// storePath returns the resolved path of the shortcut document.
func storePath() string {
	return activeConfig().ResolveStorePath()
}

// openStore loads the shortcut document. Loading never fails: a missing or
// damaged document yields an empty store with a logged warning.
func openStore() (*shortcut.Store, *shortcut.Codec, string) {
	codec := shortcut.NewCodec(slog.Default())
	path := storePath()
	return codec.Load(path), codec, path
}

// newBackupManager returns a backup manager honoring the configured retention.
func newBackupManager() *backup.Manager {
	return backup.NewManager(paths.BackupDir(), activeConfig().Backup.Keep)
}
