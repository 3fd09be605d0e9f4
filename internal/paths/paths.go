package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"

	"github.com/jmwatte/myshorts/internal/errors"
)

// AppName is the directory name used under the XDG base directories.
const AppName = "myshorts"

// StoreFileName is the name of the persisted shortcut document.
const StoreFileName = "shortcuts.json"

// Sentinel errors for path resolution.
var (
	// ErrHomeDirNotFound indicates the user's home directory could not be determined.
	ErrHomeDirNotFound = errors.New("home directory not found")
)

// DefaultDirPerm is the default permission for newly created directories (private).
const DefaultDirPerm = 0o700

// EnsureDir creates the directory and any necessary parents with specified permissions.
// If perm is 0, DefaultDirPerm (0700) is used.
// This function is idempotent; it returns nil if the directory already exists.
func EnsureDir(path string, perm os.FileMode) error {
	if perm == 0 {
		perm = DefaultDirPerm
	}
	return os.MkdirAll(path, perm)
}

// ResolveHome returns the user's home directory.
// Returns ErrHomeDirNotFound if the directory cannot be determined.
func ResolveHome() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(ErrHomeDirNotFound, err.Error())
	}
	return home, nil
}

// ConfigHome returns the XDG config home directory.
// On Linux: ~/.config
// On macOS: ~/Library/Application Support
// On Windows: %LOCALAPPDATA%
func ConfigHome() string {
	return xdg.ConfigHome
}

// DataHome returns the XDG data home directory.
// On Linux: ~/.local/share
// On macOS: ~/Library/Application Support
// On Windows: %LOCALAPPDATA%
func DataHome() string {
	return xdg.DataHome
}

// CacheHome returns the XDG cache home directory.
func CacheHome() string {
	return xdg.CacheHome
}

// ConfigDir returns the directory holding the myshorts config file.
// Returns: <ConfigHome>/myshorts/
func ConfigDir() string {
	return filepath.Join(ConfigHome(), AppName)
}

// ConfigFile returns the path of the myshorts config file.
// Returns: <ConfigHome>/myshorts/config.yaml
func ConfigFile() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}

// StoreDir returns the directory holding the shortcut document.
// This directory doubles as the git working tree for sync.
// Returns: <DataHome>/myshorts/
func StoreDir() string {
	return filepath.Join(DataHome(), AppName)
}

// StoreFile returns the path of the persisted shortcut document.
// Returns: <DataHome>/myshorts/shortcuts.json
func StoreFile() string {
	return filepath.Join(StoreDir(), StoreFileName)
}

// BackupDir returns the directory for store file backups.
// Backups live outside StoreDir so they never enter the sync repository.
// Returns: <DataHome>/myshorts-backups/
func BackupDir() string {
	return filepath.Join(DataHome(), AppName+"-backups")
}
