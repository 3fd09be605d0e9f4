// Package backup creates timestamped copies of the shortcut document
// before destructive operations.
package backup

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/jmwatte/myshorts/internal/errors"
	"github.com/jmwatte/myshorts/internal/paths"
)

// timestampFormat orders backup files lexicographically by creation time.
const timestampFormat = "20060102-150405"

// Manager copies the shortcut document into a backup directory and prunes
// old copies.
type Manager struct {
	dir  string
	keep int
	now  func() time.Time
}

// NewManager creates a backup manager writing to dir and retaining keep
// backups per prune. keep <= 0 disables backups entirely.
func NewManager(dir string, keep int) *Manager {
	return &Manager{dir: dir, keep: keep, now: time.Now}
}

// Backup copies the file at path into the backup directory and prunes old
// copies. It returns the backup's path, or "" when backups are disabled or
// the source file does not exist yet.
func (m *Manager) Backup(path string) (string, error) {
	if m.keep <= 0 {
		return "", nil
	}

	src, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", errors.Wrap(err, "opening document for backup")
	}
	defer src.Close()

	if err := paths.EnsureDir(m.dir, 0); err != nil {
		return "", errors.Wrap(err, "creating backup directory")
	}

	name := fmt.Sprintf("%s.%s", filepath.Base(path), m.now().Format(timestampFormat))
	dest := filepath.Join(m.dir, name)

	out, err := os.Create(dest)
	if err != nil {
		return "", errors.Wrap(err, "creating backup file")
	}
	if _, err := io.Copy(out, src); err != nil {
		out.Close()
		os.Remove(dest)
		return "", errors.Wrap(err, "copying document")
	}
	if err := out.Close(); err != nil {
		return "", errors.Wrap(err, "closing backup file")
	}

	if err := m.prune(filepath.Base(path)); err != nil {
		// The backup itself succeeded; pruning is best-effort
		return dest, errors.Wrap(err, "pruning old backups")
	}
	return dest, nil
}

// List returns the backup file paths for the named document, newest first.
func (m *Manager) List(base string) ([]string, error) {
	entries, err := os.ReadDir(m.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "reading backup directory")
	}

	var found []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasPrefix(e.Name(), base+".") {
			continue
		}
		found = append(found, filepath.Join(m.dir, e.Name()))
	}
	// Timestamped names sort chronologically; reverse for newest first
	sort.Sort(sort.Reverse(sort.StringSlice(found)))
	return found, nil
}

// prune removes all but the newest keep backups of the named document.
func (m *Manager) prune(base string) error {
	found, err := m.List(base)
	if err != nil {
		return err
	}
	for _, path := range found[min(m.keep, len(found)):] {
		if err := os.Remove(path); err != nil {
			return errors.Wrapf(err, "removing old backup %s", path)
		}
	}
	return nil
}
