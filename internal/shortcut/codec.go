package shortcut

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/jmwatte/myshorts/internal/errors"
	"github.com/jmwatte/myshorts/internal/paths"
	"github.com/jmwatte/myshorts/pkg/fileutil"
)

// Codec reads and writes the persisted shortcut document.
//
// Loading is tolerant at record granularity: a record that fails to decode
// or has no command text is skipped with a warning while its siblings load
// normally. Only the whole-document parse is all-or-nothing, and even that
// degrades to an empty store rather than an error.
type Codec struct {
	log *slog.Logger
}

// NewCodec creates a codec that reports warnings through logger.
// A nil logger falls back to slog.Default.
func NewCodec(logger *slog.Logger) *Codec {
	if logger == nil {
		logger = slog.Default()
	}
	return &Codec{log: logger}
}

// Load reads the document at path into a new store.
//
// Load never fails: a missing file is the valid empty initial state, and an
// unreadable or unparsable file degrades to an empty store with a warning.
// The process continues with no shortcuts rather than aborting.
func (c *Codec) Load(path string) *Store {
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			c.log.Warn("cannot read shortcut file, starting empty", "path", path, "error", err)
		}
		return NewStore()
	}

	store, err := c.Decode(data)
	if err != nil {
		c.log.Warn("cannot parse shortcut file, starting empty", "path", path, "error", err)
		return NewStore()
	}
	return store
}

// Decode parses a shortcut document into a store.
//
// It returns an error only when the document as a whole is not a JSON
// object. Individual records missing their command text, or otherwise
// malformed, are skipped with a per-name warning.
func (c *Codec) Decode(data []byte) (*Store, error) {
	// A leading BOM makes encoding/json reject the document outright.
	data = []byte(strings.TrimPrefix(string(data), "\uFEFF"))

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, errors.Wrap(err, "parsing shortcut document")
	}

	store := NewStore()
	for name, msg := range raw {
		var e Entry
		if err := json.Unmarshal(msg, &e); err != nil {
			c.log.Warn("skipping malformed shortcut record", "name", name, "error", err)
			continue
		}
		if err := store.Set(name, e); err != nil {
			c.log.Warn("skipping shortcut without command", "name", name)
			continue
		}
	}
	return store, nil
}

// Save writes the whole store to path, overwriting the destination
// atomically. Command text is serialized literally. A failed write reports
// an error; it never corrupts the previous document.
func (c *Codec) Save(store *Store, path string) error {
	if err := paths.EnsureDir(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrap(err, "creating store directory")
	}
	if err := fileutil.AtomicWriteJSON(path, store.Entries()); err != nil {
		return errors.Wrapf(err, "saving shortcut document %s", path)
	}
	return nil
}
