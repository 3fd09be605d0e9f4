package shortcut

import (
	"sort"

	"github.com/jmwatte/myshorts/internal/errors"
)

// Store is the in-memory mapping from normalized shortcut name to Entry.
// One instance exists per process run; it is the working copy of the
// persisted document and is not safe for concurrent use.
type Store struct {
	entries map[string]Entry
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{entries: make(map[string]Entry)}
}

// Len returns the number of entries in the store.
func (s *Store) Len() int {
	return len(s.entries)
}

// Add inserts a new entry. It fails with ErrExists if the normalized name
// is already present; it never overwrites.
func (s *Store) Add(name string, e Entry) error {
	name = NormalizeName(name)
	if _, exists := s.entries[name]; exists {
		return errors.WithDetailf(errors.ErrExists, "shortcut %q already exists; use 'set' to overwrite", name)
	}
	return s.Set(name, e)
}

// Set upserts an entry: inserts if absent, overwrites if present.
// This is the only mutating path used by load and merge.
// An entry with an empty command is rejected with ErrEmptyCommand.
func (s *Store) Set(name string, e Entry) error {
	name = NormalizeName(name)
	if name == "" {
		return errors.Wrap(errors.ErrEmptyCommand, "empty shortcut name")
	}
	if NormalizeName(e.Command) == "" {
		return errors.WithDetailf(errors.ErrEmptyCommand, "shortcut %q has no command text", name)
	}
	if e.Category == "" {
		e.Category = DefaultCategory
	}
	s.entries[name] = e
	return nil
}

// Remove deletes the named entry. It fails with ErrNotFound if the
// normalized name is absent.
func (s *Store) Remove(name string) error {
	name = NormalizeName(name)
	if _, exists := s.entries[name]; !exists {
		return errors.WithDetailf(errors.ErrNotFound, "shortcut %q not found", name)
	}
	delete(s.entries, name)
	return nil
}

// Get returns the named entry, or ErrNotFound.
func (s *Store) Get(name string) (Entry, error) {
	name = NormalizeName(name)
	e, exists := s.entries[name]
	if !exists {
		return Entry{}, errors.WithDetailf(errors.ErrNotFound, "shortcut %q not found", name)
	}
	return e, nil
}

// Has reports whether the normalized name is present.
func (s *Store) Has(name string) bool {
	_, exists := s.entries[NormalizeName(name)]
	return exists
}

// List returns name/category/description projections, sorted by name.
// The command text is never included. If category is non-empty, only
// entries with that exact category are returned.
func (s *Store) List(category string) []Info {
	infos := make([]Info, 0, len(s.entries))
	for name, e := range s.entries {
		if category != "" && e.Category != category {
			continue
		}
		infos = append(infos, Info{
			Name:        name,
			Category:    e.Category,
			Description: e.Description,
		})
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].Name < infos[j].Name })
	return infos
}

// Categories returns the sorted set of distinct category values in use.
func (s *Store) Categories() []string {
	seen := make(map[string]struct{})
	for _, e := range s.entries {
		seen[e.Category] = struct{}{}
	}
	cats := make([]string, 0, len(seen))
	for c := range seen {
		cats = append(cats, c)
	}
	sort.Strings(cats)
	return cats
}

// Names returns all shortcut names, sorted.
func (s *Store) Names() []string {
	names := make([]string, 0, len(s.entries))
	for name := range s.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Entries returns a copy of the underlying mapping for serialization.
func (s *Store) Entries() map[string]Entry {
	out := make(map[string]Entry, len(s.entries))
	for name, e := range s.entries {
		out[name] = e
	}
	return out
}

// Clone returns an independent copy of the store.
func (s *Store) Clone() *Store {
	return &Store{entries: s.Entries()}
}

// MergeMissing adds every entry of other whose name is absent from s,
// leaving existing entries untouched, and returns the count added.
// This is the local-wins union used by sync: a local entry is never
// overwritten and never deleted, no matter what the other side holds.
func (s *Store) MergeMissing(other *Store) int {
	added := 0
	for name, e := range other.entries {
		if _, exists := s.entries[name]; exists {
			continue
		}
		s.entries[name] = e
		added++
	}
	return added
}

// ReplaceAll swaps the store's contents with those of other.
func (s *Store) ReplaceAll(other *Store) {
	s.entries = other.Entries()
}
