// Package gitsync reconciles the local shortcut store with a remote copy
// of the shortcut document through a version-control collaborator.
package gitsync

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/jmwatte/myshorts/internal/errors"
	"github.com/jmwatte/myshorts/internal/git"
	"github.com/jmwatte/myshorts/internal/shortcut"
)

// VCS is the narrow interface the engine needs from a version-control
// collaborator. All operations are scoped to the shortcut document inside
// a single predetermined repository and remote.
type VCS interface {
	// Pull merges the remote history into the working tree.
	Pull() git.Result

	// AbortMerge abandons an in-progress merge, leaving the tree clean.
	AbortMerge() error

	// Fetch downloads the remote history without merging.
	Fetch() error

	// ShowRemoteFile returns the remote's version of the document as of
	// the last fetch.
	ShowRemoteFile() ([]byte, error)

	// Add stages the document.
	Add() error

	// Commit records a commit with the given message.
	Commit(message string) error

	// Push pushes to the remote tracking branch.
	Push() error

	// HasChanges reports whether the document has uncommitted changes.
	HasChanges() (bool, error)
}

// PullReport describes the outcome of a Pull.
type PullReport struct {
	// Merged is true when a document conflict was resolved locally.
	Merged bool

	// Added is the number of shortcuts adopted from the remote during a
	// conflict merge.
	Added int
}

// PushReport describes the outcome of a Push.
type PushReport struct {
	// Pushed is false when there was nothing to push.
	Pushed bool

	// Message is the commit message used, empty when nothing was pushed.
	Message string
}

// Engine orchestrates pull/push of the shortcut document.
//
// Its merge rule is strict: on a document conflict, local always wins.
// The union only ever adds names exclusive to the remote side, so running
// Pull repeatedly can never erase a local shortcut.
type Engine struct {
	store *shortcut.Store
	codec *shortcut.Codec
	vcs   VCS
	path  string // document path on disk
	log   *slog.Logger
	now   func() time.Time
}

// New creates an engine operating on store, persisted at path, syncing
// through vcs. A nil logger falls back to slog.Default.
func New(store *shortcut.Store, codec *shortcut.Codec, vcs VCS, path string, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{
		store: store,
		codec: codec,
		vcs:   vcs,
		path:  path,
		log:   logger,
		now:   time.Now,
	}
}

// Pull reconciles the store with the remote.
//
// On a clean pull the in-memory store is replaced by the updated document.
// On a merge conflict touching the document, the merge is aborted and
// replayed in memory: the pre-pull snapshot keeps every local entry, names
// that exist only remotely are adopted, and the result is saved, committed
// and reported. Any other failure is surfaced without attempting a merge.
func (e *Engine) Pull() (*PullReport, error) {
	// Snapshot before touching the remote; the merge is computed against
	// this, not against whatever the failed pull left behind.
	local := e.store.Clone()

	res := e.vcs.Pull()
	if res.Ok {
		e.store.ReplaceAll(e.codec.Load(e.path))
		e.log.Debug("pull succeeded", "entries", e.store.Len())
		return &PullReport{}, nil
	}

	if !res.Conflict {
		return nil, errors.Newf("pull failed: %s", res.Output)
	}

	e.log.Debug("document conflict detected, merging locally")

	if err := e.vcs.AbortMerge(); err != nil {
		return nil, errors.Wrap(err, "aborting conflicted merge")
	}

	if err := e.vcs.Fetch(); err != nil {
		return nil, errors.Wrap(err, "fetching remote document; conflict left unresolved")
	}
	data, err := e.vcs.ShowRemoteFile()
	if err != nil {
		return nil, errors.Wrap(err, "reading remote document; conflict left unresolved")
	}

	remote, err := e.codec.Decode(data)
	if err != nil {
		return nil, errors.Wrap(err, "parsing remote document; conflict left unresolved")
	}

	added := local.MergeMissing(remote)
	e.store.ReplaceAll(local)

	if err := e.codec.Save(e.store, e.path); err != nil {
		return nil, errors.Wrap(err, "saving merged document")
	}
	if err := e.vcs.Add(); err != nil {
		return nil, errors.Wrap(err, "staging merged document")
	}
	msg := fmt.Sprintf("Merge remote shortcuts: %d added", added)
	if err := e.vcs.Commit(msg); err != nil {
		return nil, errors.Wrap(err, "committing merged document")
	}

	e.log.Info("merged remote shortcuts", "added", added)
	return &PullReport{Merged: true, Added: added}, nil
}

// Push persists the store and pushes pending document changes.
//
// The store is saved unconditionally first, so the pushed file reflects the
// in-memory state even if it was never previously saved. When the document
// has no pending change, nothing is committed or pushed; an empty commit is
// never created.
func (e *Engine) Push(message string) (*PushReport, error) {
	if err := e.codec.Save(e.store, e.path); err != nil {
		return nil, errors.Wrap(err, "saving document before push")
	}

	changed, err := e.vcs.HasChanges()
	if err != nil {
		return nil, errors.Wrap(err, "checking document status")
	}
	if !changed {
		e.log.Debug("nothing to push")
		return &PushReport{}, nil
	}

	if message == "" {
		message = fmt.Sprintf("Update shortcuts (%s)", e.now().Format(time.RFC3339))
	}

	if err := e.vcs.Add(); err != nil {
		return nil, errors.Wrap(err, "staging document")
	}
	if err := e.vcs.Commit(message); err != nil {
		return nil, errors.Wrap(err, "committing document")
	}
	if err := e.vcs.Push(); err != nil {
		return nil, errors.Wrap(err, "pushing; the remote may have diverged, pull first")
	}

	e.log.Info("pushed shortcuts", "message", message)
	return &PushReport{Pushed: true, Message: message}, nil
}
