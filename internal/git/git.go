// Package git drives the git binary for shortcut-store synchronization.
//
// All operations are scoped to a single working tree with `git -C <dir>`;
// the process working directory is never changed. The Client watches one
// file (the shortcut document) and reports merge conflicts on that file
// distinctly from other failures, using git's unmerged-path listing rather
// than matching substrings in command output.
package git

import (
	"os"
	"os/exec"
	"strings"

	"github.com/jmwatte/myshorts/internal/errors"
)

// Result reports the outcome of a pull.
type Result struct {
	// Ok is true when the pull succeeded.
	Ok bool

	// Conflict is true when the pull failed with a merge conflict that
	// touches the watched file.
	Conflict bool

	// Output is the combined stdout and stderr of the git invocation,
	// surfaced to the user on failure.
	Output string
}

// IsURL returns true if s looks like a git repository URL.
// It checks for:
//   - URLs containing "://" (e.g., https://, git://)
//   - URLs ending with ".git"
//   - SSH-style URLs starting with "git@"
func IsURL(s string) bool {
	if strings.Contains(s, "://") {
		return true
	}
	if strings.HasSuffix(s, ".git") {
		return true
	}
	if strings.HasPrefix(s, "git@") {
		return true
	}
	return false
}

// Client runs git commands against one working tree holding one watched file.
type Client struct {
	dir  string // working tree root
	file string // watched file, relative to dir
}

// NewClient creates a client for the working tree at dir watching file.
// file must be a path relative to dir.
func NewClient(dir, file string) *Client {
	return &Client{dir: dir, file: file}
}

// Dir returns the working tree root.
func (c *Client) Dir() string {
	return c.dir
}

// run executes git with the given arguments in the client's working tree
// and returns the combined output.
func (c *Client) run(args ...string) (string, error) {
	full := append([]string{"-C", c.dir}, args...)
	out, err := exec.Command("git", full...).CombinedOutput()
	return strings.TrimSpace(string(out)), err
}

// IsRepo returns true if the working tree is inside a git repository.
func (c *Client) IsRepo() bool {
	out, err := c.run("rev-parse", "--is-inside-work-tree")
	return err == nil && out == "true"
}

// HasRemote returns true if the repository has at least one remote configured.
func (c *Client) HasRemote() bool {
	out, err := c.run("remote")
	return err == nil && out != ""
}

// Init initializes a new repository in the working tree.
func (c *Client) Init() error {
	if out, err := c.run("init"); err != nil {
		return errors.Wrapf(err, "git init failed: %s", out)
	}
	return nil
}

// AddRemote registers url as the "origin" remote.
func (c *Client) AddRemote(url string) error {
	if out, err := c.run("remote", "add", "origin", url); err != nil {
		return errors.Wrapf(err, "git remote add failed: %s", out)
	}
	return nil
}

// Clone clones a git repository from url into dest. Output is streamed and
// stdin is connected to support interactive authentication (e.g., SSH
// passphrase, credentials).
func Clone(url, dest string) error {
	cmd := exec.Command("git", "clone", url, dest)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return errors.Wrap(err, "git clone failed")
	}
	return nil
}

// Pull pulls the remote history into the working tree.
//
// A failed pull is inspected for a merge conflict on the watched file; the
// result distinguishes that case so callers can run their own merge. Any
// other failure is reported through Result.Output.
func (c *Client) Pull() Result {
	out, err := c.run("pull")
	if err == nil {
		return Result{Ok: true, Output: out}
	}
	return Result{
		Conflict: c.fileHasConflict(),
		Output:   out,
	}
}

// fileHasConflict reports whether the watched file is currently unmerged.
func (c *Client) fileHasConflict() bool {
	out, err := c.run("ls-files", "--unmerged", "--", c.file)
	return err == nil && out != ""
}

// AbortMerge aborts an in-progress merge, leaving the working tree clean.
func (c *Client) AbortMerge() error {
	if out, err := c.run("merge", "--abort"); err != nil {
		return errors.Wrapf(err, "git merge --abort failed: %s", out)
	}
	return nil
}

// Fetch downloads the remote history without merging it.
func (c *Client) Fetch() error {
	if out, err := c.run("fetch"); err != nil {
		return errors.Wrapf(err, "git fetch failed: %s", out)
	}
	return nil
}

// ShowRemoteFile returns the remote's version of the watched file as of the
// last fetch, without touching the working tree.
func (c *Client) ShowRemoteFile() ([]byte, error) {
	full := []string{"-C", c.dir, "show", "FETCH_HEAD:" + c.file}
	out, err := exec.Command("git", full...).Output()
	if err != nil {
		return nil, errors.Wrapf(err, "git show FETCH_HEAD:%s failed", c.file)
	}
	return out, nil
}

// Add stages the watched file.
func (c *Client) Add() error {
	if out, err := c.run("add", "--", c.file); err != nil {
		return errors.Wrapf(err, "git add failed: %s", out)
	}
	return nil
}

// Commit records a commit with the given message.
func (c *Client) Commit(message string) error {
	if out, err := c.run("commit", "-m", message); err != nil {
		return errors.Wrapf(err, "git commit failed: %s", out)
	}
	return nil
}

// Push pushes to the remote tracking branch.
func (c *Client) Push() error {
	if out, err := c.run("push"); err != nil {
		return errors.Wrapf(err, "git push failed: %s", out)
	}
	return nil
}

// HasChanges reports whether the watched file has uncommitted changes,
// including being untracked.
func (c *Client) HasChanges() (bool, error) {
	out, err := c.run("status", "--porcelain", "--", c.file)
	if err != nil {
		return false, errors.Wrapf(err, "git status failed: %s", out)
	}
	return out != "", nil
}
