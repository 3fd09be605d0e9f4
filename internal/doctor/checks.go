package doctor

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/jmwatte/myshorts/internal/git"
	"github.com/jmwatte/myshorts/internal/runner"
	"github.com/jmwatte/myshorts/internal/shortcut"
)

// GitBinaryCheck verifies the git binary is available on PATH.
type GitBinaryCheck struct{}

var _ Check = (*GitBinaryCheck)(nil)

// Name returns the unique identifier for this check.
func (c *GitBinaryCheck) Name() string { return "git-binary" }

// Category returns the grouping for this check.
func (c *GitBinaryCheck) Category() string { return "sync" }

// Run executes the check.
func (c *GitBinaryCheck) Run() *CheckResult {
	path, err := exec.LookPath("git")
	if err != nil {
		return &CheckResult{
			Name:     c.Name(),
			Category: c.Category(),
			Status:   SeverityError,
			Message:  "git binary not found on PATH",
			FixHint:  "Install git to enable sync",
		}
	}
	return &CheckResult{
		Name:     c.Name(),
		Category: c.Category(),
		Status:   SeverityPass,
		Message:  fmt.Sprintf("git found at %s", path),
	}
}

// StoreFileCheck verifies the shortcut document is readable and parses.
type StoreFileCheck struct {
	// Path is the location of the shortcut document.
	Path string

	// Codec decodes the document.
	Codec *shortcut.Codec
}

var _ Check = (*StoreFileCheck)(nil)

// Name returns the unique identifier for this check.
func (c *StoreFileCheck) Name() string { return "store-file" }

// Category returns the grouping for this check.
func (c *StoreFileCheck) Category() string { return "store" }

// Run executes the check.
func (c *StoreFileCheck) Run() *CheckResult {
	data, err := os.ReadFile(c.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return &CheckResult{
				Name:     c.Name(),
				Category: c.Category(),
				Status:   SeverityInfo,
				Message:  "no shortcut document yet (valid initial state)",
			}
		}
		return &CheckResult{
			Name:     c.Name(),
			Category: c.Category(),
			Status:   SeverityError,
			Message:  fmt.Sprintf("cannot read %s: %v", c.Path, err),
			FixHint:  "Check file permissions",
		}
	}

	store, err := c.Codec.Decode(data)
	if err != nil {
		return &CheckResult{
			Name:     c.Name(),
			Category: c.Category(),
			Status:   SeverityError,
			Message:  fmt.Sprintf("document does not parse: %v", err),
			FixHint:  "Run: myshorts edit to repair the file",
		}
	}

	return &CheckResult{
		Name:     c.Name(),
		Category: c.Category(),
		Status:   SeverityPass,
		Message:  fmt.Sprintf("%d shortcut(s) loaded from %s", store.Len(), c.Path),
	}
}

// SyncRepoCheck verifies the store directory is a git repository with a remote.
type SyncRepoCheck struct {
	// Client is scoped to the store directory.
	Client *git.Client
}

var _ Check = (*SyncRepoCheck)(nil)

// Name returns the unique identifier for this check.
func (c *SyncRepoCheck) Name() string { return "sync-repo" }

// Category returns the grouping for this check.
func (c *SyncRepoCheck) Category() string { return "sync" }

// Run executes the check.
func (c *SyncRepoCheck) Run() *CheckResult {
	if !c.Client.IsRepo() {
		return &CheckResult{
			Name:     c.Name(),
			Category: c.Category(),
			Status:   SeverityWarning,
			Message:  fmt.Sprintf("%s is not a git repository", c.Client.Dir()),
			FixHint:  "Run: myshorts sync init <remote-url>",
		}
	}
	if !c.Client.HasRemote() {
		return &CheckResult{
			Name:     c.Name(),
			Category: c.Category(),
			Status:   SeverityWarning,
			Message:  "sync repository has no remote configured",
			FixHint:  "Run: myshorts sync init <remote-url>",
		}
	}
	return &CheckResult{
		Name:     c.Name(),
		Category: c.Category(),
		Status:   SeverityPass,
		Message:  "sync repository ready",
	}
}

// RunnerCheck verifies the configured runner kind is recognized.
type RunnerCheck struct {
	// Kind is the configured runner name.
	Kind string
}

var _ Check = (*RunnerCheck)(nil)

// Name returns the unique identifier for this check.
func (c *RunnerCheck) Name() string { return "runner" }

// Category returns the grouping for this check.
func (c *RunnerCheck) Category() string { return "config" }

// Run executes the check.
func (c *RunnerCheck) Run() *CheckResult {
	if _, err := runner.New(c.Kind); err != nil {
		return &CheckResult{
			Name:     c.Name(),
			Category: c.Category(),
			Status:   SeverityError,
			Message:  err.Error(),
			FixHint:  "Set runner to shell or lua in config.yaml",
		}
	}
	kind := c.Kind
	if kind == "" {
		kind = runner.KindShell
	}
	return &CheckResult{
		Name:     c.Name(),
		Category: c.Category(),
		Status:   SeverityPass,
		Message:  fmt.Sprintf("runner %q available", kind),
	}
}
