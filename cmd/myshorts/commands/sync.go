package commands

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jmwatte/myshorts/internal/errors"
	"github.com/jmwatte/myshorts/internal/git"
	"github.com/jmwatte/myshorts/internal/gitsync"
	"github.com/jmwatte/myshorts/internal/shortcut"
)

var syncPushMessage string

func init() {
	syncPushCmd.Flags().StringVarP(&syncPushMessage, "message", "m", "",
		"commit message (default: timestamped)")

	syncCmd.AddCommand(syncInitCmd)
	syncCmd.AddCommand(syncPullCmd)
	syncCmd.AddCommand(syncPushCmd)
	rootCmd.AddCommand(syncCmd)
}

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Synchronize shortcuts through a git remote",
	Long: `Synchronize the shortcut document between machines through a git remote.

The store directory is a plain git working tree; any remote your git
can reach works. When both sides changed the document, the conflict is
resolved automatically: every local shortcut is kept, and shortcuts
that exist only on the remote are adopted. A pull can never erase a
local shortcut.

Examples:
  # Connect the store to a remote (once per machine)
  myshorts sync init git@github.com:me/shortcuts.git

  # Publish local changes
  myshorts sync push

  # Fetch changes from the other machine
  myshorts sync pull`,
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	},
}

var syncInitCmd = &cobra.Command{
	Use:   "init <remote-url>",
	Short: "Connect the shortcut store to a git remote",
	Long: `Connect the shortcut store directory to a git remote.

If the store directory does not exist yet, the remote is cloned into
it. Otherwise a repository is initialized in place and the remote is
registered as origin; run 'myshorts sync pull' afterwards to adopt any
shortcuts already on the remote.`,
	Args: cobra.ExactArgs(1),
	RunE: runSyncInit,
}

var syncPullCmd = &cobra.Command{
	Use:   "pull",
	Short: "Pull shortcuts from the remote",
	Long: `Pull the remote shortcut document into the local store.

On a conflict, local shortcuts always win; shortcuts that exist only on
the remote are added and the resolution is committed.`,
	Args: cobra.NoArgs,
	RunE: runSyncPull,
}

var syncPushCmd = &cobra.Command{
	Use:   "push",
	Short: "Push local shortcuts to the remote",
	Long: `Commit and push the local shortcut document to the remote.

The document is saved first, so the pushed file always reflects the
current catalog. Nothing is committed when there is no change.`,
	Args: cobra.NoArgs,
	RunE: runSyncPush,
}

func runSyncInit(_ *cobra.Command, args []string) error {
	return runSyncInitWithWriter(os.Stdout, args[0])
}

// runSyncInitWithWriter allows injecting a writer for testing.
func runSyncInitWithWriter(w io.Writer, url string) error {
	if !git.IsURL(url) {
		return errors.NewUserError(
			errors.Newf("%q does not look like a git URL", url),
			"Use an https://, git:// or git@ URL, or a path ending in .git")
	}

	dir := filepath.Dir(storePath())

	if _, err := os.Stat(dir); os.IsNotExist(err) {
		fmt.Fprintf(w, "Cloning %s into %s\n", url, dir)
		if err := git.Clone(url, dir); err != nil {
			return err
		}
		fmt.Fprintln(w, "Sync ready")
		return nil
	}

	client := newGitClient()
	if client.IsRepo() {
		if client.HasRemote() {
			return errors.NewUserError(
				errors.Newf("%s is already connected to a remote", dir),
				"Run: myshorts sync pull")
		}
		if err := client.AddRemote(url); err != nil {
			return err
		}
		fmt.Fprintf(w, "Added remote %s\n", url)
		return nil
	}

	if err := client.Init(); err != nil {
		return err
	}
	if err := client.AddRemote(url); err != nil {
		return err
	}
	fmt.Fprintf(w, "Initialized sync repository in %s\n", dir)
	fmt.Fprintln(w, "Run: myshorts sync pull to adopt remote shortcuts, or myshorts sync push to publish")
	return nil
}

func runSyncPull(_ *cobra.Command, _ []string) error {
	return runSyncPullWithWriter(os.Stdout)
}

// runSyncPullWithWriter allows injecting a writer for testing.
func runSyncPullWithWriter(w io.Writer) error {
	engine, path, err := newSyncEngine()
	if err != nil {
		return err
	}

	// The pull may rewrite the document; keep a copy
	if _, err := newBackupManager().Backup(path); err != nil {
		return errors.Wrap(err, "backing up document")
	}

	report, err := engine.Pull()
	if err != nil {
		return err
	}

	if report.Merged {
		fmt.Fprintf(w, "Merged: kept all local shortcuts, adopted %d from remote\n", report.Added)
	} else {
		fmt.Fprintln(w, "Up to date with remote")
	}
	return nil
}

func runSyncPush(_ *cobra.Command, _ []string) error {
	return runSyncPushWithWriter(os.Stdout)
}

// runSyncPushWithWriter allows injecting a writer for testing.
func runSyncPushWithWriter(w io.Writer) error {
	engine, _, err := newSyncEngine()
	if err != nil {
		return err
	}

	report, err := engine.Push(syncPushMessage)
	if err != nil {
		return errors.NewUserError(err, "Run: myshorts sync pull")
	}

	if !report.Pushed {
		fmt.Fprintln(w, "Nothing to push")
		return nil
	}
	fmt.Fprintf(w, "Pushed: %s\n", report.Message)
	return nil
}

// newGitClient returns a client scoped to the store directory, watching the
// shortcut document.
func newGitClient() *git.Client {
	path := storePath()
	return git.NewClient(filepath.Dir(path), filepath.Base(path))
}

// newSyncEngine wires the sync engine, verifying the store is connected to
// a remote first.
func newSyncEngine() (*gitsync.Engine, string, error) {
	client := newGitClient()

	if !client.IsRepo() || !client.HasRemote() {
		return nil, "", errors.NewUserError(
			errors.Newf("%s is not connected to a git remote", client.Dir()),
			"Run: myshorts sync init <remote-url>")
	}

	codec := shortcut.NewCodec(slog.Default())
	path := storePath()
	store := codec.Load(path)

	engine := gitsync.New(store, codec, client, path, slog.Default())
	return engine, path, nil
}
