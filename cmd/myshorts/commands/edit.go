package commands

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jmwatte/myshorts/internal/editor"
	"github.com/jmwatte/myshorts/internal/errors"
	"github.com/jmwatte/myshorts/internal/paths"
)

func init() {
	rootCmd.AddCommand(editCmd)
}

var editCmd = &cobra.Command{
	Use:   "edit",
	Short: "Open the shortcut document in $EDITOR",
	Long: `Open the shortcut document in your default editor.

Uses the $EDITOR environment variable, falling back to $VISUAL, then
nano, then vi. The document is backed up first, so a botched edit can
be recovered from the backup directory.

Damaged records are skipped on the next load with a logged warning; run
'myshorts doctor' afterwards to verify the document still parses.`,
	RunE: runEdit,
}

func runEdit(_ *cobra.Command, _ []string) error {
	path := storePath()

	if err := paths.EnsureDir(filepath.Dir(path), 0); err != nil {
		return errors.Wrap(err, "creating store directory")
	}

	if _, err := newBackupManager().Backup(path); err != nil {
		return errors.Wrap(err, "backing up document")
	}

	fmt.Printf("Opening %s\n", path)
	return editor.Open(path)
}
