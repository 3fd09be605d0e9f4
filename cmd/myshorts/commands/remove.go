package commands

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jmwatte/myshorts/internal/errors"
	"github.com/jmwatte/myshorts/internal/shortcut"
)

var (
	removeForce  bool
	removeDryRun bool
)

func init() {
	removeCmd.Flags().BoolVar(&removeForce, "force", false, "Skip confirmation prompt")
	removeCmd.Flags().BoolVar(&removeDryRun, "dry-run", false,
		"Show what would be removed without changing anything")
	rootCmd.AddCommand(removeCmd)
}

var removeCmd = &cobra.Command{
	Use:     "remove <name>",
	Aliases: []string{"rm"},
	Short:   "Remove a command shortcut",
	Long: `Remove a command shortcut from the catalog.

A confirmation prompt is shown before removal unless --force is specified.
With --dry-run, the shortcut that would be removed is shown and nothing
is changed.

The document is backed up before the removal is persisted.

Examples:
  # Remove with confirmation
  myshorts remove deploy

  # Remove without confirmation
  myshorts remove deploy --force

  # Preview only
  myshorts remove deploy --dry-run`,
	Args: cobra.ExactArgs(1),
	RunE: runRemove,
}

func runRemove(_ *cobra.Command, args []string) error {
	return runRemoveWithIO(args, os.Stdout, os.Stdin)
}

// runRemoveWithIO allows injecting writers for testing.
func runRemoveWithIO(args []string, w io.Writer, r io.Reader) error {
	name := args[0]

	store, codec, path := openStore()

	entry, err := store.Get(name)
	if err != nil {
		// Removing an unknown name is a no-op, not a failure
		slog.Warn("shortcut not found", "name", shortcut.NormalizeName(name))
		fmt.Fprintf(w, "No shortcut named %q\n", shortcut.NormalizeName(name))
		return nil
	}

	if removeDryRun {
		fmt.Fprintf(w, "Would remove %q:\n", name)
		fmt.Fprintf(w, "  command:  %s\n", entry.Command)
		if entry.Description != "" {
			fmt.Fprintf(w, "  describe: %s\n", entry.Description)
		}
		fmt.Fprintf(w, "  category: %s\n", entry.Category)
		return nil
	}

	if !removeForce {
		if !confirmRemoval(w, r, name, entry.Command) {
			fmt.Fprintln(w, "Removal cancelled")
			return nil
		}
	}

	if _, err := newBackupManager().Backup(path); err != nil {
		return errors.Wrap(err, "backing up document")
	}

	if err := store.Remove(name); err != nil {
		return err
	}
	if err := codec.Save(store, path); err != nil {
		return errors.NewSystemError(err, "Check permissions on "+path)
	}

	fmt.Fprintf(w, "Removed %q\n", name)
	return nil
}

// confirmRemoval prompts the user to confirm shortcut removal.
// Returns true only if the user enters "y" or "yes" (case-insensitive).
func confirmRemoval(w io.Writer, r io.Reader, name, command string) bool {
	fmt.Fprintf(w, "Remove shortcut %q?\n", name)
	fmt.Fprintf(w, "  command: %s\n", truncate(command, 80))
	fmt.Fprint(w, "Continue? [y/N]: ")

	reader := bufio.NewReader(r)
	response, err := reader.ReadString('\n')
	if err != nil {
		return false
	}

	response = strings.TrimSpace(strings.ToLower(response))
	return response == "y" || response == "yes"
}
