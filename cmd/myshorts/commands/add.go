package commands

import (
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
	addDescription string
	addCategory    string
)

func init() {
	addCmd.Flags().StringVarP(&addDescription, "description", "d", "",
		"describe what the shortcut does")
	addCmd.Flags().StringVarP(&addCategory, "category", "c", "",
		"category for grouping (default: General)")
	rootCmd.AddCommand(addCmd)
}

var addCmd = &cobra.Command{
	Use:   "add <name> <command>...",
	Short: "Save a new command shortcut",
	Long: `Save a new command shortcut under a memorable name.

The command may be given as a single quoted argument or as remaining
arguments, which are joined with spaces. Adding a name that already
exists never overwrites; a warning is printed and the existing shortcut
is kept. Use 'myshorts set' to overwrite.

Examples:
  # Quoted command
  myshorts add deploy "kubectl rollout restart deploy/api" -c k8s

  # With a description
  myshorts add logs "journalctl -u api -f" -d "Tail the api service"`,
	Args: cobra.MinimumNArgs(2),
	RunE: runAdd,
}

func runAdd(_ *cobra.Command, args []string) error {
	return runAddWithWriter(os.Stdout, args)
}

// runAddWithWriter allows injecting a writer for testing.
func runAddWithWriter(w io.Writer, args []string) error {
	name := args[0]
	command := strings.Join(args[1:], " ")

	store, codec, path := openStore()

	entry := shortcut.Entry{
		Command:     command,
		Description: addDescription,
		Category:    addCategory,
	}
	if err := store.Add(name, entry); err != nil {
		if errors.Is(err, errors.ErrExists) {
			// Duplicates are reported, never overwritten, and not fatal
			slog.Warn("shortcut already exists", "name", shortcut.NormalizeName(name))
			fmt.Fprintf(w, "Shortcut %q already exists; run 'myshorts set' to overwrite\n",
				shortcut.NormalizeName(name))
			return nil
		}
		return err
	}

	if err := codec.Save(store, path); err != nil {
		return errors.NewSystemError(err, "Check permissions on "+path)
	}

	fmt.Fprintf(w, "Added %q\n", shortcut.NormalizeName(name))
	return nil
}
