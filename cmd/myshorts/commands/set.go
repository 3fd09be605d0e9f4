package commands

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jmwatte/myshorts/internal/errors"
	"github.com/jmwatte/myshorts/internal/shortcut"
)

var (
	setDescription string
	setCategory    string
)

func init() {
	setCmd.Flags().StringVarP(&setDescription, "description", "d", "",
		"describe what the shortcut does")
	setCmd.Flags().StringVarP(&setCategory, "category", "c", "",
		"category for grouping (default: General)")
	rootCmd.AddCommand(setCmd)
}

var setCmd = &cobra.Command{
	Use:   "set <name> <command>...",
	Short: "Create or overwrite a command shortcut",
	Long: `Create a command shortcut, overwriting any existing shortcut with
the same name.

Unlike 'myshorts add', no error is raised when the name already exists.

Examples:
  myshorts set deploy "kubectl rollout restart deploy/api" -c k8s`,
	Args: cobra.MinimumNArgs(2),
	RunE: runSet,
}

func runSet(_ *cobra.Command, args []string) error {
	return runSetWithWriter(os.Stdout, args)
}

// runSetWithWriter allows injecting a writer for testing.
func runSetWithWriter(w io.Writer, args []string) error {
	name := args[0]
	command := strings.Join(args[1:], " ")

	store, codec, path := openStore()

	existed := store.Has(name)

	entry := shortcut.Entry{
		Command:     command,
		Description: setDescription,
		Category:    setCategory,
	}
	if err := store.Set(name, entry); err != nil {
		return err
	}

	if err := codec.Save(store, path); err != nil {
		return errors.NewSystemError(err, "Check permissions on "+path)
	}

	if existed {
		fmt.Fprintf(w, "Updated %q\n", shortcut.NormalizeName(name))
	} else {
		fmt.Fprintf(w, "Added %q\n", shortcut.NormalizeName(name))
	}
	return nil
}
