package commands

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/ktr0731/go-fuzzyfinder"
	"github.com/spf13/cobra"

	"github.com/jmwatte/myshorts/internal/errors"
	"github.com/jmwatte/myshorts/internal/runner"
	"github.com/jmwatte/myshorts/internal/shortcut"
)

var runRunner string

func init() {
	runCmd.Flags().StringVar(&runRunner, "runner", "",
		"evaluator for the command text: shell, lua (default: from config)")
	rootCmd.AddCommand(runCmd)
}

var runCmd = &cobra.Command{
	Use:   "run [name]",
	Short: "Run a saved shortcut",
	Long: `Run the command stored under the given shortcut name.

Without a name, an interactive fuzzy picker is opened over all saved
shortcuts. Running a name that does not exist is not an error; a warning
is printed and nothing is executed.

The command text is evaluated by the configured runner (shell by
default). The lua runner evaluates the text as a Lua chunk in a fresh
interpreter state.

Examples:
  # Run by name
  myshorts run deploy

  # Pick interactively
  myshorts run

  # Evaluate as Lua
  myshorts run stats --runner lua`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRun,
}

func runRun(_ *cobra.Command, args []string) error {
	return runRunWithWriter(os.Stdout, args)
}

// runRunWithWriter allows injecting a writer for testing.
func runRunWithWriter(w io.Writer, args []string) error {
	store, _, _ := openStore()

	var name string
	if len(args) == 1 {
		name = args[0]
	} else {
		picked, ok, err := pickShortcut(store)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		name = picked
	}

	entry, err := store.Get(name)
	if err != nil {
		// Running an unknown name is a no-op, not a failure
		slog.Warn("shortcut not found", "name", name)
		fmt.Fprintf(w, "No shortcut named %q\n", shortcut.NormalizeName(name))
		return nil
	}

	r, err := newRunner()
	if err != nil {
		return errors.NewConfigError(err)
	}

	slog.Debug("running shortcut", "name", name, "runner", resolveRunnerKind())
	if err := r.Run(entry.Command); err != nil {
		return errors.Wrapf(err, "shortcut %q failed", shortcut.NormalizeName(name))
	}
	return nil
}

// pickShortcut opens a fuzzy picker over all saved shortcuts. ok is false
// when there is nothing to pick or the user aborted.
func pickShortcut(store *shortcut.Store) (name string, ok bool, err error) {
	infos := store.List("")
	if len(infos) == 0 {
		fmt.Println("No shortcuts saved")
		return "", false, nil
	}

	idx, err := fuzzyfinder.Find(
		infos,
		func(i int) string {
			if infos[i].Description == "" {
				return infos[i].Name
			}
			return fmt.Sprintf("%s - %s", infos[i].Name, infos[i].Description)
		},
		fuzzyfinder.WithPreviewWindow(func(i, w, h int) string {
			if i == -1 {
				return ""
			}
			entry, err := store.Get(infos[i].Name)
			if err != nil {
				return ""
			}
			return fmt.Sprintf("Name: %s\nCategory: %s\n\n%s",
				infos[i].Name,
				infos[i].Category,
				entry.Command,
			)
		}),
	)
	if err != nil {
		if errors.Is(err, fuzzyfinder.ErrAbort) {
			return "", false, nil
		}
		return "", false, errors.Wrap(err, "interactive selection failed")
	}

	return infos[idx].Name, true, nil
}

// resolveRunnerKind returns the runner kind: flag over config over default.
func resolveRunnerKind() string {
	if runRunner != "" {
		return runRunner
	}
	return activeConfig().Runner
}

// newRunner builds the configured runner.
func newRunner() (runner.Runner, error) {
	kind := resolveRunnerKind()
	r, err := runner.New(kind)
	if err != nil {
		return nil, err
	}

	if sh, isShell := r.(*runner.Shell); isShell {
		conf := activeConfig()
		sh.Path = conf.Shell
		sh.EnvFile = conf.EnvFile
	}
	return r, nil
}
