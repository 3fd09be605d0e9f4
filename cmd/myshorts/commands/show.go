package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/jmwatte/myshorts/internal/errors"
)

var showJSON bool

func init() {
	showCmd.Flags().BoolVar(&showJSON, "json", false, "Output as JSON")
	rootCmd.AddCommand(showCmd)
}

var showCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Display a shortcut including its command text",
	Long: `Display a shortcut's full details, including the stored command text.

Examples:
  myshorts show deploy
  myshorts show deploy --json`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

// showEntryJSON represents a shortcut in JSON output format.
type showEntryJSON struct {
	Name        string `json:"name"`
	Command     string `json:"command"`
	Category    string `json:"category"`
	Description string `json:"description"`
}

func runShow(_ *cobra.Command, args []string) error {
	return runShowWithWriter(os.Stdout, args)
}

// runShowWithWriter allows injecting a writer for testing.
func runShowWithWriter(w io.Writer, args []string) error {
	name := args[0]

	store, _, _ := openStore()
	entry, err := store.Get(name)
	if err != nil {
		return errors.NewUserError(err, "Run: myshorts list to see saved shortcuts")
	}

	if showJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(showEntryJSON{
			Name:        name,
			Command:     entry.Command,
			Category:    entry.Category,
			Description: entry.Description,
		})
	}

	fmt.Fprintf(w, "%s%s%s\n", colorBold, name, colorReset)
	fmt.Fprintf(w, "  category: %s\n", entry.Category)
	if entry.Description != "" {
		fmt.Fprintf(w, "  describe: %s\n", entry.Description)
	}
	fmt.Fprintf(w, "  command:  %s\n", entry.Command)
	return nil
}
