package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(categoriesCmd)
}

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List the distinct shortcut categories",
	Long: `List the distinct categories of the saved shortcuts, sorted by name.

Examples:
  myshorts categories`,
	RunE: runCategories,
}

func runCategories(_ *cobra.Command, _ []string) error {
	return runCategoriesWithWriter(os.Stdout)
}

// runCategoriesWithWriter allows injecting a writer for testing.
func runCategoriesWithWriter(w io.Writer) error {
	store, _, _ := openStore()

	cats := store.Categories()
	if len(cats) == 0 {
		fmt.Fprintln(w, "No shortcuts saved")
		return nil
	}

	for _, c := range cats {
		fmt.Fprintln(w, c)
	}
	return nil
}
