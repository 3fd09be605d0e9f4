package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var (
	listCategory string
	listJSON     bool
)

func init() {
	listCmd.Flags().StringVarP(&listCategory, "category", "c", "",
		"only list shortcuts in this category")
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List saved shortcuts",
	Long: `List saved shortcuts sorted by name.

Only the name, category and description are shown; use 'myshorts show'
to see a shortcut's command text.

Examples:
  # List everything
  myshorts list

  # List one category
  myshorts list -c k8s

  # Output as JSON
  myshorts list --json`,
	RunE: runList,
}

// listEntryJSON represents a shortcut in JSON output format.
type listEntryJSON struct {
	Name        string `json:"name"`
	Category    string `json:"category"`
	Description string `json:"description"`
}

func runList(_ *cobra.Command, _ []string) error {
	return runListWithWriter(os.Stdout)
}

// runListWithWriter allows injecting a writer for testing.
func runListWithWriter(w io.Writer) error {
	store, _, _ := openStore()
	infos := store.List(listCategory)

	if listJSON {
		out := make([]listEntryJSON, len(infos))
		for i, info := range infos {
			out[i] = listEntryJSON{
				Name:        info.Name,
				Category:    info.Category,
				Description: info.Description,
			}
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	if len(infos) == 0 {
		if listCategory != "" {
			fmt.Fprintf(w, "No shortcuts in category %q\n", listCategory)
		} else {
			fmt.Fprintln(w, "No shortcuts saved")
		}
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "%sNAME%s\t%sCATEGORY%s\t%sDESCRIPTION%s\n",
		colorBold, colorReset, colorBold, colorReset, colorBold, colorReset)
	for _, info := range infos {
		fmt.Fprintf(tw, "%s%s%s\t%s\t%s\n",
			colorGreen, info.Name, colorReset, info.Category, truncate(info.Description, 80))
	}
	return tw.Flush()
}
