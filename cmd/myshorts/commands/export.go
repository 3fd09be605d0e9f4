package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/jmwatte/myshorts/internal/errors"
	"github.com/jmwatte/myshorts/pkg/fileutil"
)

var (
	exportFormat string
	exportOutput string
)

func init() {
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "json",
		"output format: json, yaml, toml")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "",
		"write to file instead of stdout")
	rootCmd.AddCommand(exportCmd)
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the shortcut catalog",
	Long: `Export the full shortcut catalog, including command text.

Supported formats are json (the native document format), yaml and toml.
By default the export is written to stdout; use --output to write a file
atomically.

Examples:
  # Print as YAML
  myshorts export --format yaml

  # Write a TOML snapshot
  myshorts export --format toml -o shortcuts.toml`,
	RunE: runExport,
}

func runExport(_ *cobra.Command, _ []string) error {
	return runExportWithWriter(os.Stdout)
}

// runExportWithWriter allows injecting a writer for testing.
func runExportWithWriter(w io.Writer) error {
	store, _, _ := openStore()
	entries := store.Entries()

	if exportOutput != "" {
		return exportToFile(exportOutput, entries)
	}

	switch exportFormat {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	case "yaml":
		data, err := yaml.Marshal(entries)
		if err != nil {
			return errors.Wrap(err, "encoding YAML")
		}
		_, err = w.Write(data)
		return err
	case "toml":
		data, err := toml.Marshal(entries)
		if err != nil {
			return errors.Wrap(err, "encoding TOML")
		}
		_, err = w.Write(data)
		return err
	default:
		return errors.NewUserError(
			errors.Newf("unknown format %q", exportFormat),
			"Valid formats: json, yaml, toml")
	}
}

// exportToFile writes the export atomically to path.
func exportToFile(path string, entries any) error {
	var err error
	switch exportFormat {
	case "json":
		err = fileutil.AtomicWriteJSON(path, entries)
	case "yaml":
		err = fileutil.AtomicWriteYAML(path, entries)
	case "toml":
		err = fileutil.AtomicWriteTOML(path, entries)
	default:
		return errors.NewUserError(
			errors.Newf("unknown format %q", exportFormat),
			"Valid formats: json, yaml, toml")
	}
	if err != nil {
		return errors.Wrapf(err, "writing %s", path)
	}
	fmt.Printf("Exported to %s\n", path)
	return nil
}
