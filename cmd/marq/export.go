package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/nikbrunner/marq/internal/cli"
	"github.com/nikbrunner/marq/internal/exporter"
)

var exportCmd = &cobra.Command{
	Use:   "export [path]",
	Short: "Export bookmarks to Netscape HTML",
	Long: `Write all bookmarks as a browser-importable Netscape HTML file,
one folder per collection. Defaults to ~/Downloads/marq-export-<date>.html.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	outputPath := ""
	if len(args) == 1 {
		outputPath = args[0]
	}
	if outputPath == "" {
		var err error
		outputPath, err = exporter.DefaultExportPath()
		if err != nil {
			return err
		}
	}

	st, cleanup, err := openStorage()
	if err != nil {
		return err
	}
	defer cleanup()

	store, err := st.Load()
	if err != nil {
		return err
	}

	html := exporter.ExportHTML(store)

	if err := os.WriteFile(outputPath, []byte(html), 0644); err != nil {
		return err
	}

	cli.Successf("Exported %d bookmarks to %s", len(store.Bookmarks), outputPath)
	return nil
}
