package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/nikbrunner/marq/internal/cli"
	"github.com/nikbrunner/marq/internal/importer"
)

var importCmd = &cobra.Command{
	Use:   "import <file.html>",
	Short: "Import bookmarks from Netscape HTML",
	Long: `Import a browser bookmark export (Netscape HTML format).
Folder names become collections; URLs already in the store are skipped.`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	st, cleanup, err := openStorage()
	if err != nil {
		return err
	}
	defer cleanup()

	store, err := st.Load()
	if err != nil {
		return err
	}

	file, err := os.Open(args[0])
	if err != nil {
		return err
	}
	defer file.Close()

	bookmarks, err := importer.ParseHTMLBookmarks(file)
	if err != nil {
		return err
	}

	added, skipped := importer.Merge(store, bookmarks)

	if err := st.Save(store); err != nil {
		return err
	}

	if skipped > 0 {
		cli.Successf("Imported %d bookmarks (%d duplicates skipped)", added, skipped)
	} else {
		cli.Successf("Imported %d bookmarks", added)
	}
	return nil
}
