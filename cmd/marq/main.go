// Package main is the entry point for the marq CLI.
package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/nikbrunner/marq/internal/cli"
	"github.com/nikbrunner/marq/internal/storage"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	if err := rootCmd.Execute(); err != nil {
		cli.Errorf("%v", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "marq",
	Short: "marq - bookmarks with collections, from the terminal",
	Long: `marq stores URL bookmarks organized into collections. Adding a
bookmark scrapes the page title as default metadata; collections are
picked through a fuzzy-searchable prompt.

Bookmarks live in ~/.config/marq/bookmarks.json (or bookmarks.db when a
SQLite database is present).`,
	Version: Version,
	// Show help when no subcommand is provided
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.SilenceUsage = true
	rootCmd.SilenceErrors = true

	rootCmd.SetVersionTemplate("marq version {{.Version}}\n")
}

// openStorage opens the configured backend and returns it with a cleanup
// func for backends that hold a connection.
func openStorage() (storage.Storage, func(), error) {
	st, err := storage.Open()
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		if c, ok := st.(io.Closer); ok {
			c.Close()
		}
	}
	return st, cleanup, nil
}

// loadConfig loads the app config from its default path.
func loadConfig() (*storage.Config, error) {
	path, err := storage.DefaultConfigFilePath()
	if err != nil {
		return nil, err
	}
	return storage.LoadConfig(path)
}
