package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/nikbrunner/marq/internal/cli"
	"github.com/nikbrunner/marq/internal/ops"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all bookmarks as a tree",
	Long: `Print every bookmark grouped by collection as a tree diagram.
Titles render as clickable hyperlinks in terminals that support OSC 8.`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	st, cleanup, err := openStorage()
	if err != nil {
		return err
	}
	defer cleanup()

	isTerminal := cli.IsTerminal(os.Stdout)
	return ops.List(st, os.Stdout, cli.TreeOptions{
		Hyperlinks: isTerminal,
		Plain:      !isTerminal,
	})
}
