package main

import (
	"errors"

	"github.com/cli/browser"
	"github.com/spf13/cobra"

	"github.com/nikbrunner/marq/internal/ops"
	"github.com/nikbrunner/marq/internal/selector"
)

var openCmd = &cobra.Command{
	Use:   "open",
	Short: "Open a bookmark in the browser",
	Long:  `Pick a collection, then a bookmark, and open it in the default browser.`,
	Args:  cobra.NoArgs,
	RunE:  runOpen,
}

func init() {
	rootCmd.AddCommand(openCmd)
}

func runOpen(cmd *cobra.Command, args []string) error {
	st, cleanup, err := openStorage()
	if err != nil {
		return err
	}
	defer cleanup()

	_, err = ops.Open(st, selector.NewTUI(), browser.OpenURL)
	if errors.Is(err, selector.ErrCancelled) {
		return nil
	}
	return err
}
