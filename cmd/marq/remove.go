package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/nikbrunner/marq/internal/cli"
	"github.com/nikbrunner/marq/internal/ops"
	"github.com/nikbrunner/marq/internal/selector"
)

var removeCmd = &cobra.Command{
	Use:   "remove",
	Short: "Remove a bookmark interactively",
	Long:  `Pick a collection, then a bookmark, and delete it.`,
	Args:  cobra.NoArgs,
	RunE:  runRemove,
}

func init() {
	rootCmd.AddCommand(removeCmd)
}

func runRemove(cmd *cobra.Command, args []string) error {
	st, cleanup, err := openStorage()
	if err != nil {
		return err
	}
	defer cleanup()

	removed, err := ops.Remove(st, selector.NewTUI())
	if errors.Is(err, selector.ErrCancelled) {
		return nil
	}
	if err != nil {
		return err
	}

	cli.Successf("Removed %q from %s", removed.Title, removed.Collection)
	return nil
}
