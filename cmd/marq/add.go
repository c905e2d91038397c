package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/nikbrunner/marq/internal/cli"
	"github.com/nikbrunner/marq/internal/meta"
	"github.com/nikbrunner/marq/internal/ops"
	"github.com/nikbrunner/marq/internal/selector"
)

var addCmd = &cobra.Command{
	Use:   "add [url]",
	Short: "Add a bookmark",
	Long: `Add a bookmark to a collection.

The URL is prompted for when omitted. While you pick a collection, marq
fetches the page in the background and offers its title as the default;
a fetch that takes longer than the configured timeout falls back to a
manual title.

Examples:
  marq add https://go.dev
  marq add`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAdd,
}

func init() {
	rootCmd.AddCommand(addCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	st, cleanup, err := openStorage()
	if err != nil {
		return err
	}
	defer cleanup()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	var url string
	if len(args) == 1 {
		url = args[0]
	}

	added, err := ops.Add(ops.AddParams{
		Storage:  st,
		Provider: selector.NewTUI(),
		Fetcher:  meta.NewFetcher(cfg.FetchTimeout()),
		Config:   cfg,
		URL:      url,
	})
	if errors.Is(err, selector.ErrCancelled) {
		return nil
	}
	if err != nil {
		return err
	}

	cli.Successf("Added %q to %s", added.Title, added.Collection)
	return nil
}
