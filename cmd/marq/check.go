package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/nikbrunner/marq/internal/checker"
	"github.com/nikbrunner/marq/internal/cli"
)

var (
	checkConcurrency int
	checkTimeout     time.Duration
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check all bookmarks for dead links",
	Long: `Probe every bookmark URL concurrently and report dead or
unreachable ones. Domains listed under checkExcludeDomains in the config
are never reported dead on a 404, since that usually means a private
page behind auth.`,
	Args: cobra.NoArgs,
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().IntVar(&checkConcurrency, "concurrency", 8, "number of parallel probes")
	checkCmd.Flags().DurationVar(&checkTimeout, "timeout", 10*time.Second, "per-URL timeout")

	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	st, cleanup, err := openStorage()
	if err != nil {
		return err
	}
	defer cleanup()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	store, err := st.Load()
	if err != nil {
		return err
	}

	if len(store.Bookmarks) == 0 {
		fmt.Println("No bookmarks to check.")
		return nil
	}

	results := checker.CheckURLs(store.Bookmarks, checkConcurrency, checkTimeout, cfg.CheckExcludeDomains, func(completed, total int) {
		fmt.Printf("\rChecking %d/%d...", completed, total)
	})
	fmt.Print("\r")

	var healthy, dead, unreachable int
	for _, r := range results {
		switch r.Status {
		case checker.Healthy:
			healthy++
		case checker.Dead:
			dead++
			cli.Errorf("dead (%d): %s [%s]", r.StatusCode, r.Bookmark.URL, r.Bookmark.Collection)
		case checker.Unreachable:
			unreachable++
			fmt.Printf("unreachable: %s (%s)\n", r.Bookmark.URL, r.Error)
		}
	}

	cli.Successf("Checked %d bookmarks: %d healthy, %d dead, %d unreachable",
		len(results), healthy, dead, unreachable)
	return nil
}
