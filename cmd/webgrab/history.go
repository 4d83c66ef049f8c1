package main

import (
	"fmt"
	"time"

	"github.com/fwojciec/webgrab"
)

// Run executes the history command.
func (c *HistoryCmd) Run(deps *Dependencies) error {
	filter := webgrab.FileFilter{Limit: c.Limit}
	if c.CrawlID != "" {
		filter.CrawlID = &c.CrawlID
	}

	records, err := deps.Manifest.FindFiles(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", webgrab.ErrorMessage(err))
		return err
	}

	if len(records) == 0 {
		fmt.Fprintln(deps.Stdout, "No downloads recorded yet.")
		return nil
	}

	for _, r := range records {
		fmt.Fprintf(deps.Stdout, "%s  %8d  %-30s  %s\n",
			r.FetchedAt.Format(time.DateTime), r.Size, r.Filename, r.SourceURL)
	}

	return nil
}
