package main

import (
	"fmt"

	"github.com/fwojciec/webgrab"
	"github.com/fwojciec/webgrab/crawl"
	"github.com/fwojciec/webgrab/fs"
	"github.com/fwojciec/webgrab/robotstxt"
)

// Run executes the crawl command.
func (c *CrawlCmd) Run(deps *Dependencies) error {
	job := &webgrab.Job{
		SeedURL:          c.URL,
		Extensions:       webgrab.ParseExtensionsWith(c.Extensions, deps.Presets),
		OutDir:           c.Out,
		MaxPages:         c.MaxPages,
		Delay:            c.Delay,
		Timeout:          c.Timeout,
		RespectRobots:    !c.NoRobots,
		DetectDuplicates: !c.NoDedup,
		SavePages:        c.SavePages,
	}
	if c.MaxDepth >= 0 {
		job.MaxDepth = &c.MaxDepth
	}

	if err := job.Validate(); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", webgrab.ErrorMessage(err))
		return err
	}

	deps.Crawler.Files = fs.NewFileStore(job.OutDir)
	if job.SavePages {
		deps.Crawler.Pages = fs.NewPageStore(job.OutDir)
	}

	if job.RespectRobots {
		policy, err := robotstxt.Load(deps.Ctx, deps.Crawler.Fetcher, job.SeedURL, webgrab.UserAgent)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "warning: robots.txt unavailable, crawling without restrictions (%v)\n", err)
		}
		deps.Crawler.Robots = policy
	}

	fmt.Fprintf(deps.Stdout, "Crawling %s\n", job.SeedURL)
	fmt.Fprintf(deps.Stdout, "  extensions: %s\n", webgrab.FormatExtensions(job.Extensions))
	fmt.Fprintf(deps.Stdout, "  output:     %s\n", job.OutDir)

	deps.Crawler.Progress = func(event crawl.ProgressEvent) {
		switch event.Type {
		case crawl.ProgressPage:
			fmt.Fprintf(deps.Stdout, "[PAGE %d/%d] %s\n", event.Page, event.MaxPages, event.URL)
		case crawl.ProgressPageSaved:
			fmt.Fprintf(deps.Stdout, "  [SAVED] %s\n", event.URL)
		case crawl.ProgressFileDownloaded:
			fmt.Fprintf(deps.Stdout, "  [DOWNLOADED] %s\n", event.Filename)
		case crawl.ProgressFileSkipped:
			fmt.Fprintf(deps.Stdout, "  [SKIP %s] %s\n", event.Reason, event.URL)
		case crawl.ProgressRobotsBlocked:
			fmt.Fprintf(deps.Stdout, "[ROBOTS] %s\n", event.URL)
		case crawl.ProgressError:
			fmt.Fprintf(deps.Stderr, "  [ERROR] %s: %v\n", event.URL, event.Err)
		case crawl.ProgressWarning:
			fmt.Fprintf(deps.Stderr, "  [WARN] %s: %v\n", event.URL, event.Err)
		}
	}

	stats, err := deps.Crawler.Run(deps.Ctx, job)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", webgrab.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "\nDone: %d pages crawled, %d files downloaded\n",
		stats.PagesCrawled, stats.FilesDownloaded)
	if stats.PagesSaved > 0 {
		fmt.Fprintf(deps.Stdout, "  %d pages archived\n", stats.PagesSaved)
	}
	if stats.DuplicatesSkipped > 0 {
		fmt.Fprintf(deps.Stdout, "  %d duplicates skipped\n", stats.DuplicatesSkipped)
	}
	if stats.RobotsBlocked > 0 {
		fmt.Fprintf(deps.Stdout, "  %d URLs blocked by robots.txt\n", stats.RobotsBlocked)
	}
	if stats.Errors > 0 {
		fmt.Fprintf(deps.Stdout, "  %d errors\n", stats.Errors)
		return fmt.Errorf("completed with %d errors", stats.Errors)
	}

	return nil
}
