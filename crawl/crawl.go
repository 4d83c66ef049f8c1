// Package crawl provides the crawl engine: frontier management, link
// classification, robots compliance, duplicate detection, and the
// download/save pipeline.
package crawl

import (
	"context"
	"net/url"

	"github.com/fwojciec/webgrab"
)

// Crawler orchestrates a breadth-first crawl of a single site. It owns the
// frontier, the visited set, and the crawl statistics; collaborators are
// injected as interfaces.
type Crawler struct {
	Fetcher webgrab.Fetcher
	Links   webgrab.LinkExtractor

	// Robots is consulted when the job enables robots compliance.
	// Nil allows everything.
	Robots webgrab.RobotsPolicy

	// Files receives downloaded file bytes.
	Files webgrab.FileStore

	// Pages receives raw page bodies when the job enables page saving.
	Pages webgrab.PageStore

	// Manifest, when non-nil, records every downloaded file under CrawlID.
	Manifest webgrab.ManifestService
	CrawlID  string

	// Progress, when non-nil, receives events as the crawl proceeds.
	Progress ProgressFunc
}

// Run drives the crawl loop until the frontier empties, the page budget is
// reached, or the context is canceled. Cancellation is not an error: the
// statistics accumulated so far are returned. No condition inside the loop
// is fatal.
func (c *Crawler) Run(ctx context.Context, job *webgrab.Job) (*webgrab.Stats, error) {
	if err := job.Validate(); err != nil {
		return nil, err
	}
	job.Normalize()

	// Validate guarantees the seed URL parses.
	seed, _ := url.Parse(job.SeedURL)

	stats := &webgrab.Stats{}
	visited := make(map[string]bool)
	pacer := NewPacer(job.Delay)

	var dedup *Fingerprints
	if job.DetectDuplicates {
		dedup = NewFingerprints()
	}
	downloader := &Downloader{Fetcher: c.Fetcher, Store: c.Files, Dedup: dedup}

	frontier := NewFrontier()
	frontier.Push(webgrab.Entry{URL: job.SeedURL, Depth: 0})

	for stats.PagesCrawled < job.MaxPages && ctx.Err() == nil {
		entry, ok := frontier.Pop()
		if !ok {
			break
		}

		if visited[entry.URL] {
			continue
		}
		if job.MaxDepth != nil && entry.Depth > *job.MaxDepth {
			continue
		}
		if job.RespectRobots && c.Robots != nil && !c.Robots.CanFetch(entry.URL) {
			stats.RobotsBlocked++
			c.emit(ProgressEvent{Type: ProgressRobotsBlocked, URL: entry.URL})
			continue
		}

		visited[entry.URL] = true
		stats.PagesCrawled++
		c.emit(ProgressEvent{
			Type:     ProgressPage,
			URL:      entry.URL,
			Page:     stats.PagesCrawled,
			MaxPages: job.MaxPages,
			Depth:    entry.Depth,
		})

		if err := pacer.WaitPage(ctx); err != nil {
			break
		}

		body, err := c.Fetcher.Fetch(ctx, entry.URL)
		if err != nil {
			stats.Errors++
			c.emit(ProgressEvent{Type: ProgressError, URL: entry.URL, Err: err})
			continue
		}

		if job.SavePages && c.Pages != nil {
			c.savePage(entry.URL, body, stats)
		}

		links, err := c.Links.ExtractLinks(body, entry.URL)
		if err != nil {
			stats.Errors++
			c.emit(ProgressEvent{Type: ProgressError, URL: entry.URL, Err: err})
			continue
		}

		// Partition links file-first. The extractor deduplicates within a
		// page, so the file batch needs no further URL dedup.
		var files []string
		for _, link := range links {
			switch Classify(link, seed, job.Extensions) {
			case KindFile:
				files = append(files, link)
			case KindPage:
				if visited[link] {
					continue
				}
				depth := entry.Depth + 1
				if job.MaxDepth != nil && depth > *job.MaxDepth {
					continue
				}
				frontier.Push(webgrab.Entry{URL: link, Depth: depth})
			}
		}

		for _, fileURL := range files {
			if err := pacer.WaitFile(ctx); err != nil {
				break
			}
			c.downloadFile(ctx, downloader, fileURL, stats)
		}
	}

	c.emit(ProgressEvent{Type: ProgressFinished})
	return stats, nil
}

// savePage archives a raw page body. Save errors are warnings: they do not
// count as crawl errors and never stop the crawl.
func (c *Crawler) savePage(pageURL string, body []byte, stats *webgrab.Stats) {
	saved, err := c.Pages.Save(pageURL, body)
	if err != nil {
		c.emit(ProgressEvent{Type: ProgressWarning, URL: pageURL, Err: err})
		return
	}
	if saved {
		stats.PagesSaved++
		c.emit(ProgressEvent{Type: ProgressPageSaved, URL: pageURL})
	}
}

// downloadFile runs one download and folds its outcome into the stats.
func (c *Crawler) downloadFile(ctx context.Context, d *Downloader, fileURL string, stats *webgrab.Stats) {
	outcome := d.Download(ctx, fileURL)
	switch outcome.Status {
	case StatusDownloaded:
		stats.FilesDownloaded++
		c.emit(ProgressEvent{Type: ProgressFileDownloaded, URL: fileURL, Filename: outcome.Filename})
		c.recordFile(ctx, fileURL, outcome)
	case StatusSkipped:
		if outcome.Reason == SkipDuplicate {
			stats.DuplicatesSkipped++
		}
		c.emit(ProgressEvent{
			Type:     ProgressFileSkipped,
			URL:      fileURL,
			Filename: outcome.Filename,
			Reason:   outcome.Reason,
		})
	case StatusFailed:
		stats.Errors++
		c.emit(ProgressEvent{Type: ProgressError, URL: fileURL, Filename: outcome.Filename, Err: outcome.Err})
	}
}

// recordFile appends a manifest record for a downloaded file. Manifest
// failures are warnings; the file is already on disk.
func (c *Crawler) recordFile(ctx context.Context, fileURL string, outcome Outcome) {
	if c.Manifest == nil {
		return
	}
	record := &webgrab.FileRecord{
		CrawlID:     c.CrawlID,
		SourceURL:   fileURL,
		Filename:    outcome.Filename,
		Fingerprint: outcome.Fingerprint,
		Size:        outcome.Size,
	}
	if err := c.Manifest.RecordFile(ctx, record); err != nil {
		c.emit(ProgressEvent{Type: ProgressWarning, URL: fileURL, Err: err})
	}
}

func (c *Crawler) emit(event ProgressEvent) {
	if c.Progress != nil {
		c.Progress(event)
	}
}
