package main

import (
	"context"
	"io"
	"time"

	"github.com/fwojciec/webgrab"
	"github.com/fwojciec/webgrab/crawl"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdout   io.Writer
	Stderr   io.Writer
	Manifest webgrab.ManifestService
	Crawler  *crawl.Crawler
	Presets  map[string][]string
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	PresetsFile string `name:"presets-file" help:"Path to a YAML presets file" type:"path"`

	Crawl   CrawlCmd   `cmd:"" help:"Crawl a site and download matching files"`
	Presets PresetsCmd `cmd:"" help:"List extension presets"`
	History HistoryCmd `cmd:"" help:"Show previously downloaded files"`
}

// CrawlCmd is the "crawl" subcommand.
type CrawlCmd struct {
	URL        string        `arg:"" help:"Seed URL to start crawling from"`
	Extensions string        `short:"e" help:"Comma-separated extensions or preset names (default: archives,images)"`
	Out        string        `short:"o" default:"downloads" help:"Output directory"`
	MaxPages   int           `short:"m" default:"200" help:"Maximum number of pages to crawl"`
	MaxDepth   int           `short:"d" default:"-1" help:"Maximum link depth from the seed (-1 for unlimited)"`
	Delay      time.Duration `default:"1s" help:"Delay between page requests"`
	Timeout    time.Duration `short:"t" default:"15s" help:"Per-request timeout"`
	NoRobots   bool          `help:"Ignore robots.txt"`
	NoDedup    bool          `help:"Keep files with identical content"`
	SavePages  bool          `help:"Archive raw page HTML under <out>/html"`
	Verbose    bool          `short:"v" help:"Log every HTTP request"`
}

// PresetsCmd is the "presets" subcommand.
type PresetsCmd struct{}

// HistoryCmd is the "history" subcommand.
type HistoryCmd struct {
	CrawlID string `help:"Show files from one crawl only"`
	Limit   int    `default:"20" help:"Maximum number of records to show"`
}
