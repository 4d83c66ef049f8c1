package webgrab

import (
	"net/url"
	"time"
)

// Defaults applied by Job.Normalize when the corresponding field is zero.
const (
	DefaultOutDir   = "downloads"
	DefaultMaxPages = 200
	DefaultTimeout  = 15 * time.Second
)

// Job describes a single crawl run. It is immutable once the crawl starts.
type Job struct {
	// SeedURL is the page the crawl starts from. Its scheme+host define the
	// origin used for page classification.
	SeedURL string

	// Extensions is the allow-set for file downloads, lowercased and
	// dot-prefixed (".png"). An empty or nil set matches any extension.
	Extensions map[string]bool

	// OutDir is the directory downloaded files are written to.
	OutDir string

	// MaxPages caps the number of pages fetched.
	MaxPages int

	// MaxDepth caps the link distance from the seed. Nil means unlimited.
	MaxDepth *int

	// Timeout bounds each individual HTTP request.
	Timeout time.Duration

	// Delay is the politeness pause between consecutive page fetches.
	// File downloads are paced at half this delay. Zero disables pacing.
	Delay time.Duration

	// RespectRobots enables robots.txt compliance checking.
	RespectRobots bool

	// DetectDuplicates enables content-fingerprint deduplication of
	// downloaded files.
	DetectDuplicates bool

	// SavePages enables archiving of raw page bodies under OutDir.
	SavePages bool
}

// Validate returns an error if the job contains invalid fields.
func (j *Job) Validate() error {
	if j.SeedURL == "" {
		return Errorf(EINVALID, "seed URL required")
	}
	u, err := url.Parse(j.SeedURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return Errorf(EINVALID, "seed URL %q must be absolute", j.SeedURL)
	}
	if j.MaxPages < 0 {
		return Errorf(EINVALID, "max pages must not be negative")
	}
	if j.MaxDepth != nil && *j.MaxDepth < 0 {
		return Errorf(EINVALID, "max depth must not be negative")
	}
	return nil
}

// Normalize fills in defaults for unset fields.
func (j *Job) Normalize() {
	if j.OutDir == "" {
		j.OutDir = DefaultOutDir
	}
	if j.MaxPages == 0 {
		j.MaxPages = DefaultMaxPages
	}
	if j.Timeout == 0 {
		j.Timeout = DefaultTimeout
	}
}

// Stats holds the counters accumulated during a crawl. All fields are
// monotonically non-decreasing and are mutated only by the orchestrator.
type Stats struct {
	PagesCrawled      int
	FilesDownloaded   int
	PagesSaved        int
	Errors            int
	DuplicatesSkipped int
	RobotsBlocked     int
}
