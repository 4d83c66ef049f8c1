package crawl

import (
	"context"
	"net/url"
	"strings"

	"github.com/fwojciec/webgrab"
)

// Status describes the outcome of a download attempt.
type Status int

const (
	StatusDownloaded Status = iota
	StatusSkipped
	StatusFailed
)

// SkipReason explains a StatusSkipped outcome.
type SkipReason string

const (
	// SkipNoFilename means the URL path has no basename to store under.
	SkipNoFilename SkipReason = "no_filename"

	// SkipExists means a file with the same basename is already in the
	// store. This is checked before fetching, so no network call is made.
	SkipExists SkipReason = "exists"

	// SkipDuplicate means the content fingerprint was already registered.
	SkipDuplicate SkipReason = "duplicate"
)

// Outcome is the result of a single download attempt.
type Outcome struct {
	Status      Status
	Reason      SkipReason
	Filename    string
	Size        int64
	Fingerprint string
	Err         error
}

// Downloader fetches file URLs and persists them to a FileStore.
type Downloader struct {
	Fetcher webgrab.Fetcher
	Store   webgrab.FileStore

	// Dedup, when non-nil, skips files whose content fingerprint has been
	// seen before. Nil disables duplicate detection entirely.
	Dedup *Fingerprints
}

// Download fetches rawURL and writes the bytes to the store under the URL's
// basename. The exists check runs before any network fetch; the duplicate
// check runs after, since content must be read to fingerprint it. Distinct
// URLs sharing a basename collide on the exists check; that is a property
// of basename storage, not of fingerprinting.
func (d *Downloader) Download(ctx context.Context, rawURL string) Outcome {
	u, err := url.Parse(rawURL)
	if err != nil {
		return Outcome{Status: StatusFailed, Err: err}
	}

	name := basename(u.Path)
	if name == "" {
		return Outcome{Status: StatusSkipped, Reason: SkipNoFilename}
	}

	if d.Store.Exists(name) {
		return Outcome{Status: StatusSkipped, Reason: SkipExists, Filename: name}
	}

	data, err := d.Fetcher.Fetch(ctx, rawURL)
	if err != nil {
		return Outcome{Status: StatusFailed, Filename: name, Err: err}
	}

	fp := Fingerprint(data)
	if d.Dedup != nil && !d.Dedup.Register(data) {
		return Outcome{Status: StatusSkipped, Reason: SkipDuplicate, Filename: name, Fingerprint: fp}
	}

	if err := d.Store.Write(name, data); err != nil {
		return Outcome{Status: StatusFailed, Filename: name, Err: err}
	}

	return Outcome{
		Status:      StatusDownloaded,
		Filename:    name,
		Size:        int64(len(data)),
		Fingerprint: fp,
	}
}

// basename returns the final segment of a URL path, or "" for directory
// and empty paths.
func basename(p string) string {
	return p[strings.LastIndex(p, "/")+1:]
}
