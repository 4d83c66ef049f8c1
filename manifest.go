package webgrab

import (
	"context"
	"time"
)

// FileRecord describes one downloaded file in the crawl manifest.
type FileRecord struct {
	ID          string    `json:"id"`
	CrawlID     string    `json:"crawlId"`
	SourceURL   string    `json:"sourceUrl"`
	Filename    string    `json:"filename"`
	Fingerprint string    `json:"fingerprint"`
	Size        int64     `json:"size"`
	FetchedAt   time.Time `json:"fetchedAt"`
}

// Validate returns an error if the record contains invalid fields.
func (r *FileRecord) Validate() error {
	if r.CrawlID == "" {
		return Errorf(EINVALID, "file record crawl ID required")
	}
	if r.SourceURL == "" {
		return Errorf(EINVALID, "file record source URL required")
	}
	if r.Filename == "" {
		return Errorf(EINVALID, "file record filename required")
	}
	return nil
}

// FileFilter represents a filter for FindFiles.
type FileFilter struct {
	CrawlID *string `json:"crawlId"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// ManifestService records what a crawl downloaded. The manifest is
// write-only during a crawl; the engine never consults it.
type ManifestService interface {
	// RecordFile appends a download record to the manifest.
	RecordFile(ctx context.Context, record *FileRecord) error

	// FindFiles retrieves records matching the filter, newest first.
	FindFiles(ctx context.Context, filter FileFilter) ([]*FileRecord, error)
}
