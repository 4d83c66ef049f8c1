package sqlite

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/fwojciec/webgrab"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ webgrab.ManifestService = (*ManifestService)(nil)

// ManifestService implements webgrab.ManifestService using SQLite.
type ManifestService struct {
	db *DB
}

// NewManifestService creates a new ManifestService.
func NewManifestService(db *DB) *ManifestService {
	return &ManifestService{db: db}
}

// RecordFile appends a download record to the manifest.
func (s *ManifestService) RecordFile(ctx context.Context, record *webgrab.FileRecord) error {
	if err := record.Validate(); err != nil {
		return err
	}

	record.ID = uuid.New().String()
	if record.FetchedAt.IsZero() {
		record.FetchedAt = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO files (id, crawl_id, source_url, filename, fingerprint, size, fetched_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, record.ID, record.CrawlID, record.SourceURL, record.Filename, record.Fingerprint,
		record.Size, record.FetchedAt.Format(time.RFC3339))

	return err
}

// FindFiles retrieves records matching the filter, newest first.
func (s *ManifestService) FindFiles(ctx context.Context, filter webgrab.FileFilter) ([]*webgrab.FileRecord, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, crawl_id, source_url, filename, fingerprint, size, fetched_at FROM files WHERE 1=1")

	if filter.CrawlID != nil {
		query.WriteString(" AND crawl_id = ?")
		args = append(args, *filter.CrawlID)
	}

	query.WriteString(" ORDER BY fetched_at DESC, id")

	if filter.Limit > 0 {
		query.WriteString(" LIMIT ?")
		args = append(args, filter.Limit)
	}
	if filter.Offset > 0 {
		query.WriteString(" OFFSET ?")
		args = append(args, filter.Offset)
	}

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*webgrab.FileRecord
	for rows.Next() {
		var record webgrab.FileRecord
		var fetchedAt string

		if err := rows.Scan(&record.ID, &record.CrawlID, &record.SourceURL, &record.Filename,
			&record.Fingerprint, &record.Size, &fetchedAt); err != nil {
			return nil, err
		}

		record.FetchedAt, err = time.Parse(time.RFC3339, fetchedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse fetched_at: %w", err)
		}

		records = append(records, &record)
	}

	return records, rows.Err()
}
