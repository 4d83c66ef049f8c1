package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/webgrab"
)

// Ensure LoggingManifestService implements webgrab.ManifestService.
var _ webgrab.ManifestService = (*LoggingManifestService)(nil)

// LoggingManifestService wraps a ManifestService with debug logging.
type LoggingManifestService struct {
	next   webgrab.ManifestService
	logger *slog.Logger
}

// NewLoggingManifestService creates a new LoggingManifestService.
func NewLoggingManifestService(next webgrab.ManifestService, logger *slog.Logger) *LoggingManifestService {
	return &LoggingManifestService{next: next, logger: logger}
}

// RecordFile delegates to the wrapped service and logs the operation.
func (s *LoggingManifestService) RecordFile(ctx context.Context, record *webgrab.FileRecord) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("manifest record",
			"url", record.SourceURL,
			"filename", record.Filename,
			"size", record.Size,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.RecordFile(ctx, record)
}

// FindFiles delegates to the wrapped service and logs the operation.
func (s *LoggingManifestService) FindFiles(ctx context.Context, filter webgrab.FileFilter) (records []*webgrab.FileRecord, err error) {
	defer func(begin time.Time) {
		s.logger.Info("manifest find",
			"count", len(records),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindFiles(ctx, filter)
}
