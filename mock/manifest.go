package mock

import (
	"context"

	"github.com/fwojciec/webgrab"
)

var _ webgrab.ManifestService = (*ManifestService)(nil)

// ManifestService is a mock implementation of webgrab.ManifestService.
type ManifestService struct {
	RecordFileFn func(ctx context.Context, record *webgrab.FileRecord) error
	FindFilesFn  func(ctx context.Context, filter webgrab.FileFilter) ([]*webgrab.FileRecord, error)
}

func (s *ManifestService) RecordFile(ctx context.Context, record *webgrab.FileRecord) error {
	return s.RecordFileFn(ctx, record)
}

func (s *ManifestService) FindFiles(ctx context.Context, filter webgrab.FileFilter) ([]*webgrab.FileRecord, error) {
	return s.FindFilesFn(ctx, filter)
}
