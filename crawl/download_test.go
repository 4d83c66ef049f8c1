package crawl_test

import (
	"context"
	"errors"
	"testing"

	"github.com/fwojciec/webgrab/crawl"
	"github.com/fwojciec/webgrab/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDownloader_Download(t *testing.T) {
	t.Parallel()

	t.Run("fetches and writes under the URL basename", func(t *testing.T) {
		t.Parallel()

		var wroteName string
		var wroteData []byte
		d := &crawl.Downloader{
			Fetcher: &mock.Fetcher{
				FetchFn: func(_ context.Context, url string) ([]byte, error) {
					return []byte("pdf bytes"), nil
				},
			},
			Store: &mock.FileStore{
				ExistsFn: func(string) bool { return false },
				WriteFn: func(name string, data []byte) error {
					wroteName, wroteData = name, data
					return nil
				},
			},
		}

		outcome := d.Download(context.Background(), "https://a.example/docs/report.pdf")

		assert.Equal(t, crawl.StatusDownloaded, outcome.Status)
		assert.Equal(t, "report.pdf", outcome.Filename)
		assert.Equal(t, int64(len("pdf bytes")), outcome.Size)
		assert.NotEmpty(t, outcome.Fingerprint)
		assert.Equal(t, "report.pdf", wroteName)
		assert.Equal(t, []byte("pdf bytes"), wroteData)
	})

	t.Run("skips URL without a basename", func(t *testing.T) {
		t.Parallel()

		d := &crawl.Downloader{
			Fetcher: &mock.Fetcher{FetchFn: func(_ context.Context, _ string) ([]byte, error) {
				t.Fatal("no fetch expected")
				return nil, nil
			}},
			Store: &mock.FileStore{ExistsFn: func(string) bool { return false }},
		}

		outcome := d.Download(context.Background(), "https://a.example/docs/")

		assert.Equal(t, crawl.StatusSkipped, outcome.Status)
		assert.Equal(t, crawl.SkipNoFilename, outcome.Reason)
	})

	t.Run("existing file short-circuits before any network call", func(t *testing.T) {
		t.Parallel()

		d := &crawl.Downloader{
			Fetcher: &mock.Fetcher{FetchFn: func(_ context.Context, _ string) ([]byte, error) {
				t.Fatal("no fetch expected for an existing file")
				return nil, nil
			}},
			Store: &mock.FileStore{ExistsFn: func(name string) bool { return name == "report.pdf" }},
		}

		outcome := d.Download(context.Background(), "https://a.example/other/report.pdf")

		assert.Equal(t, crawl.StatusSkipped, outcome.Status)
		assert.Equal(t, crawl.SkipExists, outcome.Reason)
		assert.Equal(t, "report.pdf", outcome.Filename)
	})

	t.Run("skips byte-identical content when dedup is enabled", func(t *testing.T) {
		t.Parallel()

		var writes int
		d := &crawl.Downloader{
			Fetcher: &mock.Fetcher{
				FetchFn: func(_ context.Context, _ string) ([]byte, error) {
					return []byte("same bytes"), nil
				},
			},
			Store: &mock.FileStore{
				ExistsFn: func(string) bool { return false },
				WriteFn:  func(string, []byte) error { writes++; return nil },
			},
			Dedup: crawl.NewFingerprints(),
		}

		first := d.Download(context.Background(), "https://a.example/a.bin")
		second := d.Download(context.Background(), "https://a.example/b.bin")

		assert.Equal(t, crawl.StatusDownloaded, first.Status)
		assert.Equal(t, crawl.StatusSkipped, second.Status)
		assert.Equal(t, crawl.SkipDuplicate, second.Reason)
		assert.Equal(t, 1, writes, "only the first copy is written")
	})

	t.Run("without dedup identical content is written twice", func(t *testing.T) {
		t.Parallel()

		var writes int
		d := &crawl.Downloader{
			Fetcher: &mock.Fetcher{
				FetchFn: func(_ context.Context, _ string) ([]byte, error) {
					return []byte("same bytes"), nil
				},
			},
			Store: &mock.FileStore{
				ExistsFn: func(string) bool { return false },
				WriteFn:  func(string, []byte) error { writes++; return nil },
			},
		}

		first := d.Download(context.Background(), "https://a.example/a.bin")
		second := d.Download(context.Background(), "https://a.example/b.bin")

		assert.Equal(t, crawl.StatusDownloaded, first.Status)
		assert.Equal(t, crawl.StatusDownloaded, second.Status)
		assert.Equal(t, 2, writes)
	})

	t.Run("fetch failure is reported with the cause", func(t *testing.T) {
		t.Parallel()

		cause := errors.New("HTTP 500")
		d := &crawl.Downloader{
			Fetcher: &mock.Fetcher{
				FetchFn: func(_ context.Context, _ string) ([]byte, error) { return nil, cause },
			},
			Store: &mock.FileStore{ExistsFn: func(string) bool { return false }},
		}

		outcome := d.Download(context.Background(), "https://a.example/a.bin")

		assert.Equal(t, crawl.StatusFailed, outcome.Status)
		require.ErrorIs(t, outcome.Err, cause)
	})

	t.Run("write failure is reported with the cause", func(t *testing.T) {
		t.Parallel()

		cause := errors.New("disk full")
		d := &crawl.Downloader{
			Fetcher: &mock.Fetcher{
				FetchFn: func(_ context.Context, _ string) ([]byte, error) { return []byte("x"), nil },
			},
			Store: &mock.FileStore{
				ExistsFn: func(string) bool { return false },
				WriteFn:  func(string, []byte) error { return cause },
			},
		}

		outcome := d.Download(context.Background(), "https://a.example/a.bin")

		assert.Equal(t, crawl.StatusFailed, outcome.Status)
		require.ErrorIs(t, outcome.Err, cause)
	})
}
