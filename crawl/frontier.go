package crawl

import (
	"strings"

	"github.com/fwojciec/webgrab"
	"github.com/fwojciec/webgrab/bloom"
)

// Frontier sizing for Bloom filter enqueue deduplication.
const (
	// frontierExpectedURLs is the expected number of URLs for Bloom filter sizing.
	frontierExpectedURLs = 10000
	// frontierFalsePositiveRate is the acceptable false positive rate for deduplication.
	frontierFalsePositiveRate = 0.01
)

// Compile-time interface verification.
var _ webgrab.Frontier = (*Frontier)(nil)

// Frontier is an in-memory FIFO crawl queue with Bloom filter enqueue
// deduplication. The engine is single-threaded, so the frontier is not
// safe for concurrent use.
type Frontier struct {
	seen  *bloom.Filter
	queue []webgrab.Entry
}

// NewFrontier creates an empty Frontier.
func NewFrontier() *Frontier {
	return &Frontier{
		seen: bloom.NewFilter(frontierExpectedURLs, frontierFalsePositiveRate),
	}
}

// Push adds an entry to the back of the queue.
// Returns false if the URL has already been enqueued. URL fragments are
// stripped first, so URLs differing only by fragment are duplicates.
func (f *Frontier) Push(entry webgrab.Entry) bool {
	if idx := strings.Index(entry.URL, "#"); idx != -1 {
		entry.URL = entry.URL[:idx]
	}

	if f.seen.Has(entry.URL) {
		return false
	}
	f.seen.Add(entry.URL)

	f.queue = append(f.queue, entry)
	return true
}

// Pop returns the next entry in FIFO order.
// The bool result is false if the frontier is empty.
func (f *Frontier) Pop() (webgrab.Entry, bool) {
	if len(f.queue) == 0 {
		return webgrab.Entry{}, false
	}
	entry := f.queue[0]
	f.queue = f.queue[1:]
	return entry, true
}

// Len returns the number of entries in the queue.
func (f *Frontier) Len() int {
	return len(f.queue)
}
