package webgrab

// Entry is a pending crawl target: a URL and its link distance from the seed.
type Entry struct {
	URL   string
	Depth int
}

// Frontier manages the queue of pending crawl entries with enqueue
// deduplication.
type Frontier interface {
	// Push adds an entry to the queue.
	// Returns false if the URL has already been enqueued.
	Push(entry Entry) bool

	// Pop returns the next entry in FIFO order.
	// The bool result is false if the frontier is empty.
	Pop() (Entry, bool)

	// Len returns the number of entries in the queue.
	Len() int
}
