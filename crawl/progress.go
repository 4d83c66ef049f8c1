package crawl

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	// ProgressPage reports a page being counted against the budget, before
	// its fetch.
	ProgressPage ProgressType = iota

	// ProgressPageSaved reports a raw page body written to the archive.
	ProgressPageSaved

	// ProgressFileDownloaded reports a file written to the store.
	ProgressFileDownloaded

	// ProgressFileSkipped reports a file skipped with a reason.
	ProgressFileSkipped

	// ProgressRobotsBlocked reports a frontier entry the robots policy
	// denied.
	ProgressRobotsBlocked

	// ProgressError reports a page or file error the crawl recovered from.
	ProgressError

	// ProgressWarning reports a non-counting problem, such as a failed
	// page save or manifest write.
	ProgressWarning

	// ProgressFinished reports the end of the crawl.
	ProgressFinished
)

// ProgressEvent reports progress during a crawl. Front ends subscribe via a
// ProgressFunc and render events as console lines or UI log entries.
type ProgressEvent struct {
	Type     ProgressType
	URL      string
	Filename string
	Reason   SkipReason
	Page     int // 1-based page sequence number, set for ProgressPage
	MaxPages int
	Depth    int
	Err      error
}

// ProgressFunc is a callback for reporting crawl progress.
type ProgressFunc func(event ProgressEvent)
