package webgrab

// RobotsPolicy answers per-URL fetch permission for one origin.
// A policy is loaded at most once per crawl and is read-only thereafter.
type RobotsPolicy interface {
	// CanFetch reports whether the policy allows fetching the URL.
	// A policy that failed to load is fail-open and always returns true.
	CanFetch(url string) bool

	// Loaded reports whether robots.txt was successfully retrieved and
	// parsed.
	Loaded() bool
}
