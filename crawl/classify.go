package crawl

import (
	"net/url"
	"path"
	"strings"
)

// Kind classifies a discovered link.
type Kind int

const (
	// KindSkip marks a link that is neither a downloadable file nor a
	// same-origin page.
	KindSkip Kind = iota

	// KindFile marks a link whose extension matches the allow-set.
	KindFile

	// KindPage marks a same-origin link eligible for the frontier.
	KindPage
)

// Extension returns the lowercased extension of the final path segment of
// rawURL, including the leading dot. It returns "" if the segment has no
// dot or the URL cannot be parsed.
func Extension(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return strings.ToLower(path.Ext(u.Path))
}

// SameOrigin reports whether rawURL shares scheme and host with seed.
// The match is exact: no www normalization, no subdomain policy.
func SameOrigin(rawURL string, seed *url.URL) bool {
	u, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	return u.Scheme == seed.Scheme && u.Host == seed.Host
}

// Classify decides whether a candidate link is a file to download, a page
// to enqueue, or neither. Classification is file-first: a file-eligible
// link is never also treated as a page, even when same-origin. A file is
// any link with a non-empty extension that the allow-set permits; an empty
// allow-set permits every extension.
func Classify(candidate string, seed *url.URL, allowed map[string]bool) Kind {
	if ext := Extension(candidate); ext != "" && (len(allowed) == 0 || allowed[ext]) {
		return KindFile
	}
	if SameOrigin(candidate, seed) {
		return KindPage
	}
	return KindSkip
}
