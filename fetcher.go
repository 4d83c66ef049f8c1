package webgrab

import "context"

// Fetcher retrieves raw response bodies from URLs.
// Non-2xx responses are reported as errors, never as content.
type Fetcher interface {
	// Fetch issues a GET request and returns the full response body.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) ([]byte, error)
}
