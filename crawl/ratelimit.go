package crawl

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

// Pacer enforces the politeness delay between consecutive fetches: the full
// configured delay between page fetches and half of it between file
// downloads. Each limiter has a burst of one token, so the first request of
// either class is never delayed.
type Pacer struct {
	pages *rate.Limiter
	files *rate.Limiter
}

// NewPacer creates a Pacer for the given inter-request delay.
// A non-positive delay disables pacing entirely.
func NewPacer(delay time.Duration) *Pacer {
	if delay <= 0 {
		return &Pacer{}
	}
	return &Pacer{
		pages: rate.NewLimiter(rate.Every(delay), 1),
		files: rate.NewLimiter(rate.Every(delay/2), 1),
	}
}

// WaitPage blocks until the next page fetch is allowed.
// Returns an error if the context is canceled before the wait completes.
func (p *Pacer) WaitPage(ctx context.Context) error {
	if p.pages == nil {
		return ctx.Err()
	}
	return p.pages.Wait(ctx)
}

// WaitFile blocks until the next file download is allowed.
// Returns an error if the context is canceled before the wait completes.
func (p *Pacer) WaitFile(ctx context.Context) error {
	if p.files == nil {
		return ctx.Err()
	}
	return p.files.Wait(ctx)
}
