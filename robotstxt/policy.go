// Package robotstxt provides a robots.txt-backed implementation of
// webgrab.RobotsPolicy.
package robotstxt

import (
	"context"
	"fmt"
	"net/url"

	"github.com/fwojciec/webgrab"
	"github.com/temoto/robotstxt"
)

// Ensure Policy implements webgrab.RobotsPolicy at compile time.
var _ webgrab.RobotsPolicy = (*Policy)(nil)

// Policy holds the parsed robots rules for one origin. A policy whose
// robots.txt could not be loaded is fail-open: CanFetch always returns true.
type Policy struct {
	group  *robotstxt.Group
	loaded bool
}

// Load fetches and parses robots.txt for the origin of seedURL, matching
// rules against the given user agent. Load never fails: any network or
// parse error yields a fail-open policy with Loaded() == false, and the
// returned error describes the cause so callers can surface a warning.
func Load(ctx context.Context, fetcher webgrab.Fetcher, seedURL, agent string) (*Policy, error) {
	u, err := url.Parse(seedURL)
	if err != nil {
		return &Policy{}, fmt.Errorf("parse seed URL: %w", err)
	}

	robotsURL := fmt.Sprintf("%s://%s/robots.txt", u.Scheme, u.Host)
	body, err := fetcher.Fetch(ctx, robotsURL)
	if err != nil {
		return &Policy{}, fmt.Errorf("fetch %s: %w", robotsURL, err)
	}

	data, err := robotstxt.FromBytes(body)
	if err != nil {
		return &Policy{}, fmt.Errorf("parse %s: %w", robotsURL, err)
	}

	return &Policy{
		group:  data.FindGroup(agent),
		loaded: true,
	}, nil
}

// CanFetch reports whether the policy allows fetching the URL.
func (p *Policy) CanFetch(rawURL string) bool {
	if !p.loaded || p.group == nil {
		return true
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return true
	}
	path := u.Path
	if path == "" {
		path = "/"
	}
	return p.group.Test(path)
}

// Loaded reports whether robots.txt was retrieved and parsed.
func (p *Policy) Loaded() bool {
	return p.loaded
}
