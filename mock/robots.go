package mock

import "github.com/fwojciec/webgrab"

var _ webgrab.RobotsPolicy = (*RobotsPolicy)(nil)

// RobotsPolicy is a mock implementation of webgrab.RobotsPolicy.
type RobotsPolicy struct {
	CanFetchFn func(url string) bool
	LoadedFn   func() bool
}

func (p *RobotsPolicy) CanFetch(url string) bool {
	return p.CanFetchFn(url)
}

func (p *RobotsPolicy) Loaded() bool {
	if p.LoadedFn == nil {
		return true
	}
	return p.LoadedFn()
}
