package mock

import "github.com/fwojciec/webgrab"

var _ webgrab.LinkExtractor = (*LinkExtractor)(nil)

// LinkExtractor is a mock implementation of webgrab.LinkExtractor.
type LinkExtractor struct {
	ExtractLinksFn func(body []byte, baseURL string) ([]string, error)
}

func (e *LinkExtractor) ExtractLinks(body []byte, baseURL string) ([]string, error) {
	return e.ExtractLinksFn(body, baseURL)
}
