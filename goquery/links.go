// Package goquery provides a goquery-based implementation of
// webgrab.LinkExtractor.
package goquery

import (
	"bytes"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/webgrab"
)

// Ensure Extractor implements webgrab.LinkExtractor at compile time.
var _ webgrab.LinkExtractor = (*Extractor)(nil)

// Extractor extracts anchor and image link targets from HTML documents.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// ExtractLinks parses the document and returns anchor hrefs followed by
// image srcs, each in document order, resolved against baseURL with fragment
// identifiers stripped. Duplicates within the document are removed, keeping
// the first occurrence.
func (e *Extractor) ExtractLinks(body []byte, baseURL string) ([]string, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, webgrab.Errorf(webgrab.EINVALID, "invalid base URL: %v", err)
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, webgrab.Errorf(webgrab.EINVALID, "failed to parse HTML: %v", err)
	}

	seen := make(map[string]bool)
	var links []string

	collect := func(selector, attr string) {
		doc.Find(selector).Each(func(_ int, sel *goquery.Selection) {
			raw, exists := sel.Attr(attr)
			if !exists || raw == "" {
				return
			}
			if isNonHTTPLink(raw) {
				return
			}
			resolved := resolveURL(base, raw)
			if resolved == "" || seen[resolved] {
				return
			}
			seen[resolved] = true
			links = append(links, resolved)
		})
	}

	collect("a[href]", "href")
	collect("img[src]", "src")

	return links, nil
}

// resolveURL resolves a reference against the base URL and strips any
// fragment identifier.
func resolveURL(base *url.URL, ref string) string {
	u, err := url.Parse(ref)
	if err != nil {
		return ""
	}
	resolved := base.ResolveReference(u)
	resolved.Fragment = ""
	s := resolved.String()
	// A fragment-only href resolves back to the page itself.
	if s == "" {
		return ""
	}
	return s
}

// isNonHTTPLink reports whether the href uses a scheme that cannot be
// crawled (javascript:, mailto:, tel:, data:).
func isNonHTTPLink(href string) bool {
	lower := strings.ToLower(strings.TrimSpace(href))
	for _, prefix := range []string{"javascript:", "mailto:", "tel:", "data:"} {
		if strings.HasPrefix(lower, prefix) {
			return true
		}
	}
	return false
}
