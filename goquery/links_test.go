package goquery_test

import (
	"testing"

	"github.com/fwojciec/webgrab/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractor_ExtractLinks(t *testing.T) {
	t.Parallel()

	t.Run("returns anchors then images in document order", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
			<img src="/img/top.png">
			<a href="/docs/report.pdf">report</a>
			<a href="/about">about</a>
		</body></html>`

		e := goquery.NewExtractor()
		links, err := e.ExtractLinks([]byte(html), "https://a.example/")

		require.NoError(t, err)
		assert.Equal(t, []string{
			"https://a.example/docs/report.pdf",
			"https://a.example/about",
			"https://a.example/img/top.png",
		}, links)
	})

	t.Run("resolves relative URLs against the page URL", func(t *testing.T) {
		t.Parallel()

		html := `<a href="sibling.html">s</a>`

		e := goquery.NewExtractor()
		links, err := e.ExtractLinks([]byte(html), "https://a.example/docs/page.html")

		require.NoError(t, err)
		assert.Equal(t, []string{"https://a.example/docs/sibling.html"}, links)
	})

	t.Run("strips fragments and deduplicates", func(t *testing.T) {
		t.Parallel()

		html := `<body>
			<a href="/page#intro">one</a>
			<a href="/page#details">two</a>
			<a href="/page">three</a>
		</body>`

		e := goquery.NewExtractor()
		links, err := e.ExtractLinks([]byte(html), "https://a.example/")

		require.NoError(t, err)
		assert.Equal(t, []string{"https://a.example/page"}, links)
	})

	t.Run("keeps cross-origin targets", func(t *testing.T) {
		t.Parallel()

		// Classification is the orchestrator's job; extraction reports every
		// target, external hosts included.
		html := `<a href="https://b.example/x.html">ext</a>`

		e := goquery.NewExtractor()
		links, err := e.ExtractLinks([]byte(html), "https://a.example/")

		require.NoError(t, err)
		assert.Equal(t, []string{"https://b.example/x.html"}, links)
	})

	t.Run("skips non-HTTP schemes", func(t *testing.T) {
		t.Parallel()

		html := `<body>
			<a href="javascript:void(0)">js</a>
			<a href="mailto:x@example.com">mail</a>
			<a href="tel:+123">tel</a>
			<a href="/real">real</a>
		</body>`

		e := goquery.NewExtractor()
		links, err := e.ExtractLinks([]byte(html), "https://a.example/")

		require.NoError(t, err)
		assert.Equal(t, []string{"https://a.example/real"}, links)
	})

	t.Run("rejects invalid base URL", func(t *testing.T) {
		t.Parallel()

		e := goquery.NewExtractor()
		_, err := e.ExtractLinks([]byte("<a href='/x'>x</a>"), "://bad")

		require.Error(t, err)
	})

	t.Run("returns no links for empty document", func(t *testing.T) {
		t.Parallel()

		e := goquery.NewExtractor()
		links, err := e.ExtractLinks([]byte(""), "https://a.example/")

		require.NoError(t, err)
		assert.Empty(t, links)
	})
}
