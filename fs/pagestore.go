package fs

import (
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/webgrab"
)

// PageDir is the subdirectory of the output directory that archived pages
// are written to.
const PageDir = "html"

// Ensure PageStore implements webgrab.PageStore at compile time.
var _ webgrab.PageStore = (*PageStore)(nil)

// PageStore archives raw page bodies under <outDir>/html. A page whose
// derived filename already exists is silently not saved; the first page to
// claim a name keeps it.
type PageStore struct {
	dir string
}

// NewPageStore creates a PageStore archiving under outDir. The html
// subdirectory is created lazily on first save.
func NewPageStore(outDir string) *PageStore {
	return &PageStore{dir: filepath.Join(outDir, PageDir)}
}

// Save writes the raw body of the page at rawURL to the archive.
// It returns false without error when the derived filename is already
// taken.
func (s *PageStore) Save(rawURL string, body []byte) (bool, error) {
	name, err := PageFilename(rawURL)
	if err != nil {
		return false, err
	}

	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return false, err
	}

	path := filepath.Join(s.dir, name)
	if _, err := os.Stat(path); err == nil {
		return false, nil
	}

	if err := os.WriteFile(path, body, 0644); err != nil {
		return false, err
	}
	return true, nil
}

// PageFilename derives a filesystem-safe filename from a page URL.
// The root path maps to "index"; path separators and reserved filesystem
// characters are replaced with underscores; an .html suffix is appended
// unless the name already ends in .html or .htm.
func PageFilename(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", webgrab.Errorf(webgrab.EINVALID, "invalid page URL: %v", err)
	}

	name := strings.Trim(u.Path, "/")
	if name == "" {
		name = "index"
	}

	name = sanitize(name)

	if !strings.HasSuffix(name, ".html") && !strings.HasSuffix(name, ".htm") {
		name += ".html"
	}
	return name, nil
}

// sanitize replaces characters that are reserved on common filesystems.
func sanitize(name string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '<', '>', ':', '"', '/', '\\', '|', '?', '*':
			return '_'
		}
		return r
	}, name)
}
