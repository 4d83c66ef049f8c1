// Package fs provides file-based storage for downloaded files and archived
// pages.
package fs

import (
	"os"
	"path/filepath"

	"github.com/fwojciec/webgrab"
)

// Ensure FileStore implements webgrab.FileStore at compile time.
var _ webgrab.FileStore = (*FileStore)(nil)

// FileStore persists downloaded files under their URL basename in a single
// directory. Two URLs sharing a basename collide on the same path; the first
// one wins via the Exists check.
type FileStore struct {
	dir string
}

// NewFileStore creates a FileStore rooted at dir. The directory is created
// lazily on first write.
func NewFileStore(dir string) *FileStore {
	return &FileStore{dir: dir}
}

// Exists reports whether a file with the given basename is already present.
func (s *FileStore) Exists(name string) bool {
	_, err := os.Stat(filepath.Join(s.dir, name))
	return err == nil
}

// Write persists data under the given basename, creating the store
// directory if absent.
func (s *FileStore) Write(name string, data []byte) error {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(s.dir, name), data, 0644)
}
