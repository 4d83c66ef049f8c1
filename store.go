package webgrab

// FileStore persists downloaded files under basename-derived names.
type FileStore interface {
	// Exists reports whether a file with the given basename is already
	// present in the store.
	Exists(name string) bool

	// Write persists data under the given basename, creating the store
	// directory if absent.
	Write(name string, data []byte) error
}

// PageStore archives raw page bodies.
type PageStore interface {
	// Save writes the raw body of the page at url to the archive.
	// It returns false without error when a page with the same derived
	// filename has already been saved.
	Save(url string, body []byte) (saved bool, err error)
}
