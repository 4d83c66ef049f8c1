package mock

import "github.com/fwojciec/webgrab"

var _ webgrab.FileStore = (*FileStore)(nil)

// FileStore is a mock implementation of webgrab.FileStore.
type FileStore struct {
	ExistsFn func(name string) bool
	WriteFn  func(name string, data []byte) error
}

func (s *FileStore) Exists(name string) bool {
	return s.ExistsFn(name)
}

func (s *FileStore) Write(name string, data []byte) error {
	return s.WriteFn(name, data)
}

var _ webgrab.PageStore = (*PageStore)(nil)

// PageStore is a mock implementation of webgrab.PageStore.
type PageStore struct {
	SaveFn func(url string, body []byte) (bool, error)
}

func (s *PageStore) Save(url string, body []byte) (bool, error) {
	return s.SaveFn(url, body)
}
