package crawl

import (
	"encoding/binary"
	"encoding/hex"

	"github.com/cespare/xxhash/v2"
)

// Fingerprints is the content-digest index used for duplicate detection.
// It is scoped to a single crawl run.
type Fingerprints struct {
	seen map[string]struct{}
}

// NewFingerprints creates an empty fingerprint index.
func NewFingerprints() *Fingerprints {
	return &Fingerprints{seen: make(map[string]struct{})}
}

// Register records the fingerprint of data and returns true if it was not
// seen before. Repeats return false without mutating the index.
func (f *Fingerprints) Register(data []byte) bool {
	fp := Fingerprint(data)
	if _, ok := f.seen[fp]; ok {
		return false
	}
	f.seen[fp] = struct{}{}
	return true
}

// Fingerprint computes the hex digest of content using xxHash.
func Fingerprint(data []byte) string {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], xxhash.Sum64(data))
	return hex.EncodeToString(b[:])
}
