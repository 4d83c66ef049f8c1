package crawl_test

import (
	"testing"

	"github.com/fwojciec/webgrab/crawl"
	"github.com/stretchr/testify/assert"
)

func TestFingerprints_Register(t *testing.T) {
	t.Parallel()

	f := crawl.NewFingerprints()

	assert.True(t, f.Register([]byte("content a")), "first sighting is fresh")
	assert.False(t, f.Register([]byte("content a")), "repeat is not")
	assert.True(t, f.Register([]byte("content b")), "different content is fresh")
}

func TestFingerprint(t *testing.T) {
	t.Parallel()

	a := crawl.Fingerprint([]byte("content a"))
	b := crawl.Fingerprint([]byte("content b"))

	assert.Len(t, a, 16, "hex-encoded 64-bit digest")
	assert.NotEqual(t, a, b)
	assert.Equal(t, a, crawl.Fingerprint([]byte("content a")), "digest is deterministic")
}
