package webgrab_test

import (
	"testing"
	"time"

	"github.com/fwojciec/webgrab"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJob_Validate(t *testing.T) {
	t.Parallel()

	t.Run("accepts a complete job", func(t *testing.T) {
		t.Parallel()

		depth := 3
		job := &webgrab.Job{
			SeedURL:    "https://example.com/start",
			Extensions: webgrab.ParseExtensions(".zip"),
			OutDir:     "downloads",
			MaxPages:   10,
			MaxDepth:   &depth,
			Timeout:    5 * time.Second,
		}

		require.NoError(t, job.Validate())
	})

	t.Run("rejects missing seed URL", func(t *testing.T) {
		t.Parallel()

		job := &webgrab.Job{}
		err := job.Validate()

		require.Error(t, err)
		assert.Equal(t, webgrab.EINVALID, webgrab.ErrorCode(err))
	})

	t.Run("rejects relative seed URL", func(t *testing.T) {
		t.Parallel()

		job := &webgrab.Job{SeedURL: "/just/a/path"}
		err := job.Validate()

		require.Error(t, err)
		assert.Equal(t, webgrab.EINVALID, webgrab.ErrorCode(err))
	})

	t.Run("rejects negative max depth", func(t *testing.T) {
		t.Parallel()

		depth := -1
		job := &webgrab.Job{SeedURL: "https://example.com", MaxDepth: &depth}
		err := job.Validate()

		require.Error(t, err)
		assert.Equal(t, webgrab.EINVALID, webgrab.ErrorCode(err))
	})
}

func TestJob_Normalize(t *testing.T) {
	t.Parallel()

	job := &webgrab.Job{SeedURL: "https://example.com"}
	job.Normalize()

	assert.Equal(t, webgrab.DefaultOutDir, job.OutDir)
	assert.Equal(t, webgrab.DefaultMaxPages, job.MaxPages)
	assert.Equal(t, webgrab.DefaultTimeout, job.Timeout)
	assert.Nil(t, job.MaxDepth, "depth stays unlimited unless set")
}
