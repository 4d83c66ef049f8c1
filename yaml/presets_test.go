package yaml_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/webgrab"
	webyaml "github.com/fwojciec/webgrab/yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writePresetsFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), webyaml.DefaultPresetsFile)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadPresets(t *testing.T) {
	t.Parallel()

	t.Run("merges user presets over built-ins", func(t *testing.T) {
		t.Parallel()

		path := writePresetsFile(t, `
presets:
  ebooks:
    - .epub
    - .mobi
  images:
    - .png
`)

		presets, err := webyaml.LoadPresets(path)
		require.NoError(t, err)

		assert.Equal(t, []string{".epub", ".mobi"}, presets["ebooks"])
		assert.Equal(t, []string{".png"}, presets["images"], "user preset replaces built-in")
		assert.Equal(t, webgrab.Presets()["archives"], presets["archives"], "untouched built-ins survive")
	})

	t.Run("normalizes extensions", func(t *testing.T) {
		t.Parallel()

		path := writePresetsFile(t, `
presets:
  Mixed:
    - ZIP
    - " .Tar "
`)

		presets, err := webyaml.LoadPresets(path)
		require.NoError(t, err)
		assert.Equal(t, []string{".zip", ".tar"}, presets["mixed"])
	})

	t.Run("returns ErrPresetsNotFound for missing file", func(t *testing.T) {
		t.Parallel()

		_, err := webyaml.LoadPresets(filepath.Join(t.TempDir(), "missing.yml"))
		assert.ErrorIs(t, err, webyaml.ErrPresetsNotFound)
	})

	t.Run("returns error for malformed YAML", func(t *testing.T) {
		t.Parallel()

		path := writePresetsFile(t, "presets: [not a map")
		_, err := webyaml.LoadPresets(path)
		require.Error(t, err)
	})

	t.Run("file without presets returns built-ins", func(t *testing.T) {
		t.Parallel()

		path := writePresetsFile(t, "# nothing here\n")
		presets, err := webyaml.LoadPresets(path)
		require.NoError(t, err)
		assert.Equal(t, webgrab.Presets(), presets)
	})
}

func TestFindPresetsFile(t *testing.T) {
	t.Parallel()

	t.Run("returns explicit path when it exists", func(t *testing.T) {
		t.Parallel()

		path := writePresetsFile(t, "presets: {}\n")
		assert.Equal(t, path, webyaml.FindPresetsFile(path))
	})

	t.Run("returns empty string for missing explicit path", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "", webyaml.FindPresetsFile(filepath.Join(t.TempDir(), "nope.yml")))
	})
}
