// Package yaml loads user-defined extension presets from a YAML file.
package yaml

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/webgrab"
	"gopkg.in/yaml.v3"
)

// DefaultPresetsFile is the default presets file name.
const DefaultPresetsFile = ".webgrab.yml"

// ErrPresetsNotFound is returned when the presets file does not exist.
var ErrPresetsNotFound = errors.New("presets file not found")

// File is the on-disk shape of a presets file.
type File struct {
	Presets map[string][]string `yaml:"presets"`
}

// LoadPresets reads a presets file and returns the built-in preset table
// with the file's entries merged over it. A user preset with the same name
// as a built-in replaces it. Extensions are normalized to lowercase with a
// leading dot. If the file does not exist, LoadPresets returns
// ErrPresetsNotFound.
func LoadPresets(path string) (map[string][]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrPresetsNotFound
		}
		return nil, err
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, err
	}

	presets := webgrab.Presets()
	for name, exts := range f.Presets {
		normalized := make([]string, 0, len(exts))
		for _, ext := range exts {
			ext = strings.ToLower(strings.TrimSpace(ext))
			if ext == "" {
				continue
			}
			if !strings.HasPrefix(ext, ".") {
				ext = "." + ext
			}
			normalized = append(normalized, ext)
		}
		presets[strings.ToLower(name)] = normalized
	}

	return presets, nil
}

// FindPresetsFile searches for the presets file in the following order:
// 1. If path is specified, use it directly
// 2. Look for .webgrab.yml in the current directory
// 3. Look for .webgrab.yml in the user's home directory
//
// Returns the path to the presets file if found, or empty string if not found.
func FindPresetsFile(path string) string {
	if path != "" {
		if _, err := os.Stat(path); err == nil {
			return path
		}
		return ""
	}

	cwd, err := os.Getwd()
	if err == nil {
		cwdPresets := filepath.Join(cwd, DefaultPresetsFile)
		if _, err := os.Stat(cwdPresets); err == nil {
			return cwdPresets
		}
	}

	home, err := os.UserHomeDir()
	if err == nil {
		homePresets := filepath.Join(home, DefaultPresetsFile)
		if _, err := os.Stat(homePresets); err == nil {
			return homePresets
		}
	}

	return ""
}
