package webgrab

import (
	"sort"
	"strings"
)

// Presets maps preset names to groups of commonly downloaded extensions.
// The "all" preset is empty, which matches any extension.
func Presets() map[string][]string {
	return map[string][]string{
		"images":    {".png", ".jpg", ".jpeg", ".gif", ".bmp", ".webp", ".svg", ".ico"},
		"documents": {".pdf", ".doc", ".docx", ".txt", ".rtf", ".odt", ".xls", ".xlsx"},
		"archives":  {".zip", ".rar", ".7z", ".tar", ".gz", ".bz2"},
		"audio":     {".mp3", ".wav", ".ogg", ".flac", ".m4a", ".aac"},
		"video":     {".mp4", ".mkv", ".avi", ".mov", ".webm", ".flv"},
		"code":      {".py", ".js", ".html", ".css", ".json", ".xml", ".yaml", ".yml"},
		"midi":      {".mid", ".midi"},
		"arc":       {".zip", ".map", ".rec", ".png", ".jpg"},
		"all":       {},
	}
}

// DefaultExtensions returns the allow-set used when no extensions are
// specified: archives plus images.
func DefaultExtensions() map[string]bool {
	return parseWith("archives,images", Presets())
}

// ParseExtensions converts a comma-separated specification into an extension
// allow-set. Each part may be a preset name ("images"), a dotted extension
// (".zip"), or a bare extension ("zip"). Parts are lowercased. An empty
// specification yields DefaultExtensions. The "all" preset yields an empty
// set, which matches any extension.
func ParseExtensions(spec string) map[string]bool {
	return ParseExtensionsWith(spec, Presets())
}

// ParseExtensionsWith is like ParseExtensions but resolves preset names
// against the given preset table instead of the built-ins.
func ParseExtensionsWith(spec string, presets map[string][]string) map[string]bool {
	if strings.TrimSpace(spec) == "" {
		return DefaultExtensions()
	}
	set := parseWith(spec, presets)
	if len(set) == 0 {
		// Either every part was unknown, or a preset like "all" matched
		// everything. Unknown-only input falls back to the default set;
		// an explicit catch-all preset stays empty.
		for _, part := range splitSpec(spec) {
			if exts, ok := presets[part]; ok && len(exts) == 0 {
				return map[string]bool{}
			}
		}
		return DefaultExtensions()
	}
	return set
}

func parseWith(spec string, presets map[string][]string) map[string]bool {
	set := make(map[string]bool)
	for _, part := range splitSpec(spec) {
		if exts, ok := presets[part]; ok {
			for _, ext := range exts {
				set[strings.ToLower(ext)] = true
			}
			continue
		}
		if strings.HasPrefix(part, ".") {
			set[part] = true
		} else if part != "" {
			set["."+part] = true
		}
	}
	return set
}

func splitSpec(spec string) []string {
	var parts []string
	for _, part := range strings.Split(spec, ",") {
		parts = append(parts, strings.ToLower(strings.TrimSpace(part)))
	}
	return parts
}

// FormatExtensions renders an allow-set for display, sorted, with "(all)"
// standing in for the empty set.
func FormatExtensions(set map[string]bool) string {
	if len(set) == 0 {
		return "(all)"
	}
	exts := make([]string, 0, len(set))
	for ext := range set {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return strings.Join(exts, ", ")
}
