package main

import (
	"fmt"
	"sort"
	"strings"
)

// Run executes the presets command.
func (c *PresetsCmd) Run(deps *Dependencies) error {
	names := make([]string, 0, len(deps.Presets))
	for name := range deps.Presets {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		exts := deps.Presets[name]
		if len(exts) == 0 {
			fmt.Fprintf(deps.Stdout, "%-12s (all)\n", name)
			continue
		}
		fmt.Fprintf(deps.Stdout, "%-12s %s\n", name, strings.Join(exts, ", "))
	}

	return nil
}
