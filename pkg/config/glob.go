package config

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Expand turns paths and glob patterns into file paths. Each pattern's
// matches are sorted for deterministic ordering; a path named twice is
// kept once. Plain paths are returned as given, so missing files surface
// when they are loaded.
func Expand(patterns []string) ([]string, error) {
	var out []string
	seen := make(map[string]bool)
	for _, pattern := range patterns {
		if !hasMeta(pattern) {
			if !seen[pattern] {
				seen[pattern] = true
				out = append(out, pattern)
			}
			continue
		}
		matches, err := expandGlob(pattern)
		if err != nil {
			return nil, fmt.Errorf("expanding glob pattern %q: %w", pattern, err)
		}
		sort.Strings(matches)
		for _, m := range matches {
			if !seen[m] {
				seen[m] = true
				out = append(out, m)
			}
		}
	}
	return out, nil
}

// expandGlob expands a glob pattern to a list of matching file paths.
// Uses doublestar for ** and {a,b} support, falls back to filepath.Glob
// for simple patterns.
func expandGlob(pattern string) ([]string, error) {
	if strings.Contains(pattern, "**") || strings.ContainsRune(pattern, '{') {
		return doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly())
	}
	return filepath.Glob(pattern)
}

func hasMeta(pattern string) bool {
	return strings.ContainsAny(pattern, "*?[{")
}
