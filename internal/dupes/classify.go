package dupes

import (
	"path/filepath"
	"strings"
)

// IsCandidate reports whether the final segment of path contains marker.
// Directory components are never inspected; they may legitimately contain it.
func IsCandidate(path, marker string) bool {
	return strings.Contains(filepath.Base(path), marker)
}

// Classify returns the originals among files, preserving order. Every other
// file is a potential duplicate, resolved only against a specific original.
func Classify(files []string, marker string) []string {
	originals := make([]string, 0, len(files))
	for _, f := range files {
		if !IsCandidate(f, marker) {
			originals = append(originals, f)
		}
	}
	return originals
}

// BaseName is the final path segment up to its first ".".
func BaseName(path string) string {
	name := filepath.Base(path)
	if i := strings.IndexByte(name, '.'); i >= 0 {
		return name[:i]
	}
	return name
}

// Extension is the text after the last "." of path, without the dot.
func Extension(path string) string {
	if i := strings.LastIndexByte(path, '.'); i >= 0 {
		return path[i+1:]
	}
	return path
}
