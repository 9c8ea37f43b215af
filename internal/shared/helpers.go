// Package shared provides common utility functions used across multiple
// packages in the l10n-verify codebase.
package shared

import (
	"path/filepath"
	"strings"
)

// AbsPath returns the cleaned absolute form of path, or "" for a blank
// path. Paths that cannot be made absolute are only cleaned.
func AbsPath(path string) string {
	if strings.TrimSpace(path) == "" {
		return ""
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return filepath.Clean(path)
	}
	return abs
}

// SamePath reports whether two paths name the same file after cleaning.
func SamePath(left string, right string) bool {
	a, b := AbsPath(left), AbsPath(right)
	return a != "" && a == b
}

// TrimNonEmpty trims each value and drops the blank ones.
func TrimNonEmpty(values []string) []string {
	var out []string
	for _, value := range values {
		if trimmed := strings.TrimSpace(value); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
