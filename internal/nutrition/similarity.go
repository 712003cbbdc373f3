package nutrition

import (
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

// Similarity returns the Ratcliff/Obershelp ratio between two strings in
// [0, 1]. Identical strings score 1.0, including two empty strings.
func Similarity(a, b string) float64 {
	return difflib.NewMatcher(splitRunes(a), splitRunes(b)).Ratio()
}

// splitRunes turns a string into per-rune elements so the matcher compares
// characters rather than lines.
func splitRunes(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, "")
}
