package classification

import "strings"

// minMatchLength is the shortest normalized text that can take part in a
// containment match.
const minMatchLength = 3

// normalize lowercases, trims and collapses internal whitespace
func normalize(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

// containsEither reports whether a contains b or b contains a. Both must
// be at least minMatchLength long.
func containsEither(a, b string) bool {
	if len(a) < minMatchLength || len(b) < minMatchLength {
		return false
	}
	return strings.Contains(a, b) || strings.Contains(b, a)
}
