package fuzzy

import "strings"

// Matches reports whether query appears in haystack as an ordered,
// possibly non-contiguous subsequence. Matching is case-insensitive.
// An empty query matches everything.
//
// This runs on every keystroke against the full catalog, so it is kept
// to a single O(len(haystack)) pass with no scoring or highlighting.
func Matches(haystack, query string) bool {
	if query == "" {
		return true
	}

	h := strings.ToLower(haystack)
	q := strings.ToLower(query)

	qr := []rune(q)
	qi := 0
	for _, r := range h {
		if r == qr[qi] {
			qi++
			if qi == len(qr) {
				return true
			}
		}
	}
	return false
}
