package fuzzy

import "testing"

func TestMatches(t *testing.T) {
	tests := []struct {
		name     string
		haystack string
		query    string
		want     bool
	}{
		{"empty query matches anything", "Strawberry", "", true},
		{"both empty", "", "", true},
		{"empty haystack with query", "", "s", false},
		{"ordered subsequence", "Strawberry", "sby", true},
		{"out of order", "Strawberry", "yb", false},
		{"case insensitive query", "Strawberry", "SBY", true},
		{"case insensitive haystack", "STRAWBERRY", "sby", true},
		{"exact match", "firefox", "firefox", true},
		{"query longer than haystack", "vim", "vimvim", false},
		{"consumes haystack without finishing query", "abc", "abcd", false},
		{"gaps allowed", "Window: Left Half", "wlh", true},
		{"unicode", "Größe", "öß", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Matches(tt.haystack, tt.query); got != tt.want {
				t.Errorf("Matches(%q, %q) = %v, want %v", tt.haystack, tt.query, got, tt.want)
			}
		})
	}
}

// Narrowing a query can only shrink the match set: every string that
// matches the longer query must match each of its prefixes too.
func TestMatchesMonotonicNarrowing(t *testing.T) {
	haystacks := []string{
		"Window: Left Half",
		"Window: Right Half",
		"Preferences",
		"firefox",
		"Launch Terminal",
	}
	query := "wlh"

	for _, h := range haystacks {
		if !Matches(h, query) {
			continue
		}
		for i := 1; i < len(query); i++ {
			if !Matches(h, query[:i]) {
				t.Errorf("%q matches %q but not prefix %q", h, query, query[:i])
			}
		}
	}
}
