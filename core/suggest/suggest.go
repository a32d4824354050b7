// Package suggest proposes the closest known name for a mistyped one.
package suggest

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

// limit is the largest edit distance still worth suggesting for a
// candidate of the given length.
func limit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}

// Closest returns the candidate nearest to input by edit distance,
// ignoring case. Ties go to the candidate listed first. ok is false when
// no candidate is close enough.
func Closest(input string, candidates []string) (string, bool) {
	matches := Rank(input, candidates)
	if len(matches) == 0 {
		return "", false
	}
	return matches[0], true
}

// Rank returns every candidate within suggestion distance of input,
// nearest first.
func Rank(input string, candidates []string) []string {
	in := strings.ToLower(strings.TrimSpace(input))
	if in == "" {
		return nil
	}

	type scored struct {
		name string
		dist int
	}
	var hits []scored
	for _, c := range candidates {
		dist := levenshtein.ComputeDistance(in, strings.ToLower(c))
		if dist > limit(len(c)) {
			continue
		}
		hits = append(hits, scored{name: c, dist: dist})
	}

	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].dist < hits[j].dist
	})

	out := make([]string, len(hits))
	for i, h := range hits {
		out[i] = h.name
	}
	return out
}

// Hint formats a "did you mean" suffix, or "" without a suggestion
func Hint(input string, candidates []string) string {
	if s, ok := Closest(input, candidates); ok {
		return " (did you mean \"" + s + "\"?)"
	}
	return ""
}
