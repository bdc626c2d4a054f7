package match

import (
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// MaxSuggestionDistance is the largest edit distance Closest accepts.
const MaxSuggestionDistance = 2

// Closest returns the candidate with the smallest case-insensitive edit
// distance to word, or "" when word is already a candidate or no candidate is
// within MaxSuggestionDistance. Ties go to the earlier candidate.
func Closest(word string, candidates ...string) string {
	best, bestDist := "", MaxSuggestionDistance+1
	lower := strings.ToLower(word)

	for _, c := range candidates {
		if c == word {
			return ""
		}

		// A distance of at least half the word is a different word, not a typo.
		d := fuzzy.LevenshteinDistance(lower, strings.ToLower(c))
		if d < bestDist && d*2 < max(len(word), len(c)) {
			best, bestDist = c, d
		}
	}

	return best
}
