// Package classify maps raw, free-text component-type labels to canonical
// catalog types using a dual approximate-matching gate: a Jaccard
// character-set match and a Levenshtein match must independently agree on
// the same catalog alias before a classification is accepted.
package classify

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

const (
	// jaccardThreshold is the minimum character-set similarity for a
	// candidate to qualify. 1.0 is a perfect match.
	jaccardThreshold = 0.5
	// levenshteinThreshold is the exclusive upper bound on edit distance
	// for a candidate to qualify. 0 is a perfect match.
	levenshteinThreshold = 5
)

// bestJaccard returns the reference string with the highest character-set
// Jaccard similarity to test, among candidates above the threshold. The scan
// stops early on a perfect match.
func bestJaccard(test string, refs []string) (best string, score float64, ok bool) {
	testSet := charSet(test)
	for _, ref := range refs {
		similarity := jaccard(testSet, charSet(ref))
		if similarity > score && similarity > jaccardThreshold {
			best, score, ok = ref, similarity, true
		}
		if similarity == 1.0 {
			break
		}
	}
	return best, score, ok
}

// bestLevenshtein returns the reference string with the lowest edit distance
// to test, among candidates strictly below the threshold. The scan stops
// early on an exact match.
func bestLevenshtein(test string, refs []string) (best string, distance int, ok bool) {
	folded := fold(test)
	distance = levenshteinThreshold
	for _, ref := range refs {
		d := levenshtein.ComputeDistance(folded, fold(ref))
		if d < distance {
			best, distance, ok = ref, d, true
		}
		if distance == 0 {
			break
		}
	}
	return best, distance, ok
}

func fold(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func charSet(s string) map[rune]struct{} {
	set := make(map[rune]struct{})
	for _, r := range fold(s) {
		set[r] = struct{}{}
	}
	return set
}

func jaccard(a, b map[rune]struct{}) float64 {
	intersection := 0
	for r := range a {
		if _, ok := b[r]; ok {
			intersection++
		}
	}
	union := len(a) + len(b) - intersection
	if union == 0 {
		return 0
	}
	return float64(intersection) / float64(union)
}
