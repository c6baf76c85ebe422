// Package resolve maps user-supplied column names onto the columns a table
// actually has.
//
// Pipeline exports rarely match hand-typed column names exactly: headers like
// "Metadata_Day" show up requested as "metadata_day" or "Metadata_Dy".
// Resolution tries an exact match, then a case-insensitive match, then a
// fuzzy match based on normalized edit distance.
package resolve

import "strings"

// Threshold is the minimum similarity for a fuzzy match to be accepted.
const Threshold = 0.7

// Column resolves requested against the available column names. It returns
// the concrete column name and true, or "" and false when nothing matches.
//
// Matching order, first success wins: exact, case-insensitive, fuzzy. The
// fuzzy step picks the single most similar candidate and accepts it only at
// or above Threshold; ties break to the earlier column, so resolution is
// deterministic for a given column order.
func Column(available []string, requested string) (string, bool) {
	for _, c := range available {
		if c == requested {
			return c, true
		}
	}

	lower := make(map[string]string, len(available))
	for _, c := range available {
		key := strings.ToLower(c)
		if _, seen := lower[key]; !seen {
			lower[key] = c
		}
	}
	if c, ok := lower[strings.ToLower(requested)]; ok {
		return c, true
	}

	best := ""
	bestScore := 0.0
	for _, c := range available {
		if score := Similarity(requested, c); score > bestScore {
			best = c
			bestScore = score
		}
	}
	if bestScore >= Threshold {
		return best, true
	}
	return "", false
}

// Similarity returns a 0..1 score for how alike two strings are:
// 1 minus the Levenshtein distance divided by the longer length.
// Identical strings score 1, fully dissimilar strings score 0.
func Similarity(a, b string) float64 {
	if a == b {
		return 1
	}
	longer := len(a)
	if len(b) > longer {
		longer = len(b)
	}
	if longer == 0 {
		return 1
	}
	return 1 - float64(levenshtein(a, b))/float64(longer)
}

// levenshtein computes the edit distance between two strings using the
// classic two-row dynamic programming formulation.
func levenshtein(a, b string) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min3(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}

func min3(a, b, c int) int {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}
