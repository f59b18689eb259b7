// Package suggest produces "did you mean" candidates for unknown sub-command
// input, ranked by edit distance.
package suggest

import (
	"sort"
	"strings"
)

const maxDistance = 3

// levenshtein calculates the edit distance between two strings,
// case-insensitively.
func levenshtein(a, b string) int {
	a = strings.ToLower(a)
	b = strings.ToLower(b)

	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	matrix := make([][]int, len(a)+1)
	for i := range matrix {
		matrix[i] = make([]int, len(b)+1)
	}

	for i := 0; i <= len(a); i++ {
		matrix[i][0] = i
	}
	for j := 0; j <= len(b); j++ {
		matrix[0][j] = j
	}

	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}

			matrix[i][j] = min(
				matrix[i-1][j]+1,      // deletion
				matrix[i][j-1]+1,      // insertion
				matrix[i-1][j-1]+cost, // substitution
			)
		}
	}

	return matrix[len(a)][len(b)]
}

type candidate struct {
	name     string
	distance int
}

// Similar returns up to maxResults candidates within edit distance 3 of the
// input, closest first, ties broken alphabetically. Exact matches are not
// suggestions and are skipped.
func Similar(input string, candidates []string, maxResults int) []string {
	var ranked []candidate
	for _, name := range candidates {
		dist := levenshtein(input, name)
		if dist <= maxDistance && dist > 0 {
			ranked = append(ranked, candidate{name: name, distance: dist})
		}
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].distance != ranked[j].distance {
			return ranked[i].distance < ranked[j].distance
		}
		return ranked[i].name < ranked[j].name
	})

	if len(ranked) > maxResults {
		ranked = ranked[:maxResults]
	}

	result := make([]string, len(ranked))
	for i, c := range ranked {
		result[i] = c.name
	}
	return result
}
