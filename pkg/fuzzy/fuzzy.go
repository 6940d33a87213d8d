// Package fuzzy ranks listing names and addresses against a typed search
// term with typo tolerance. It backs the search suggestion endpoint; the
// main search endpoint uses database-side regex matching instead.
package fuzzy

import (
	"sort"
	"strings"
)

// LevenshteinDistance calculates the edit distance between two strings:
// the number of single-character insertions, deletions, or substitutions
// required to change one into the other.
func LevenshteinDistance(s1, s2 string) int {
	s1 = normalizeString(s1)
	s2 = normalizeString(s2)

	if len(s1) == 0 {
		return len(s2)
	}
	if len(s2) == 0 {
		return len(s1)
	}

	r1 := []rune(s1)
	r2 := []rune(s2)
	m := len(r1)
	n := len(r2)

	d := make([][]int, m+1)
	for i := range d {
		d[i] = make([]int, n+1)
	}
	for i := 0; i <= m; i++ {
		d[i][0] = i
	}
	for j := 0; j <= n; j++ {
		d[0][j] = j
	}

	for i := 1; i <= m; i++ {
		for j := 1; j <= n; j++ {
			cost := 0
			if r1[i-1] != r2[j-1] {
				cost = 1
			}
			d[i][j] = min3(
				d[i-1][j]+1,      // deletion
				d[i][j-1]+1,      // insertion
				d[i-1][j-1]+cost, // substitution
			)
		}
	}

	return d[m][n]
}

// Match reports whether the query fuzzy-matches the text within the given
// edit-distance threshold. Substring containment and word prefixes count
// as matches regardless of distance.
func Match(query, text string, threshold int) bool {
	query = normalizeString(query)
	text = normalizeString(text)

	if strings.Contains(text, query) {
		return true
	}

	for _, word := range strings.Fields(text) {
		if LevenshteinDistance(query, word) <= threshold {
			return true
		}
		if strings.HasPrefix(word, query) {
			return true
		}
	}

	return false
}

// Score rates how well a listing's name and address match the query.
// Higher is more relevant; zero means no match.
func Score(query, name, address string) float64 {
	query = normalizeString(query)
	score := 0.0

	nameNorm := normalizeString(name)
	if strings.Contains(nameNorm, query) {
		score += 100.0
		if containsWord(nameNorm, query) {
			score += 50.0
		}
	} else {
		for _, word := range strings.Fields(nameNorm) {
			dist := LevenshteinDistance(query, word)
			if dist <= 2 {
				score += 50.0 - float64(dist)*15
			}
			if strings.HasPrefix(word, query) {
				score += 40.0
			}
		}
	}

	addressNorm := normalizeString(address)
	if strings.Contains(addressNorm, query) {
		score += 60.0
		if containsWord(addressNorm, query) {
			score += 20.0
		}
	} else {
		for _, word := range strings.Fields(addressNorm) {
			dist := LevenshteinDistance(query, word)
			if dist <= 2 {
				score += 30.0 - float64(dist)*10
			}
			if strings.HasPrefix(word, query) {
				score += 25.0
			}
		}
	}

	return score
}

// Candidate is one suggestible listing.
type Candidate struct {
	Name    string
	Address string
}

// Suggest returns up to max candidate names ordered by relevance to the
// query. The typo threshold scales with query length.
func Suggest(query string, candidates []Candidate, max int) []string {
	threshold := 2
	if len(query) <= 3 {
		threshold = 1
	} else if len(query) >= 8 {
		threshold = 3
	}

	type scored struct {
		name  string
		score float64
	}

	var matches []scored
	for _, c := range candidates {
		if !Match(query, c.Name, threshold) && !Match(query, c.Address, threshold) {
			continue
		}
		matches = append(matches, scored{name: c.Name, score: Score(query, c.Name, c.Address)})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].score > matches[j].score
	})

	if max > 0 && len(matches) > max {
		matches = matches[:max]
	}

	out := make([]string, len(matches))
	for i, m := range matches {
		out[i] = m.name
	}
	return out
}

func min3(a, b, c int) int {
	if a < b {
		if a < c {
			return a
		}
		return c
	}
	if b < c {
		return b
	}
	return c
}

// normalizeString lowercases and collapses whitespace.
func normalizeString(s string) string {
	s = strings.ToLower(s)
	return strings.Join(strings.Fields(s), " ")
}

func containsWord(text, query string) bool {
	for _, word := range strings.Fields(text) {
		if word == query {
			return true
		}
	}
	return false
}
