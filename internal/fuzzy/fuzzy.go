// Package fuzzy provides the string-similarity search used to regenerate
// the street-type correction table from a fresh corpus.
package fuzzy

import "sort"

// Distance returns the Levenshtein edit distance between a and b.
func Distance(a, b string) int {
	lenA, lenB := len(a), len(b)
	if lenA == 0 {
		return lenB
	}
	if lenB == 0 {
		return lenA
	}

	// Keep a as the shorter string so the rows stay small.
	if lenA > lenB {
		a, b = b, a
		lenA, lenB = lenB, lenA
	}

	prev := make([]int, lenA+1)
	curr := make([]int, lenA+1)
	for i := 0; i <= lenA; i++ {
		prev[i] = i
	}

	for j := 1; j <= lenB; j++ {
		curr[0] = j
		for i := 1; i <= lenA; i++ {
			cost := 0
			if a[i-1] != b[j-1] {
				cost = 1
			}
			curr[i] = min3(
				prev[i]+1,      // deletion
				curr[i-1]+1,    // insertion
				prev[i-1]+cost, // substitution
			)
		}
		prev, curr = curr, prev
	}

	return prev[lenA]
}

// Ratio returns a similarity score in [0, 1]; 1 means equal strings.
func Ratio(a, b string) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 1
	}
	longest := len(a)
	if len(b) > longest {
		longest = len(b)
	}
	return 1 - float64(Distance(a, b))/float64(longest)
}

// Match is one close-match candidate with its similarity to the anchor.
type Match struct {
	Word  string
	Score float64
}

// CloseMatches returns up to n candidates scoring at least cutoff against
// word, best first. The anchor itself is excluded; proposing a word as its
// own correction would be noise.
func CloseMatches(word string, candidates []string, n int, cutoff float64) []Match {
	var matches []Match
	for _, c := range candidates {
		if c == word {
			continue
		}
		if score := Ratio(word, c); score >= cutoff {
			matches = append(matches, Match{Word: c, Score: score})
		}
	}
	sort.Slice(matches, func(i, j int) bool {
		if matches[i].Score != matches[j].Score {
			return matches[i].Score > matches[j].Score
		}
		return matches[i].Word < matches[j].Word
	})
	if len(matches) > n {
		matches = matches[:n]
	}
	return matches
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
