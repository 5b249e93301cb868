// file: internal/search/score.go
// version: 1.2.0
// guid: 5c322af5-eed0-4a69-b4ee-dbd379542a75

package search

import "strings"

const (
	// similarityCutoff suppresses weak fuzzy matches so they don't dilute
	// rankings: anything below it scores 0.
	similarityCutoff = 0.6

	// coverageThreshold is the fraction of query words that must match for
	// WordCoverage to report true.
	coverageThreshold = 0.7

	// wordSimilarityFloor is the per-word similarity a text token must reach
	// to count as covering a query word.
	wordSimilarityFloor = 0.8

	// minCoverageWordLen drops short filler words ("a", "of") from coverage.
	minCoverageWordLen = 3
)

// FieldScore scores query against a single text field, returning a value in
// [0, 1]. A case-insensitive substring hit scores in [0.9, 1.0], rewarding
// matches closer to the start of the field. Otherwise the score is the
// edit-distance similarity, floored to 0 below the cutoff.
func FieldScore(query, text string) float64 {
	if query == "" || text == "" {
		return 0
	}
	q := strings.ToLower(query)
	t := strings.ToLower(text)

	if idx := strings.Index(t, q); idx >= 0 {
		positionScore := float64(len(t)-idx) / float64(len(t))
		return 0.9 + 0.1*positionScore
	}

	d := Distance(q, t)
	maxLen := max(len(q), len(t))
	similarity := float64(maxLen-d) / float64(maxLen)
	if similarity >= similarityCutoff {
		return similarity
	}
	return 0
}

// WordCoverage reports whether enough of the query's words appear in text,
// tolerating small per-word misspellings. Words of length < 3 are dropped
// from the query first; queries with no remaining words report false, since
// they carry no coverage signal.
func WordCoverage(query, text string) bool {
	t := strings.ToLower(text)
	var kept []string
	for _, w := range strings.Fields(strings.ToLower(query)) {
		if len(w) >= minCoverageWordLen {
			kept = append(kept, w)
		}
	}
	if len(kept) == 0 {
		return false
	}

	tokens := strings.Fields(t)
	matched := 0
	for _, w := range kept {
		if wordMatches(w, t, tokens) {
			matched++
		}
	}
	return float64(matched) >= coverageThreshold*float64(len(kept))
}

// wordMatches checks one query word against the whole field and its tokens.
func wordMatches(word, text string, tokens []string) bool {
	if strings.Contains(text, word) {
		return true
	}
	for _, tok := range tokens {
		if len(tok) < minCoverageWordLen {
			continue
		}
		maxLen := max(len(word), len(tok))
		similarity := 1.0 - float64(Distance(word, tok))/float64(maxLen)
		if similarity >= wordSimilarityFloor {
			return true
		}
	}
	return false
}
