// file: internal/search/suggest.go
// version: 1.1.0
// guid: f1a305eb-4f37-4839-9958-68970d3230e7

package search

import (
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/beanhaus/beanfinder/internal/models"
)

// DefaultMaxSuggestions is the truncation limit for query completions.
const DefaultMaxSuggestions = 5

// Suggest returns deduplicated completion candidates for a partial query:
// product names, categories, and flavor notes that contain the query as a
// case-insensitive substring, in catalog encounter order. An empty or
// whitespace-only query returns nil.
func Suggest(query string, catalog []models.Product, maxSuggestions int) []string {
	query = strings.TrimSpace(strings.ToLower(query))
	if query == "" {
		return nil
	}
	if maxSuggestions <= 0 {
		maxSuggestions = DefaultMaxSuggestions
	}

	seen := make(map[string]bool)
	var suggestions []string
	add := func(candidate string) {
		if candidate == "" || seen[candidate] {
			return
		}
		if strings.Contains(strings.ToLower(candidate), query) {
			seen[candidate] = true
			suggestions = append(suggestions, candidate)
		}
	}

	for i := range catalog {
		add(catalog[i].Name)
		add(catalog[i].Category)
		for _, note := range catalog[i].FlavorNotes {
			add(note)
		}
		if len(suggestions) >= maxSuggestions {
			break
		}
	}
	if len(suggestions) > maxSuggestions {
		suggestions = suggestions[:maxSuggestions]
	}
	return suggestions
}

// DidYouMean proposes the closest product name for a query that produced no
// results. Returns "" when nothing in the catalog is plausibly close.
func DidYouMean(query string, catalog []models.Product) string {
	query = strings.TrimSpace(query)
	if query == "" {
		return ""
	}
	names := make([]string, len(catalog))
	for i := range catalog {
		names[i] = catalog[i].Name
	}
	ranks := fuzzy.RankFindNormalizedFold(query, names)
	if len(ranks) == 0 {
		return ""
	}
	best := ranks[0]
	for _, r := range ranks[1:] {
		if r.Distance < best.Distance {
			best = r
		}
	}
	return best.Target
}
