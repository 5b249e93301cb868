// file: internal/search/rank.go
// version: 1.3.0
// guid: 29df5c85-d95b-4145-b305-3a5e564aceb9

package search

import (
	"sort"
	"strings"

	"github.com/beanhaus/beanfinder/internal/models"
)

const (
	// DefaultMaxResults is the truncation limit for a general search.
	DefaultMaxResults = 20

	// DefaultListResults is the truncation limit for short result lists.
	DefaultListResults = 8

	// scoreThreshold drops records whose combined score carries no real
	// signal.
	scoreThreshold = 0.1

	// Per-field weights. Name dominates; the concatenated-text and
	// word-coverage signals act as broad fallbacks.
	nameWeight     = 2.0
	descWeight     = 0.7
	descBoost      = 1.5
	categoryWeight = 0.5
	flavorWeight   = 0.8
	flavorBoost    = 1.3
	overallWeight  = 0.6
	coverageScore  = 0.3
)

// scoredCandidate pairs a catalog index with its combined score. It never
// leaves this package; callers only see the ordered products.
type scoredCandidate struct {
	index int
	score float64
}

// Search ranks catalog against a free-text query and returns at most
// maxResults products, best first. Ties keep catalog order. An empty or
// whitespace-only query returns nil without scoring any record.
// It never mutates the catalog.
func Search(query string, catalog []models.Product, maxResults int) []models.Product {
	return SearchWithText(query, catalog, nil, maxResults)
}

// SearchWithText is Search with an optional precomputed search-text
// projection. searchText must be nil or parallel to catalog, holding each
// product's lower-cased concatenated text (models.Product.SearchText).
// Callers that issue many queries against the same snapshot precompute the
// projection once and reuse it.
func SearchWithText(query string, catalog []models.Product, searchText []string, maxResults int) []models.Product {
	query = strings.TrimSpace(query)
	if query == "" || len(catalog) == 0 {
		return nil
	}
	if maxResults <= 0 {
		maxResults = DefaultMaxResults
	}

	candidates := make([]scoredCandidate, 0, len(catalog))
	for i := range catalog {
		text := ""
		if searchText != nil {
			text = searchText[i]
		} else {
			text = catalog[i].SearchText()
		}
		if total := scoreProduct(query, &catalog[i], text); total > scoreThreshold {
			candidates = append(candidates, scoredCandidate{index: i, score: total})
		}
	}

	// Stable: equal scores keep catalog order.
	sort.SliceStable(candidates, func(a, b int) bool {
		return candidates[a].score > candidates[b].score
	})

	if len(candidates) > maxResults {
		candidates = candidates[:maxResults]
	}
	results := make([]models.Product, len(candidates))
	for i, c := range candidates {
		results[i] = catalog[c.index]
	}
	return results
}

// scoreProduct combines the per-field scores into one total in [0, 2.0].
// The fields compete rather than accumulate: the strongest weighted signal
// wins, so a perfect name hit is never diluted by a weak description.
func scoreProduct(query string, p *models.Product, searchText string) float64 {
	nameScore := FieldScore(query, p.Name)
	descScore := FieldScore(query, p.Description) * descWeight
	categoryScore := FieldScore(query, p.Category) * categoryWeight

	flavorScore := 0.0
	for _, note := range p.FlavorNotes {
		if s := FieldScore(query, note); s > flavorScore {
			flavorScore = s
		}
	}
	flavorScore *= flavorWeight

	overallScore := FieldScore(query, searchText) * overallWeight

	wordScore := 0.0
	if WordCoverage(query, searchText) {
		wordScore = coverageScore
	}

	total := nameScore * nameWeight
	total = max(total, descScore*descBoost)
	total = max(total, categoryScore)
	total = max(total, flavorScore*flavorBoost)
	total = max(total, overallScore)
	total = max(total, wordScore)
	return total
}
