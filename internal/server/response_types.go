// file: internal/server/response_types.go
// version: 1.1.0
// guid: 71521597-b30d-47a8-87ea-503a72bd24d1

package server

import "github.com/beanhaus/beanfinder/internal/models"

// ListResponse provides a consistent format for paginated list responses
type ListResponse struct {
	Items  any `json:"items"`
	Count  int `json:"count"`
	Limit  int `json:"limit,omitempty"`
	Offset int `json:"offset,omitempty"`
	Total  int `json:"total,omitempty"`
}

// ItemResponse provides a consistent format for single item responses
type ItemResponse struct {
	Data any `json:"data"`
}

// CreateResponse provides a consistent format for resource creation responses
type CreateResponse struct {
	ID   string `json:"id"`
	Data any    `json:"data,omitempty"`
}

// DeleteResponse provides a consistent format for deletion responses
type DeleteResponse struct {
	Deleted bool   `json:"deleted"`
	ID      string `json:"id"`
}

// SearchResponse carries ranked search results plus an optional spelling
// correction when nothing matched.
type SearchResponse struct {
	Query      string           `json:"query"`
	Results    []models.Product `json:"results"`
	Count      int              `json:"count"`
	DidYouMean string           `json:"did_you_mean,omitempty"`
}

// SuggestResponse carries query-completion candidates.
type SuggestResponse struct {
	Query       string   `json:"query"`
	Suggestions []string `json:"suggestions"`
}

// RecommendResponse carries the single recommendation, or found=false for
// an empty catalog.
type RecommendResponse struct {
	Found   bool            `json:"found"`
	Product *models.Product `json:"product,omitempty"`
}
