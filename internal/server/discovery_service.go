// file: internal/server/discovery_service.go
// version: 1.3.0
// guid: a8c2c87b-cc93-4bc1-b3cb-586a11436fa2

package server

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/beanhaus/beanfinder/internal/config"
	"github.com/beanhaus/beanfinder/internal/metrics"
	"github.com/beanhaus/beanfinder/internal/models"
	"github.com/beanhaus/beanfinder/internal/recommend"
	"github.com/beanhaus/beanfinder/internal/search"
)

// handleSearch ranks the catalog snapshot against a free-text query.
// GET /api/v1/search?q=ethiopia&limit=20
func (s *Server) handleSearch(c *gin.Context) {
	query, ok := s.validatedQuery(c)
	if !ok {
		return
	}
	limit := parseLimit(c, config.AppConfig.Search.MaxResults, 100)

	start := time.Now()
	snap := s.snapshots.Get()
	results := snap.Search(query, limit)
	metrics.IncSearches()
	metrics.ObserveSearchDuration(time.Since(start))

	if results == nil {
		metrics.IncEmptySearches()
		results = []models.Product{}
	}

	response := SearchResponse{
		Query:   query,
		Results: results,
		Count:   len(results),
	}
	if len(results) == 0 {
		// Surface a spelling correction when the query went nowhere.
		response.DidYouMean = search.DidYouMean(query, snap.Products())
	}
	c.JSON(http.StatusOK, response)
}

// handleSuggest returns query-completion candidates.
// GET /api/v1/suggest?q=eth&limit=5
func (s *Server) handleSuggest(c *gin.Context) {
	query, ok := s.validatedQuery(c)
	if !ok {
		return
	}
	limit := parseLimit(c, config.AppConfig.Search.MaxSuggestions, 25)

	metrics.IncSuggestions()
	// The engine lowercases and trims the query, so equivalent spellings
	// share one cache entry.
	key := fmt.Sprintf("%d:%s", limit, strings.ToLower(strings.TrimSpace(query)))
	suggestions := s.suggestTTL.GetOrCompute(key, func() []string {
		return s.snapshots.Get().Suggest(query, limit)
	})
	if suggestions == nil {
		suggestions = []string{}
	}
	c.JSON(http.StatusOK, SuggestResponse{Query: query, Suggestions: suggestions})
}

// handleRecommend narrows the catalog to one pick from declared preferences.
// Accepts a JSON body on POST and query parameters on GET.
func (s *Server) handleRecommend(c *gin.Context) {
	var req models.RecommendRequest
	if c.Request.Method == http.MethodPost {
		if err := c.ShouldBindJSON(&req); err != nil {
			RespondWithBadRequest(c, "invalid recommendation request: "+err.Error())
			return
		}
	} else {
		req.BrewStyle = c.Query("brew_style")
		req.RoastProfile = c.Query("roast_profile")
		req.FlavorDirection = c.Query("flavor_direction")
	}

	if err := ValidatePreferences(req.BrewStyle, req.RoastProfile); err != nil {
		RespondWithValidationError(c, err.(ValidationError).Field, err.(ValidationError).Message)
		return
	}

	metrics.IncRecommendations()
	prefs := recommend.ParsePreferences(req.BrewStyle, req.RoastProfile, req.FlavorDirection)
	pick := s.snapshots.Get().Recommend(prefs)
	if pick == nil {
		// Valid outcome for an empty catalog, not an error.
		c.JSON(http.StatusOK, RecommendResponse{Found: false})
		return
	}
	c.JSON(http.StatusOK, RecommendResponse{Found: true, Product: pick})
}

// validatedQuery extracts and validates the q parameter. An empty query is
// a valid request that short-circuits to an empty result, matching the
// engine's empty-query fast path.
func (s *Server) validatedQuery(c *gin.Context) (string, bool) {
	query := c.Query("q")
	if err := ValidateQuery(query, config.AppConfig.Search.MaxQueryLength); err != nil {
		ve := err.(ValidationError)
		RespondWithValidationError(c, ve.Field, ve.Message)
		return "", false
	}
	return query, true
}

func parseLimit(c *gin.Context, fallback, ceiling int) int {
	limitStr := c.DefaultQuery("limit", strconv.Itoa(fallback))
	limit, err := strconv.Atoi(limitStr)
	if err != nil || limit <= 0 {
		return fallback
	}
	if limit > ceiling {
		return ceiling
	}
	return limit
}
