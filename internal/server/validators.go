// file: internal/server/validators.go
// version: 1.1.0
// guid: 907529be-2c11-466b-bda5-2f58cd456df4

package server

import (
	"fmt"
	"strings"

	"github.com/beanhaus/beanfinder/internal/models"
)

// ValidationError represents a validation error with code
type ValidationError struct {
	Field   string
	Message string
	Code    string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateQuery checks the search query length. Empty queries are allowed;
// the engine short-circuits them to empty results. The length cap bounds
// the edit-distance cost, which grows with the product of query and field
// lengths.
func ValidateQuery(query string, maxLength int) error {
	if len(query) > maxLength {
		return ValidationError{
			Field:   "q",
			Message: fmt.Sprintf("query must not exceed %d characters", maxLength),
			Code:    "QUERY_TOO_LONG",
		}
	}
	return nil
}

// ValidatePreferences rejects brew/roast values outside the known enums.
// An unknown value would otherwise silently act as "no preference", which
// hides client typos.
func ValidatePreferences(brewStyle, roastProfile string) error {
	if b := strings.TrimSpace(brewStyle); b != "" && models.ParseBrewStyle(b) == models.BrewUnknown {
		return ValidationError{
			Field:   "brew_style",
			Message: fmt.Sprintf("unknown brew style %q", brewStyle),
			Code:    "BREW_STYLE_UNKNOWN",
		}
	}
	if r := strings.TrimSpace(roastProfile); r != "" && models.ParseRoastProfile(r) == models.RoastUnknown {
		return ValidationError{
			Field:   "roast_profile",
			Message: fmt.Sprintf("unknown roast profile %q", roastProfile),
			Code:    "ROAST_PROFILE_UNKNOWN",
		}
	}
	return nil
}

// ValidateProduct checks a product payload before it reaches the store.
func ValidateProduct(p *models.Product) error {
	name := strings.TrimSpace(p.Name)
	if name == "" {
		return ValidationError{
			Field:   "name",
			Message: "name is required",
			Code:    "NAME_REQUIRED",
		}
	}
	if len(name) > 200 {
		return ValidationError{
			Field:   "name",
			Message: "name must not exceed 200 characters",
			Code:    "NAME_TOO_LONG",
		}
	}
	if p.Rating < 0 || p.Rating > 5 {
		return ValidationError{
			Field:   "rating",
			Message: "rating must be between 0.0 and 5.0",
			Code:    "RATING_OUT_OF_RANGE",
		}
	}
	if p.ReviewCount < 0 {
		return ValidationError{
			Field:   "review_count",
			Message: "review count must not be negative",
			Code:    "REVIEW_COUNT_NEGATIVE",
		}
	}
	return nil
}
