// file: internal/models/product.go
// version: 1.1.0
// guid: 9bb2a0a5-1e78-425b-b387-c58a0933fe95

package models

import (
	"strings"
	"time"
)

// RoastProfile is the roast level of a coffee product.
type RoastProfile string

const (
	RoastLight   RoastProfile = "light"
	RoastMedium  RoastProfile = "medium"
	RoastDark    RoastProfile = "dark"
	RoastUnknown RoastProfile = ""
)

// ParseRoastProfile maps free-form catalog data onto a known roast profile.
// Unrecognized values map to RoastUnknown rather than failing, so catalogs
// with unexpected data still load.
func ParseRoastProfile(s string) RoastProfile {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "light":
		return RoastLight
	case "medium":
		return RoastMedium
	case "dark":
		return RoastDark
	default:
		return RoastUnknown
	}
}

// BrewStyle is the brew method a coffee product is intended for.
type BrewStyle string

const (
	BrewEspresso    BrewStyle = "espresso"
	BrewFilter      BrewStyle = "filter"
	BrewFrenchPress BrewStyle = "french-press"
	BrewColdBrew    BrewStyle = "cold-brew"
	BrewUnknown     BrewStyle = ""
)

// ParseBrewStyle maps free-form catalog data onto a known brew style.
func ParseBrewStyle(s string) BrewStyle {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "espresso":
		return BrewEspresso
	case "filter", "pour-over", "pourover", "drip":
		return BrewFilter
	case "french-press", "french press":
		return BrewFrenchPress
	case "cold-brew", "cold brew":
		return BrewColdBrew
	default:
		return BrewUnknown
	}
}

// Product represents a coffee catalog entry with all its attributes.
// The discovery engine treats products as immutable; it never writes
// through these fields.
type Product struct {
	ID          string       `json:"id" yaml:"id" db:"id"` // ULID string
	Name        string       `json:"name" yaml:"name" db:"name"`
	Description string       `json:"description" yaml:"description" db:"description"`
	Category    string       `json:"category,omitempty" yaml:"category,omitempty" db:"category"`
	Roast       RoastProfile `json:"roast_profile,omitempty" yaml:"roast_profile,omitempty" db:"roast_profile"`
	Brew        BrewStyle    `json:"brew_style,omitempty" yaml:"brew_style,omitempty" db:"brew_style"`
	FlavorNotes []string     `json:"flavor_notes,omitempty" yaml:"flavor_notes,omitempty" db:"flavor_notes"`
	Rating      float64      `json:"rating" yaml:"rating" db:"rating"`
	ReviewCount int          `json:"review_count" yaml:"review_count" db:"review_count"`

	// Optional merchandising fields
	Origin     *string `json:"origin,omitempty" yaml:"origin,omitempty" db:"origin"`
	Process    *string `json:"process,omitempty" yaml:"process,omitempty" db:"process"`
	PriceCents *int    `json:"price_cents,omitempty" yaml:"price_cents,omitempty" db:"price_cents"`

	CreatedAt time.Time `json:"created_at,omitempty" yaml:"created_at,omitempty" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at,omitempty" yaml:"updated_at,omitempty" db:"updated_at"`
}

// SearchText builds the lower-cased concatenation of every searchable field.
// Missing optional fields contribute an empty string, which keeps the result
// total for any product.
func (p *Product) SearchText() string {
	parts := []string{
		p.Name,
		p.Description,
		p.Category,
		string(p.Roast),
		string(p.Brew),
		strings.Join(p.FlavorNotes, " "),
	}
	return strings.ToLower(strings.Join(parts, " "))
}

// ProductListRequest represents pagination and filtering for product list
type ProductListRequest struct {
	Page     int    `json:"page" form:"page"`
	Limit    int    `json:"limit" form:"limit"`
	Search   string `json:"search" form:"search"`
	Category string `json:"category" form:"category"`
	SortBy   string `json:"sort_by" form:"sort_by"`
	SortDir  string `json:"sort_dir" form:"sort_dir"`
}

// ProductListResponse represents a paginated product list response
type ProductListResponse struct {
	Products []Product `json:"products"`
	Total    int       `json:"total"`
	Page     int       `json:"page"`
	Limit    int       `json:"limit"`
	Pages    int       `json:"pages"`
}

// ProductUpdateRequest represents a partial product update
type ProductUpdateRequest struct {
	Name        *string  `json:"name,omitempty"`
	Description *string  `json:"description,omitempty"`
	Category    *string  `json:"category,omitempty"`
	Roast       *string  `json:"roast_profile,omitempty"`
	Brew        *string  `json:"brew_style,omitempty"`
	FlavorNotes []string `json:"flavor_notes,omitempty"`
	Rating      *float64 `json:"rating,omitempty"`
	ReviewCount *int     `json:"review_count,omitempty"`
}

// RecommendRequest carries the declared taste preferences collected by a
// caller, each independently optional.
type RecommendRequest struct {
	BrewStyle       string `json:"brew_style,omitempty" form:"brew_style"`
	RoastProfile    string `json:"roast_profile,omitempty" form:"roast_profile"`
	FlavorDirection string `json:"flavor_direction,omitempty" form:"flavor_direction"`
}
