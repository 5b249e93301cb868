// file: internal/recommend/recommend.go
// version: 1.1.0
// guid: cee98872-8719-45fc-bb40-15cb44415c8d

// Package recommend narrows a product catalog to a single pick from a set
// of declared taste preferences. Each call is a pure function over the
// supplied catalog; the package keeps no state between calls.
package recommend

import (
	"strings"

	"github.com/beanhaus/beanfinder/internal/models"
)

// Preferences holds the declared taste preferences, each independently
// optional. Zero values mean "no preference".
type Preferences struct {
	BrewStyle       models.BrewStyle
	RoastProfile    models.RoastProfile
	FlavorDirection string
}

// ParsePreferences builds Preferences from free-form request fields.
// Unrecognized brew/roast values parse to the unknown variant and act as
// "no preference" rather than silently matching nothing.
func ParsePreferences(brewStyle, roastProfile, flavorDirection string) Preferences {
	return Preferences{
		BrewStyle:       models.ParseBrewStyle(brewStyle),
		RoastProfile:    models.ParseRoastProfile(roastProfile),
		FlavorDirection: strings.TrimSpace(flavorDirection),
	}
}

// Recommend picks the single best product for the given preferences.
//
// Brew style and roast profile are hard filters applied in sequence. The
// flavor direction is soft: it narrows the candidates only when at least
// one of them has a matching flavor note, and is dropped otherwise. If the
// hard filters eliminate every candidate, all preferences are ignored and
// the best-rated product of the whole catalog wins. Ties on rating keep
// the first-encountered product.
//
// Returns nil only for an empty catalog.
func Recommend(catalog []models.Product, prefs Preferences) *models.Product {
	if len(catalog) == 0 {
		return nil
	}

	candidates := make([]int, 0, len(catalog))
	for i := range catalog {
		candidates = append(candidates, i)
	}

	if prefs.BrewStyle != models.BrewUnknown {
		candidates = filter(candidates, func(p *models.Product) bool {
			return p.Brew == prefs.BrewStyle
		}, catalog)
	}
	if prefs.RoastProfile != models.RoastUnknown {
		candidates = filter(candidates, func(p *models.Product) bool {
			return p.Roast == prefs.RoastProfile
		}, catalog)
	}

	if prefs.FlavorDirection != "" && len(candidates) > 0 {
		direction := strings.ToLower(prefs.FlavorDirection)
		flavorMatches := filter(candidates, func(p *models.Product) bool {
			for _, note := range p.FlavorNotes {
				if strings.Contains(strings.ToLower(note), direction) {
					return true
				}
			}
			return false
		}, catalog)
		// A flavor preference never empties the candidate set.
		if len(flavorMatches) > 0 {
			candidates = flavorMatches
		}
	}

	if len(candidates) == 0 {
		// The hard filters matched nothing. Fall back to the catalog-wide
		// best seller instead of relaxing one constraint at a time.
		for i := range catalog {
			candidates = append(candidates, i)
		}
	}

	best := candidates[0]
	for _, idx := range candidates[1:] {
		if catalog[idx].Rating > catalog[best].Rating {
			best = idx
		}
	}
	return &catalog[best]
}

func filter(candidates []int, keep func(*models.Product) bool, catalog []models.Product) []int {
	out := candidates[:0:0]
	for _, idx := range candidates {
		if keep(&catalog[idx]) {
			out = append(out, idx)
		}
	}
	return out
}
