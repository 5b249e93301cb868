// file: internal/catalog/loader.go
// version: 1.1.0
// guid: b1fc6d02-083f-45c8-bf2a-56c62c087d9a

package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/beanhaus/beanfinder/internal/database"
	"github.com/beanhaus/beanfinder/internal/models"
)

// catalogFile is the on-disk seed format: a list of products under one key.
type catalogFile struct {
	Products []fileProduct `json:"products" yaml:"products"`
}

// fileProduct mirrors models.Product but keeps roast/brew as free-form
// strings so unexpected catalog data degrades to the unknown variants
// instead of failing the load.
type fileProduct struct {
	ID          string   `json:"id" yaml:"id"`
	Name        string   `json:"name" yaml:"name"`
	Description string   `json:"description" yaml:"description"`
	Category    string   `json:"category" yaml:"category"`
	Roast       string   `json:"roast_profile" yaml:"roast_profile"`
	Brew        string   `json:"brew_style" yaml:"brew_style"`
	FlavorNotes []string `json:"flavor_notes" yaml:"flavor_notes"`
	Rating      float64  `json:"rating" yaml:"rating"`
	ReviewCount int      `json:"review_count" yaml:"review_count"`
	Origin      *string  `json:"origin" yaml:"origin"`
	Process     *string  `json:"process" yaml:"process"`
	PriceCents  *int     `json:"price_cents" yaml:"price_cents"`
}

// LoadFile reads a catalog seed file (.yaml/.yml or .json) into products.
func LoadFile(path string) ([]models.Product, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}

	var file catalogFile
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("failed to parse catalog YAML: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("failed to parse catalog JSON: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported catalog format: %s", filepath.Ext(path))
	}

	products := make([]models.Product, 0, len(file.Products))
	for i, fp := range file.Products {
		if strings.TrimSpace(fp.Name) == "" {
			return nil, fmt.Errorf("catalog entry %d has no name", i)
		}
		products = append(products, models.Product{
			ID:          fp.ID,
			Name:        fp.Name,
			Description: fp.Description,
			Category:    fp.Category,
			Roast:       models.ParseRoastProfile(fp.Roast),
			Brew:        models.ParseBrewStyle(fp.Brew),
			FlavorNotes: fp.FlavorNotes,
			Rating:      clampRating(fp.Rating),
			ReviewCount: max(fp.ReviewCount, 0),
			Origin:      fp.Origin,
			Process:     fp.Process,
			PriceCents:  fp.PriceCents,
		})
	}
	return products, nil
}

// LoadStore builds a snapshot from everything in the store.
func LoadStore(store database.Store) (*Snapshot, error) {
	products, err := store.GetAllProducts()
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog from store: %w", err)
	}
	return NewSnapshot(products), nil
}

func clampRating(r float64) float64 {
	if r < 0 {
		return 0
	}
	if r > 5 {
		return 5
	}
	return r
}
