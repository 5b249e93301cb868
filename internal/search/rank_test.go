// file: internal/search/rank_test.go
// version: 1.2.0
// guid: 8d3b5319-b927-4923-aa05-da8213e9ff69

package search

import (
	"reflect"
	"testing"

	"github.com/beanhaus/beanfinder/internal/models"
)

func testCatalog() []models.Product {
	return []models.Product{
		{
			ID:          "01JYXK0001",
			Name:        "Ethiopian Yirgacheffe",
			Description: "Washed single origin with a delicate tea-like body",
			Category:    "single-origin",
			Roast:       models.RoastLight,
			Brew:        models.BrewFilter,
			FlavorNotes: []string{"floral", "citrus", "bright"},
			Rating:      4.8,
			ReviewCount: 212,
		},
		{
			ID:          "01JYXK0002",
			Name:        "Midnight Espresso Blend",
			Description: "Heavy dark roast built for milk drinks",
			Category:    "blend",
			Roast:       models.RoastDark,
			Brew:        models.BrewEspresso,
			FlavorNotes: []string{"cocoa", "molasses"},
			Rating:      4.5,
			ReviewCount: 340,
		},
		{
			ID:          "01JYXK0003",
			Name:        "Colombia Huila",
			Description: "Balanced medium roast, caramel sweetness",
			Category:    "single-origin",
			Roast:       models.RoastMedium,
			Brew:        models.BrewEspresso,
			FlavorNotes: []string{"caramel", "red apple"},
			Rating:      4.7,
			ReviewCount: 98,
		},
		{
			ID:          "01JYXK0004",
			Name:        "House Filter Blend",
			Description: "Everyday medium roast for drip brewers",
			Category:    "blend",
			Roast:       models.RoastMedium,
			Brew:        models.BrewFilter,
			FlavorNotes: []string{"chocolate", "hazelnut"},
			Rating:      4.2,
			ReviewCount: 523,
		},
	}
}

func TestSearch_SubstringMatchRanksFirst(t *testing.T) {
	catalog := testCatalog()
	results := Search("ethiopia", catalog, DefaultMaxResults)
	if len(results) == 0 {
		t.Fatal("expected at least one result")
	}
	if results[0].Name != "Ethiopian Yirgacheffe" {
		t.Errorf("top result = %q, want Ethiopian Yirgacheffe", results[0].Name)
	}
}

func TestSearch_TypoStillMatches(t *testing.T) {
	catalog := testCatalog()
	results := Search("Ethiopian Yirgacheff", catalog, DefaultMaxResults)
	if len(results) == 0 || results[0].Name != "Ethiopian Yirgacheffe" {
		t.Fatalf("one-character typo should still surface the record, got %v", names(results))
	}
}

func TestSearch_WordCoverageSignal(t *testing.T) {
	catalog := testCatalog()
	// Neither word is a name/category hit, but both appear in the
	// concatenated text of the first record.
	results := Search("light floral", catalog, DefaultMaxResults)
	if !contains(names(results), "Ethiopian Yirgacheffe") {
		t.Errorf("coverage query missed the record: %v", names(results))
	}
}

func TestSearch_EmptyQuery(t *testing.T) {
	catalog := testCatalog()
	if got := Search("", catalog, DefaultMaxResults); got != nil {
		t.Errorf("empty query returned %v, want nil", names(got))
	}
	if got := Search("   ", catalog, DefaultMaxResults); got != nil {
		t.Errorf("whitespace query returned %v, want nil", names(got))
	}
}

func TestSearch_EmptyCatalog(t *testing.T) {
	if got := Search("espresso", nil, DefaultMaxResults); got != nil {
		t.Errorf("empty catalog returned %v, want nil", names(got))
	}
}

func TestSearch_Truncation(t *testing.T) {
	catalog := testCatalog()
	// "blend" hits several records; the limit still holds.
	results := Search("blend", catalog, 1)
	if len(results) > 1 {
		t.Errorf("got %d results, want at most 1", len(results))
	}
}

func TestSearch_Deterministic(t *testing.T) {
	catalog := testCatalog()
	first := Search("roast", catalog, DefaultMaxResults)
	second := Search("roast", catalog, DefaultMaxResults)
	if !reflect.DeepEqual(names(first), names(second)) {
		t.Errorf("identical calls disagree: %v vs %v", names(first), names(second))
	}
}

func TestSearch_StableTieOrder(t *testing.T) {
	// Two records identical except for ID tie on every field score; catalog
	// order must be preserved.
	catalog := []models.Product{
		{ID: "a", Name: "Breakfast Blend", Rating: 4.0},
		{ID: "b", Name: "Breakfast Blend", Rating: 4.0},
	}
	results := Search("breakfast", catalog, DefaultMaxResults)
	if len(results) != 2 || results[0].ID != "a" || results[1].ID != "b" {
		t.Errorf("tie order not stable: %+v", results)
	}
}

func TestSearch_DoesNotMutateCatalog(t *testing.T) {
	catalog := testCatalog()
	before := names(catalog)
	Search("espresso", catalog, 2)
	if !reflect.DeepEqual(before, names(catalog)) {
		t.Error("catalog order changed by Search")
	}
}

func TestSearchWithText_MatchesUnprojected(t *testing.T) {
	catalog := testCatalog()
	texts := make([]string, len(catalog))
	for i := range catalog {
		texts[i] = catalog[i].SearchText()
	}
	plain := Search("caramel", catalog, DefaultMaxResults)
	projected := SearchWithText("caramel", catalog, texts, DefaultMaxResults)
	if !reflect.DeepEqual(names(plain), names(projected)) {
		t.Errorf("projection changed results: %v vs %v", names(plain), names(projected))
	}
}

func names(products []models.Product) []string {
	out := make([]string, len(products))
	for i := range products {
		out[i] = products[i].Name
	}
	return out
}

func contains(haystack []string, needle string) bool {
	for _, s := range haystack {
		if s == needle {
			return true
		}
	}
	return false
}
