// file: internal/recommend/recommend_test.go
// version: 1.1.0
// guid: 4cf8984f-161e-40b8-bffc-71193ddea71a

package recommend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/beanhaus/beanfinder/internal/models"
)

func quizCatalog() []models.Product {
	return []models.Product{
		{ID: "p1", Name: "Morning Drip", Brew: models.BrewFilter, Roast: models.RoastMedium, FlavorNotes: []string{"chocolate"}, Rating: 4.1},
		{ID: "p2", Name: "Crema Classico", Brew: models.BrewEspresso, Roast: models.RoastMedium, FlavorNotes: []string{"caramel", "hazelnut"}, Rating: 4.7},
		{ID: "p3", Name: "Black Velvet", Brew: models.BrewEspresso, Roast: models.RoastDark, FlavorNotes: []string{"cocoa", "smoke"}, Rating: 4.5},
		{ID: "p4", Name: "Garden Party", Brew: models.BrewFilter, Roast: models.RoastLight, FlavorNotes: []string{"floral", "peach"}, Rating: 4.9},
		{ID: "p5", Name: "Slow Steep", Brew: models.BrewFrenchPress, Roast: models.RoastDark, FlavorNotes: []string{"earthy"}, Rating: 3.9},
		{ID: "p6", Name: "Citrus Grove", Brew: models.BrewFilter, Roast: models.RoastLight, FlavorNotes: []string{"citrus", "honey"}, Rating: 4.6},
		{ID: "p7", Name: "Night Shift", Brew: models.BrewEspresso, Roast: models.RoastDark, FlavorNotes: []string{"molasses"}, Rating: 4.3},
		{ID: "p8", Name: "Fireside", Brew: models.BrewFrenchPress, Roast: models.RoastMedium, FlavorNotes: []string{"toffee"}, Rating: 4.0},
		{ID: "p9", Name: "Glacier", Brew: models.BrewFilter, Roast: models.RoastMedium, FlavorNotes: []string{"brown sugar"}, Rating: 4.4},
	}
}

func TestRecommend_EmptyCatalog(t *testing.T) {
	assert.Nil(t, Recommend(nil, Preferences{}))
}

func TestRecommend_NoPreferences(t *testing.T) {
	got := Recommend(quizCatalog(), Preferences{})
	require.NotNil(t, got)
	assert.Equal(t, "p4", got.ID, "with no filters the best-rated product wins")
}

func TestRecommend_BrewStyleNarrows(t *testing.T) {
	got := Recommend(quizCatalog(), Preferences{BrewStyle: models.BrewEspresso})
	require.NotNil(t, got)
	assert.Equal(t, "p2", got.ID, "highest-rated espresso wins")
}

func TestRecommend_RoastNarrowsFurther(t *testing.T) {
	got := Recommend(quizCatalog(), Preferences{
		BrewStyle:    models.BrewEspresso,
		RoastProfile: models.RoastDark,
	})
	require.NotNil(t, got)
	assert.Equal(t, "p3", got.ID, "dark espresso beats the better-rated medium one")
}

func TestRecommend_FlavorDirectionSoftFilter(t *testing.T) {
	got := Recommend(quizCatalog(), Preferences{
		BrewStyle:       models.BrewFilter,
		FlavorDirection: "citrus",
	})
	require.NotNil(t, got)
	assert.Equal(t, "p6", got.ID, "flavor match overrides the higher-rated p4")
}

func TestRecommend_FlavorDirectionDroppedWhenUnmatched(t *testing.T) {
	got := Recommend(quizCatalog(), Preferences{
		BrewStyle:       models.BrewFilter,
		FlavorDirection: "bubblegum",
	})
	require.NotNil(t, got)
	// No filter product has a bubblegum note; the flavor preference is
	// silently dropped instead of emptying the candidates.
	assert.Equal(t, "p4", got.ID)
}

func TestRecommend_HardFilterWipeoutFallsBackGlobally(t *testing.T) {
	// Nothing in the catalog is a cold brew. The brew-style preference is
	// ignored wholesale and the catalog-wide best rating wins. This is the
	// intended fallback policy, not an accident.
	got := Recommend(quizCatalog(), Preferences{BrewStyle: models.BrewColdBrew})
	require.NotNil(t, got)
	assert.Equal(t, "p4", got.ID)
}

func TestRecommend_ConjunctionWipeoutFallsBackGlobally(t *testing.T) {
	// Espresso and light roast both exist individually but never together;
	// the conjunction matches nothing, so both filters are discarded at
	// once rather than relaxed one at a time.
	got := Recommend(quizCatalog(), Preferences{
		BrewStyle:    models.BrewEspresso,
		RoastProfile: models.RoastLight,
	})
	require.NotNil(t, got)
	assert.Equal(t, "p4", got.ID)
}

func TestRecommend_RatingTieKeepsFirst(t *testing.T) {
	catalog := []models.Product{
		{ID: "a", Brew: models.BrewFilter, Rating: 4.5},
		{ID: "b", Brew: models.BrewFilter, Rating: 4.5},
	}
	got := Recommend(catalog, Preferences{BrewStyle: models.BrewFilter})
	require.NotNil(t, got)
	assert.Equal(t, "a", got.ID, "ties keep the first-encountered product")
}

func TestRecommend_DoesNotMutateCatalog(t *testing.T) {
	catalog := quizCatalog()
	Recommend(catalog, Preferences{BrewStyle: models.BrewEspresso, RoastProfile: models.RoastDark, FlavorDirection: "smoke"})
	assert.Equal(t, quizCatalog(), catalog)
}

func TestParsePreferences(t *testing.T) {
	prefs := ParsePreferences("Espresso", "DARK", "  nutty ")
	assert.Equal(t, models.BrewEspresso, prefs.BrewStyle)
	assert.Equal(t, models.RoastDark, prefs.RoastProfile)
	assert.Equal(t, "nutty", prefs.FlavorDirection)

	unknown := ParsePreferences("turkish", "burnt", "")
	assert.Equal(t, models.BrewUnknown, unknown.BrewStyle)
	assert.Equal(t, models.RoastUnknown, unknown.RoastProfile)
}
