// file: internal/catalog/catalog_test.go
// version: 1.1.0
// guid: 4f3593cc-d5ca-45bd-85b1-9f8b9e084e81

package catalog

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/beanhaus/beanfinder/internal/database"
	"github.com/beanhaus/beanfinder/internal/models"
	"github.com/beanhaus/beanfinder/internal/recommend"
)

const seedYAML = `products:
  - name: Ethiopian Yirgacheffe
    description: Washed single origin with a delicate tea-like body
    category: single-origin
    roast_profile: light
    brew_style: filter
    flavor_notes: [floral, citrus, bright]
    rating: 4.8
    review_count: 212
  - name: Midnight Espresso Blend
    description: Heavy dark roast built for milk drinks
    category: blend
    roast_profile: dark
    brew_style: espresso
    flavor_notes: [cocoa, molasses]
    rating: 4.5
    review_count: 340
`

func writeSeed(t *testing.T, name, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoadFile_YAML(t *testing.T) {
	products, err := LoadFile(writeSeed(t, "catalog.yaml", seedYAML))
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "Ethiopian Yirgacheffe", products[0].Name)
	assert.Equal(t, models.RoastLight, products[0].Roast)
	assert.Equal(t, models.BrewEspresso, products[1].Brew)
}

func TestLoadFile_JSON(t *testing.T) {
	seed := `{"products":[{"name":"Kenya AA","roast_profile":"medium","brew_style":"pour-over","rating":9.9,"review_count":-3}]}`
	products, err := LoadFile(writeSeed(t, "catalog.json", seed))
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, models.BrewFilter, products[0].Brew, "pour-over normalizes to filter")
	assert.Equal(t, 5.0, products[0].Rating, "rating clamps to 5")
	assert.Zero(t, products[0].ReviewCount, "negative review counts clamp to 0")
}

func TestLoadFile_Errors(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = LoadFile(writeSeed(t, "catalog.txt", "not a catalog"))
	assert.Error(t, err, "unsupported extension")

	_, err = LoadFile(writeSeed(t, "nameless.yaml", "products:\n  - description: no name\n"))
	assert.Error(t, err, "entries without a name are rejected")
}

func TestSnapshot_SearchAndSuggest(t *testing.T) {
	products, err := LoadFile(writeSeed(t, "catalog.yaml", seedYAML))
	require.NoError(t, err)
	snap := NewSnapshot(products)

	results := snap.Search("ethiopia", 0)
	require.NotEmpty(t, results)
	assert.Equal(t, "Ethiopian Yirgacheffe", results[0].Name)

	assert.Equal(t, []string{"Midnight Espresso Blend", "blend"}, snap.Suggest("blend", 5))
}

func TestSnapshot_Recommend(t *testing.T) {
	products, err := LoadFile(writeSeed(t, "catalog.yaml", seedYAML))
	require.NoError(t, err)
	snap := NewSnapshot(products)

	pick := snap.Recommend(recommend.Preferences{BrewStyle: models.BrewEspresso})
	require.NotNil(t, pick)
	assert.Equal(t, "Midnight Espresso Blend", pick.Name)
}

func TestSnapshot_CopiesInput(t *testing.T) {
	products := []models.Product{{Name: "Original"}}
	snap := NewSnapshot(products)
	products[0].Name = "Mutated"
	assert.Equal(t, "Original", snap.Products()[0].Name)
}

func TestLoadStore(t *testing.T) {
	store := database.NewMemoryStore()
	_, err := store.CreateProduct(&models.Product{Name: "Stored Blend", Rating: 4.0})
	require.NoError(t, err)

	snap, err := LoadStore(store)
	require.NoError(t, err)
	require.Equal(t, 1, snap.Len())
	assert.Equal(t, "Stored Blend", snap.Products()[0].Name)
}

func TestHolder_Replace(t *testing.T) {
	holder := NewHolder(nil)
	assert.Zero(t, holder.Get().Len())

	holder.Replace(NewSnapshot([]models.Product{{Name: "New"}}))
	assert.Equal(t, 1, holder.Get().Len())
}

func TestWatcher_ReloadsOnWrite(t *testing.T) {
	path := writeSeed(t, "catalog.yaml", seedYAML)

	reloaded := make(chan string, 1)
	w := NewWatcher(func(p string) {
		select {
		case reloaded <- p:
		default:
		}
	}, 50*time.Millisecond)
	require.NoError(t, w.Start(path))
	defer w.Stop()

	require.NoError(t, os.WriteFile(path, []byte(seedYAML), 0o644))

	select {
	case p := <-reloaded:
		assert.Equal(t, path, p)
	case <-time.After(3 * time.Second):
		t.Fatal("watcher never fired")
	}
}

func TestWatcher_StopAfterFailedStart(t *testing.T) {
	w := NewWatcher(func(string) {}, 50*time.Millisecond)
	err := w.Start(filepath.Join(t.TempDir(), "no-such-dir", "catalog.yaml"))
	require.Error(t, err)

	done := make(chan struct{})
	go func() {
		w.Stop()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Stop hung after a failed Start")
	}

	// The watcher must be restartable after the failure.
	path := writeSeed(t, "catalog.yaml", seedYAML)
	require.NoError(t, w.Start(path))
	w.Stop()
}

func TestWatcher_IgnoresSiblingFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(seedYAML), 0o644))

	reloaded := make(chan string, 1)
	w := NewWatcher(func(p string) { reloaded <- p }, 50*time.Millisecond)
	require.NoError(t, w.Start(path))
	defer w.Stop()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.txt"), []byte("x"), 0o644))

	select {
	case <-reloaded:
		t.Fatal("sibling file write must not trigger a reload")
	case <-time.After(300 * time.Millisecond):
	}
}
