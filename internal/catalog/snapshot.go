// file: internal/catalog/snapshot.go
// version: 1.1.0
// guid: 47a618d6-3f4b-410d-bdd7-436a47086666

// Package catalog holds the in-memory catalog snapshot the discovery engine
// runs against, plus the loaders that build it from a store or a file.
package catalog

import (
	"sync"

	"github.com/beanhaus/beanfinder/internal/models"
	"github.com/beanhaus/beanfinder/internal/recommend"
	"github.com/beanhaus/beanfinder/internal/search"
)

// Snapshot is an immutable view of the catalog with the per-product search
// text precomputed once, so repeated queries skip the projection work. Build
// a fresh Snapshot whenever the underlying catalog changes.
type Snapshot struct {
	products   []models.Product
	searchText []string
}

// NewSnapshot projects the given products into a Snapshot. The slice is
// copied, so later mutation of the argument does not leak into the snapshot.
func NewSnapshot(products []models.Product) *Snapshot {
	copied := make([]models.Product, len(products))
	copy(copied, products)
	texts := make([]string, len(copied))
	for i := range copied {
		texts[i] = copied[i].SearchText()
	}
	return &Snapshot{products: copied, searchText: texts}
}

// Products returns the snapshot's product list. Callers must not mutate it.
func (s *Snapshot) Products() []models.Product {
	return s.products
}

// Len returns the number of products in the snapshot.
func (s *Snapshot) Len() int {
	return len(s.products)
}

// Search ranks the snapshot against a free-text query.
func (s *Snapshot) Search(query string, maxResults int) []models.Product {
	return search.SearchWithText(query, s.products, s.searchText, maxResults)
}

// Suggest returns completion candidates for a partial query.
func (s *Snapshot) Suggest(query string, maxSuggestions int) []string {
	return search.Suggest(query, s.products, maxSuggestions)
}

// Recommend picks the best product for the declared preferences.
func (s *Snapshot) Recommend(prefs recommend.Preferences) *models.Product {
	return recommend.Recommend(s.products, prefs)
}

// Holder is a concurrency-safe container for the current Snapshot, swapped
// wholesale on catalog reload.
type Holder struct {
	mu   sync.RWMutex
	snap *Snapshot
}

// NewHolder creates a Holder with an initial snapshot (may be nil).
func NewHolder(snap *Snapshot) *Holder {
	if snap == nil {
		snap = NewSnapshot(nil)
	}
	return &Holder{snap: snap}
}

// Get returns the current snapshot.
func (h *Holder) Get() *Snapshot {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.snap
}

// Replace swaps in a new snapshot.
func (h *Holder) Replace(snap *Snapshot) {
	if snap == nil {
		snap = NewSnapshot(nil)
	}
	h.mu.Lock()
	h.snap = snap
	h.mu.Unlock()
}
