// file: internal/database/memory_store.go
// version: 1.0.0
// guid: 200b54bf-5d61-4453-9a3f-4906f6aea65f

package database

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/beanhaus/beanfinder/internal/models"
)

// MemoryStore is an in-memory Store implementation for tests and ephemeral
// runs. Safe for concurrent use.
type MemoryStore struct {
	mu       sync.RWMutex
	products map[string]models.Product
	order    []string // creation order
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{products: make(map[string]models.Product)}
}

// Close is a no-op for the in-memory store.
func (m *MemoryStore) Close() error { return nil }

// Reset removes every product.
func (m *MemoryStore) Reset() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.products = make(map[string]models.Product)
	m.order = nil
	return nil
}

// GetAllProducts returns every product in creation order.
func (m *MemoryStore) GetAllProducts() ([]models.Product, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	products := make([]models.Product, 0, len(m.order))
	for _, id := range m.order {
		products = append(products, m.products[id])
	}
	return products, nil
}

// GetProductByID fetches one product or ErrNotFound.
func (m *MemoryStore) GetProductByID(id string) (*models.Product, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	p, ok := m.products[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &p, nil
}

// CreateProduct stores a new product, generating a ULID if the ID is empty.
func (m *MemoryStore) CreateProduct(p *models.Product) (*models.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if p.ID == "" {
		p.ID = newULID()
	}
	now := time.Now().UTC()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	p.UpdatedAt = now
	if _, exists := m.products[p.ID]; !exists {
		m.order = append(m.order, p.ID)
	}
	m.products[p.ID] = *p
	return p, nil
}

// UpdateProduct replaces an existing product.
func (m *MemoryStore) UpdateProduct(id string, p *models.Product) (*models.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	existing, ok := m.products[id]
	if !ok {
		return nil, ErrNotFound
	}
	p.ID = id
	p.CreatedAt = existing.CreatedAt
	p.UpdatedAt = time.Now().UTC()
	m.products[id] = *p
	return p, nil
}

// DeleteProduct removes a product.
func (m *MemoryStore) DeleteProduct(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.products[id]; !ok {
		return ErrNotFound
	}
	delete(m.products, id)
	for i, oid := range m.order {
		if oid == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	return nil
}

// CountProducts returns the number of stored products.
func (m *MemoryStore) CountProducts() (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.products), nil
}

// GetCategories returns the distinct non-empty categories, sorted.
func (m *MemoryStore) GetCategories() ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	seen := make(map[string]bool)
	var categories []string
	for _, id := range m.order {
		c := strings.TrimSpace(m.products[id].Category)
		if c != "" && !seen[c] {
			seen[c] = true
			categories = append(categories, c)
		}
	}
	sort.Strings(categories)
	return categories, nil
}

// GetTopRated returns up to limit products by descending rating.
func (m *MemoryStore) GetTopRated(limit int) ([]models.Product, error) {
	products, err := m.GetAllProducts()
	if err != nil {
		return nil, err
	}
	sort.SliceStable(products, func(a, b int) bool {
		return products[a].Rating > products[b].Rating
	})
	if limit > 0 && len(products) > limit {
		products = products[:limit]
	}
	return products, nil
}
