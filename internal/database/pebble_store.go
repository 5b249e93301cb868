// file: internal/database/pebble_store.go
// version: 1.2.0
// guid: 9f56a62b-34ff-4654-b429-983fde812728

package database

import (
	"crypto/rand"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/cockroachdb/pebble/v2"
	ulid "github.com/oklog/ulid/v2"

	"github.com/beanhaus/beanfinder/internal/models"
)

// PebbleStore implements the Store interface using PebbleDB (LSM key-value store)
//
// Key Schema:
// - product:<id>  -> Product JSON (id is a ULID, so iteration order is creation order)
type PebbleStore struct {
	db *pebble.DB
}

const productPrefix = "product:"

// NewPebbleStore creates a new PebbleDB store
func NewPebbleStore(path string) (*PebbleStore, error) {
	db, err := pebble.Open(path, &pebble.Options{})
	if err != nil {
		return nil, fmt.Errorf("failed to open PebbleDB: %w", err)
	}
	return &PebbleStore{db: db}, nil
}

// Close closes the database
func (p *PebbleStore) Close() error {
	return p.db.Close()
}

// Reset removes every product
func (p *PebbleStore) Reset() error {
	products, err := p.GetAllProducts()
	if err != nil {
		return err
	}
	for i := range products {
		if err := p.DeleteProduct(products[i].ID); err != nil {
			return err
		}
	}
	return nil
}

func productKey(id string) []byte {
	return []byte(productPrefix + id)
}

var (
	ulidMu      sync.Mutex
	ulidEntropy = ulid.Monotonic(rand.Reader, 0)
)

// newULID returns a lexicographically increasing ULID. The shared monotonic
// entropy keeps same-millisecond IDs ordered, which GetAllProducts depends
// on for creation-order iteration.
func newULID() string {
	ulidMu.Lock()
	defer ulidMu.Unlock()
	return ulid.MustNew(ulid.Timestamp(time.Now()), ulidEntropy).String()
}

// GetAllProducts returns every product in creation order.
func (p *PebbleStore) GetAllProducts() ([]models.Product, error) {
	iter, err := p.db.NewIter(&pebble.IterOptions{
		LowerBound: []byte(productPrefix),
		UpperBound: []byte(productPrefix + "\xff"),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create iterator: %w", err)
	}
	defer iter.Close()

	var products []models.Product
	for iter.First(); iter.Valid(); iter.Next() {
		var product models.Product
		if err := json.Unmarshal(iter.Value(), &product); err != nil {
			return nil, fmt.Errorf("failed to decode product %s: %w", iter.Key(), err)
		}
		products = append(products, product)
	}
	return products, iter.Error()
}

// GetProductByID fetches one product or ErrNotFound.
func (p *PebbleStore) GetProductByID(id string) (*models.Product, error) {
	value, closer, err := p.db.Get(productKey(id))
	if err == pebble.ErrNotFound {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get product %s: %w", id, err)
	}
	defer closer.Close()

	var product models.Product
	if err := json.Unmarshal(value, &product); err != nil {
		return nil, fmt.Errorf("failed to decode product %s: %w", id, err)
	}
	return &product, nil
}

// CreateProduct stores a new product, generating a ULID if the ID is empty.
func (p *PebbleStore) CreateProduct(product *models.Product) (*models.Product, error) {
	if product.ID == "" {
		product.ID = newULID()
	}
	now := time.Now().UTC()
	if product.CreatedAt.IsZero() {
		product.CreatedAt = now
	}
	product.UpdatedAt = now

	data, err := json.Marshal(product)
	if err != nil {
		return nil, fmt.Errorf("failed to encode product: %w", err)
	}
	if err := p.db.Set(productKey(product.ID), data, pebble.Sync); err != nil {
		return nil, fmt.Errorf("failed to store product: %w", err)
	}
	return product, nil
}

// UpdateProduct replaces an existing product.
func (p *PebbleStore) UpdateProduct(id string, product *models.Product) (*models.Product, error) {
	existing, err := p.GetProductByID(id)
	if err != nil {
		return nil, err
	}
	product.ID = id
	product.CreatedAt = existing.CreatedAt
	product.UpdatedAt = time.Now().UTC()

	data, err := json.Marshal(product)
	if err != nil {
		return nil, fmt.Errorf("failed to encode product: %w", err)
	}
	if err := p.db.Set(productKey(id), data, pebble.Sync); err != nil {
		return nil, fmt.Errorf("failed to store product: %w", err)
	}
	return product, nil
}

// DeleteProduct removes a product.
func (p *PebbleStore) DeleteProduct(id string) error {
	if _, err := p.GetProductByID(id); err != nil {
		return err
	}
	if err := p.db.Delete(productKey(id), pebble.Sync); err != nil {
		return fmt.Errorf("failed to delete product %s: %w", id, err)
	}
	return nil
}

// CountProducts returns the number of stored products.
func (p *PebbleStore) CountProducts() (int, error) {
	products, err := p.GetAllProducts()
	if err != nil {
		return 0, err
	}
	return len(products), nil
}

// GetCategories returns the distinct non-empty categories, sorted.
func (p *PebbleStore) GetCategories() ([]string, error) {
	products, err := p.GetAllProducts()
	if err != nil {
		return nil, err
	}
	seen := make(map[string]bool)
	var categories []string
	for i := range products {
		c := strings.TrimSpace(products[i].Category)
		if c != "" && !seen[c] {
			seen[c] = true
			categories = append(categories, c)
		}
	}
	sort.Strings(categories)
	return categories, nil
}

// GetTopRated returns up to limit products by descending rating.
func (p *PebbleStore) GetTopRated(limit int) ([]models.Product, error) {
	products, err := p.GetAllProducts()
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
