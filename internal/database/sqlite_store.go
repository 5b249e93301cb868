// file: internal/database/sqlite_store.go
// version: 1.1.0
// guid: 54d07d79-8005-4d25-ac11-52a00f090ee4

package database

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/beanhaus/beanfinder/internal/models"
)

// SQLiteStore implements the Store interface using SQLite3.
// It is opt-in: PebbleDB is the default backend because it cross-compiles
// without cgo.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens (and if necessary creates) a SQLite-backed store.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}

	store := &SQLiteStore{db: db}
	if err := store.createTables(); err != nil {
		db.Close()
		return nil, fmt.Errorf("error creating tables: %w", err)
	}
	return store, nil
}

func (s *SQLiteStore) createTables() error {
	_, err := s.db.Exec(`
        CREATE TABLE IF NOT EXISTS products (
            id TEXT PRIMARY KEY,
            name TEXT NOT NULL,
            description TEXT NOT NULL DEFAULT '',
            category TEXT NOT NULL DEFAULT '',
            roast_profile TEXT NOT NULL DEFAULT '',
            brew_style TEXT NOT NULL DEFAULT '',
            flavor_notes TEXT NOT NULL DEFAULT '[]',
            rating REAL NOT NULL DEFAULT 0,
            review_count INTEGER NOT NULL DEFAULT 0,
            origin TEXT,
            process TEXT,
            price_cents INTEGER,
            created_at TIMESTAMP NOT NULL,
            updated_at TIMESTAMP NOT NULL
        )
    `)
	return err
}

// Close closes the database
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Reset removes every product
func (s *SQLiteStore) Reset() error {
	_, err := s.db.Exec(`DELETE FROM products`)
	return err
}

const productColumns = `id, name, description, category, roast_profile, brew_style,
	flavor_notes, rating, review_count, origin, process, price_cents, created_at, updated_at`

func (s *SQLiteStore) scanProduct(row interface{ Scan(...any) error }) (*models.Product, error) {
	var p models.Product
	var roast, brew, notesJSON string
	err := row.Scan(&p.ID, &p.Name, &p.Description, &p.Category, &roast, &brew,
		&notesJSON, &p.Rating, &p.ReviewCount, &p.Origin, &p.Process, &p.PriceCents,
		&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	p.Roast = models.ParseRoastProfile(roast)
	p.Brew = models.ParseBrewStyle(brew)
	if err := json.Unmarshal([]byte(notesJSON), &p.FlavorNotes); err != nil {
		return nil, fmt.Errorf("failed to decode flavor notes for %s: %w", p.ID, err)
	}
	return &p, nil
}

// GetAllProducts returns every product in creation order.
func (s *SQLiteStore) GetAllProducts() ([]models.Product, error) {
	rows, err := s.db.Query(`SELECT ` + productColumns + ` FROM products ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	var products []models.Product
	for rows.Next() {
		p, err := s.scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, *p)
	}
	return products, rows.Err()
}

// GetProductByID fetches one product or ErrNotFound.
func (s *SQLiteStore) GetProductByID(id string) (*models.Product, error) {
	row := s.db.QueryRow(`SELECT `+productColumns+` FROM products WHERE id = ?`, id)
	p, err := s.scanProduct(row)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get product %s: %w", id, err)
	}
	return p, nil
}

// CreateProduct stores a new product, generating a ULID if the ID is empty.
func (s *SQLiteStore) CreateProduct(p *models.Product) (*models.Product, error) {
	if p.ID == "" {
		p.ID = newULID()
	}
	now := time.Now().UTC()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	p.UpdatedAt = now

	notesJSON, err := json.Marshal(notesOrEmpty(p.FlavorNotes))
	if err != nil {
		return nil, fmt.Errorf("failed to encode flavor notes: %w", err)
	}
	_, err = s.db.Exec(`INSERT INTO products (`+productColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.Name, p.Description, p.Category, string(p.Roast), string(p.Brew),
		string(notesJSON), p.Rating, p.ReviewCount, p.Origin, p.Process, p.PriceCents,
		p.CreatedAt, p.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to insert product: %w", err)
	}
	return p, nil
}

// UpdateProduct replaces an existing product.
func (s *SQLiteStore) UpdateProduct(id string, p *models.Product) (*models.Product, error) {
	existing, err := s.GetProductByID(id)
	if err != nil {
		return nil, err
	}
	p.ID = id
	p.CreatedAt = existing.CreatedAt
	p.UpdatedAt = time.Now().UTC()

	notesJSON, err := json.Marshal(notesOrEmpty(p.FlavorNotes))
	if err != nil {
		return nil, fmt.Errorf("failed to encode flavor notes: %w", err)
	}
	_, err = s.db.Exec(`UPDATE products SET name = ?, description = ?, category = ?,
		roast_profile = ?, brew_style = ?, flavor_notes = ?, rating = ?, review_count = ?,
		origin = ?, process = ?, price_cents = ?, updated_at = ? WHERE id = ?`,
		p.Name, p.Description, p.Category, string(p.Roast), string(p.Brew),
		string(notesJSON), p.Rating, p.ReviewCount, p.Origin, p.Process, p.PriceCents,
		p.UpdatedAt, id)
	if err != nil {
		return nil, fmt.Errorf("failed to update product %s: %w", id, err)
	}
	return p, nil
}

// DeleteProduct removes a product.
func (s *SQLiteStore) DeleteProduct(id string) error {
	result, err := s.db.Exec(`DELETE FROM products WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete product %s: %w", id, err)
	}
	if n, err := result.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}

// CountProducts returns the number of stored products.
func (s *SQLiteStore) CountProducts() (int, error) {
	var count int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM products`).Scan(&count)
	return count, err
}

// GetCategories returns the distinct non-empty categories, sorted.
func (s *SQLiteStore) GetCategories() ([]string, error) {
	rows, err := s.db.Query(`SELECT DISTINCT category FROM products WHERE category != '' ORDER BY category`)
	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}
	defer rows.Close()

	var categories []string
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

// GetTopRated returns up to limit products by descending rating.
func (s *SQLiteStore) GetTopRated(limit int) ([]models.Product, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := s.db.Query(`SELECT `+productColumns+` FROM products ORDER BY rating DESC, id LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query top rated: %w", err)
	}
	defer rows.Close()

	var products []models.Product
	for rows.Next() {
		p, err := s.scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, *p)
	}
	return products, rows.Err()
}

func notesOrEmpty(notes []string) []string {
	if notes == nil {
		return []string{}
	}
	return notes
}
