// file: internal/database/store.go
// version: 1.2.0
// guid: 2a61bfa9-895c-454a-b5ab-d5081549dbd9

package database

import (
	"errors"
	"fmt"
	"log"

	"github.com/beanhaus/beanfinder/internal/models"
)

// ErrNotFound is returned when a product does not exist.
var ErrNotFound = errors.New("product not found")

// Store defines the catalog persistence operations.
// This abstraction allows both PebbleDB (default) and SQLite3 (opt-in).
// The discovery engine never touches a Store directly; callers load a
// snapshot with GetAllProducts and hand it to the engine.
type Store interface {
	Close() error
	Reset() error

	GetAllProducts() ([]models.Product, error)
	GetProductByID(id string) (*models.Product, error) // ID is ULID string
	CreateProduct(p *models.Product) (*models.Product, error)
	UpdateProduct(id string, p *models.Product) (*models.Product, error)
	DeleteProduct(id string) error
	CountProducts() (int, error)
	GetCategories() ([]string, error)
	GetTopRated(limit int) ([]models.Product, error)
}

// GlobalStore is the process-wide store, set by InitializeStore.
var GlobalStore Store

// InitializeStore initializes the global store based on configuration.
func InitializeStore(dbType, path string, enableSQLite bool) error {
	var err error
	switch dbType {
	case "sqlite":
		if !enableSQLite {
			return fmt.Errorf("sqlite backend requires the enable-sqlite flag")
		}
		GlobalStore, err = NewSQLiteStore(path)
	case "pebble", "":
		GlobalStore, err = NewPebbleStore(path)
	default:
		return fmt.Errorf("unknown database type: %s", dbType)
	}
	if err != nil {
		return fmt.Errorf("failed to open %s store at %s: %w", dbType, path, err)
	}
	log.Printf("[INFO] catalog store initialized (%s: %s)", dbType, path)
	return nil
}

// CloseStore closes the global store.
func CloseStore() error {
	if GlobalStore != nil {
		err := GlobalStore.Close()
		GlobalStore = nil
		return err
	}
	return nil
}
