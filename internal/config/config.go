// file: internal/config/config.go
// version: 1.1.0
// guid: 6d6afa27-9982-4498-b7b6-c962b3d6ed03

package config

import (
	"github.com/spf13/viper"
)

// Config holds application configuration
type Config struct {
	DatabasePath string
	DatabaseType string // "pebble" (default) or "sqlite"
	EnableSQLite bool   // Must be true to use SQLite (safety flag)
	CatalogFile  string // optional YAML/JSON seed file, watched for changes

	Search SearchConfig
}

// SearchConfig holds the discovery-engine tunables. Defaults match the
// engine's documented behavior; they exist so deployments can tighten the
// limits, not to change ranking semantics.
type SearchConfig struct {
	MaxResults     int // truncation limit for /api/search
	MaxSuggestions int // truncation limit for /api/suggest
	MaxQueryLength int // queries longer than this are rejected upstream of the engine
}

var AppConfig Config

// InitConfig initializes the application configuration
func InitConfig() {
	// Set defaults
	viper.SetDefault("database_type", "pebble")
	viper.SetDefault("enable_sqlite3_i_know_the_risks", false)
	viper.SetDefault("search.max_results", 20)
	viper.SetDefault("search.max_suggestions", 5)
	viper.SetDefault("search.max_query_length", 256)

	AppConfig = Config{
		DatabasePath: viper.GetString("database_path"),
		DatabaseType: viper.GetString("database_type"),
		EnableSQLite: viper.GetBool("enable_sqlite3_i_know_the_risks"),
		CatalogFile:  viper.GetString("catalog_file"),
		Search: SearchConfig{
			MaxResults:     viper.GetInt("search.max_results"),
			MaxSuggestions: viper.GetInt("search.max_suggestions"),
			MaxQueryLength: viper.GetInt("search.max_query_length"),
		},
	}

	// Normalize database type
	if AppConfig.DatabaseType == "sqlite3" {
		AppConfig.DatabaseType = "sqlite"
	}
	if AppConfig.DatabaseType == "" {
		AppConfig.DatabaseType = "pebble"
	}

	// Guard against nonsense limits
	if AppConfig.Search.MaxResults < 1 {
		AppConfig.Search.MaxResults = 20
	}
	if AppConfig.Search.MaxSuggestions < 1 {
		AppConfig.Search.MaxSuggestions = 5
	}
	if AppConfig.Search.MaxQueryLength < 1 {
		AppConfig.Search.MaxQueryLength = 256
	}
}
