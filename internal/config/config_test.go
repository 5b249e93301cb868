// file: internal/config/config_test.go
// version: 1.0.0
// guid: 5a583fb7-09d4-4bbb-b694-21c8c1e0e49b

package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestInitConfig_Defaults(t *testing.T) {
	viper.Reset()
	InitConfig()

	assert.Equal(t, "pebble", AppConfig.DatabaseType)
	assert.False(t, AppConfig.EnableSQLite)
	assert.Equal(t, 20, AppConfig.Search.MaxResults)
	assert.Equal(t, 5, AppConfig.Search.MaxSuggestions)
	assert.Equal(t, 256, AppConfig.Search.MaxQueryLength)
}

func TestInitConfig_NormalizesDatabaseType(t *testing.T) {
	viper.Reset()
	viper.Set("database_type", "sqlite3")
	InitConfig()
	assert.Equal(t, "sqlite", AppConfig.DatabaseType)
}

func TestInitConfig_GuardsLimits(t *testing.T) {
	viper.Reset()
	viper.Set("search.max_results", -1)
	viper.Set("search.max_suggestions", 0)
	viper.Set("search.max_query_length", -100)
	InitConfig()

	assert.Equal(t, 20, AppConfig.Search.MaxResults)
	assert.Equal(t, 5, AppConfig.Search.MaxSuggestions)
	assert.Equal(t, 256, AppConfig.Search.MaxQueryLength)
}
