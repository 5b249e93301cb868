// file: cmd/root_test.go
// version: 1.1.0
// guid: 869d837a-7b0e-4eae-82b9-e5b44bb353fe

package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/beanhaus/beanfinder/internal/config"
	"github.com/spf13/viper"
)

func TestInitConfigCreatesDatabaseDirectory(t *testing.T) {
	tempDir := t.TempDir()
	dbPath := filepath.Join(tempDir, "db", "catalog.pebble")

	origCfgFile := cfgFile
	origDBPath := databasePath
	origConfig := config.AppConfig
	defer func() {
		cfgFile = origCfgFile
		databasePath = origDBPath
		config.AppConfig = origConfig
	}()

	cfgFile = filepath.Join(tempDir, "config.yaml")
	databasePath = dbPath

	initConfig()

	if _, err := os.Stat(filepath.Dir(dbPath)); err != nil {
		t.Fatalf("expected database directory to exist: %v", err)
	}
}

func TestInitConfigUsesHomeConfig(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, ".beanfinder.yaml")
	if err := os.WriteFile(configPath, []byte("database_type: pebble\n"), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	origCfgFile := cfgFile
	origDBPath := databasePath
	origConfig := config.AppConfig
	defer func() {
		cfgFile = origCfgFile
		databasePath = origDBPath
		config.AppConfig = origConfig
	}()

	t.Setenv("HOME", tempDir)
	cfgFile = ""
	databasePath = ""

	viper.Reset()
	initConfig()

	if config.AppConfig.DatabaseType != "pebble" {
		t.Fatalf("expected pebble database type, got %q", config.AppConfig.DatabaseType)
	}
}

func TestExecuteHelp(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	origArgs := os.Args
	defer func() {
		os.Args = origArgs
		rootCmd.SetArgs(nil)
	}()

	rootCmd.SetArgs([]string{"--help"})
	if err := Execute(); err != nil {
		t.Fatalf("help execution failed: %v", err)
	}
}
