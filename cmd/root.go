// file: cmd/root.go
// version: 1.2.0
// guid: 6fc6718f-e565-448b-b332-46fe9c8677c9

package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/beanhaus/beanfinder/internal/catalog"
	"github.com/beanhaus/beanfinder/internal/config"
	"github.com/beanhaus/beanfinder/internal/database"
	"github.com/beanhaus/beanfinder/internal/recommend"
	"github.com/beanhaus/beanfinder/internal/search"
	"github.com/beanhaus/beanfinder/internal/server"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string
var databasePath string
var databaseType string
var enableSQLite bool
var catalogFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "beanfinder",
	Short: "Typo-tolerant coffee catalog search and recommendations",
	Long: `Beanfinder indexes a coffee product catalog and serves fuzzy
full-catalog search, query suggestions, and preference-based
recommendations over HTTP or directly from the command line.`,
}

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server",
	Long:  `Start the HTTP API serving search, suggest, and recommend endpoints.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := database.InitializeStore(config.AppConfig.DatabaseType, config.AppConfig.DatabasePath, config.AppConfig.EnableSQLite); err != nil {
			return fmt.Errorf("failed to initialize database: %w", err)
		}
		defer database.CloseStore()

		fmt.Printf("Using database: %s (%s)\n", config.AppConfig.DatabasePath, config.AppConfig.DatabaseType)

		// A configured catalog file is imported on startup and watched
		// for edits afterwards.
		if config.AppConfig.CatalogFile != "" {
			if err := importCatalogFile(config.AppConfig.CatalogFile, true, false); err != nil {
				return fmt.Errorf("catalog import failed: %w", err)
			}
		}

		srv, err := server.NewServer(database.GlobalStore)
		if err != nil {
			return fmt.Errorf("failed to create server: %w", err)
		}

		if config.AppConfig.CatalogFile != "" {
			if err := srv.WatchCatalogFile(config.AppConfig.CatalogFile); err != nil {
				fmt.Printf("Warning: catalog watch disabled: %v\n", err)
			} else {
				fmt.Printf("Watching catalog file: %s\n", config.AppConfig.CatalogFile)
			}
		}

		cfg := server.GetDefaultServerConfig()

		// Override with command line flags if provided
		if port := cmd.Flag("port").Value.String(); port != "" {
			cfg.Port = port
		}
		if host := cmd.Flag("host").Value.String(); host != "" {
			cfg.Host = host
		}
		if rt := cmd.Flag("read-timeout").Value.String(); rt != "" {
			if d, err := time.ParseDuration(rt); err == nil {
				cfg.ReadTimeout = d
			}
		}
		if wt := cmd.Flag("write-timeout").Value.String(); wt != "" {
			if d, err := time.ParseDuration(wt); err == nil {
				cfg.WriteTimeout = d
			}
		}
		if it := cmd.Flag("idle-timeout").Value.String(); it != "" {
			if d, err := time.ParseDuration(it); err == nil {
				cfg.IdleTimeout = d
			}
		}

		return srv.Start(cfg)
	},
}

// seedCmd represents the seed command
var seedCmd = &cobra.Command{
	Use:   "seed <catalog-file>",
	Short: "Import a catalog file into the database",
	Long:  `Import products from a YAML or JSON catalog file into the database.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		reset, _ := cmd.Flags().GetBool("reset")

		if err := database.InitializeStore(config.AppConfig.DatabaseType, config.AppConfig.DatabasePath, config.AppConfig.EnableSQLite); err != nil {
			return fmt.Errorf("failed to initialize database: %w", err)
		}
		defer database.CloseStore()

		fmt.Printf("Using database: %s (%s)\n", config.AppConfig.DatabasePath, config.AppConfig.DatabaseType)
		return importCatalogFile(args[0], reset, true)
	},
}

// searchCmd represents the search command
var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search the catalog from the command line",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		query := strings.Join(args, " ")

		if err := database.InitializeStore(config.AppConfig.DatabaseType, config.AppConfig.DatabasePath, config.AppConfig.EnableSQLite); err != nil {
			return fmt.Errorf("failed to initialize database: %w", err)
		}
		defer database.CloseStore()

		products, err := database.GlobalStore.GetAllProducts()
		if err != nil {
			return fmt.Errorf("failed to load catalog: %w", err)
		}

		results := search.Search(query, products, limit)
		if len(results) == 0 {
			fmt.Printf("No matches for %q.\n", query)
			if hint := search.DidYouMean(query, products); hint != "" {
				fmt.Printf("Did you mean %q?\n", hint)
			}
			return nil
		}

		for i, p := range results {
			fmt.Printf("%2d. %s (%.1f, %d reviews)\n", i+1, search.Highlight(p.Name, query, "[", "]"), p.Rating, p.ReviewCount)
			if p.Description != "" {
				fmt.Printf("    %s\n", p.Description)
			}
			if len(p.FlavorNotes) > 0 {
				fmt.Printf("    Notes: %s\n", strings.Join(p.FlavorNotes, ", "))
			}
		}
		return nil
	},
}

// recommendCmd represents the recommend command
var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Recommend one product from stated preferences",
	Long: `Recommend a single product. Preferences are optional; omitted ones
simply do not narrow the catalog.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		brew, _ := cmd.Flags().GetString("brew")
		roast, _ := cmd.Flags().GetString("roast")
		flavor, _ := cmd.Flags().GetString("flavor")

		if err := database.InitializeStore(config.AppConfig.DatabaseType, config.AppConfig.DatabasePath, config.AppConfig.EnableSQLite); err != nil {
			return fmt.Errorf("failed to initialize database: %w", err)
		}
		defer database.CloseStore()

		products, err := database.GlobalStore.GetAllProducts()
		if err != nil {
			return fmt.Errorf("failed to load catalog: %w", err)
		}

		prefs := recommend.ParsePreferences(brew, roast, flavor)
		pick := recommend.Recommend(products, prefs)
		if pick == nil {
			fmt.Println("The catalog is empty; nothing to recommend.")
			return nil
		}

		fmt.Printf("Recommended: %s (%.1f, %d reviews)\n", pick.Name, pick.Rating, pick.ReviewCount)
		if pick.Description != "" {
			fmt.Printf("  %s\n", pick.Description)
		}
		if pick.Roast != "" {
			fmt.Printf("  Roast: %s\n", pick.Roast)
		}
		if pick.Brew != "" {
			fmt.Printf("  Brew: %s\n", pick.Brew)
		}
		if len(pick.FlavorNotes) > 0 {
			fmt.Printf("  Notes: %s\n", strings.Join(pick.FlavorNotes, ", "))
		}
		return nil
	},
}

// importCatalogFile loads a catalog file into the global store, optionally
// wiping existing products first. A progress bar is shown for interactive
// imports.
func importCatalogFile(path string, reset, progress bool) error {
	products, err := catalog.LoadFile(path)
	if err != nil {
		return err
	}

	if reset {
		if err := database.GlobalStore.Reset(); err != nil {
			return fmt.Errorf("failed to reset database: %w", err)
		}
	}

	var bar *progressbar.ProgressBar
	if progress {
		bar = progressbar.Default(int64(len(products)), "importing")
	}
	for i := range products {
		if _, err := database.GlobalStore.CreateProduct(&products[i]); err != nil {
			return fmt.Errorf("failed to import %q: %w", products[i].Name, err)
		}
		if bar != nil {
			_ = bar.Add(1)
		}
	}

	fmt.Printf("Imported %d products from %s\n", len(products), path)
	return nil
}

// Execute adds all child commands to the root command and sets flags appropriately
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.beanfinder.yaml)")
	rootCmd.PersistentFlags().StringVar(&databasePath, "db", "beanfinder.pebble", "path to database (default: beanfinder.pebble for PebbleDB)")
	rootCmd.PersistentFlags().StringVar(&databaseType, "db-type", "pebble", "database type: pebble (default) or sqlite")
	rootCmd.PersistentFlags().BoolVar(&enableSQLite, "enable-sqlite3-i-know-the-risks", false, "enable SQLite3 database (WARNING: cross-compilation issues, PebbleDB recommended)")
	rootCmd.PersistentFlags().StringVar(&catalogFile, "catalog", "", "catalog seed file (YAML or JSON), imported and watched by serve")

	viper.BindPFlag("database_path", rootCmd.PersistentFlags().Lookup("db"))
	viper.BindPFlag("database_type", rootCmd.PersistentFlags().Lookup("db-type"))
	viper.BindPFlag("enable_sqlite3_i_know_the_risks", rootCmd.PersistentFlags().Lookup("enable-sqlite3-i-know-the-risks"))
	viper.BindPFlag("catalog_file", rootCmd.PersistentFlags().Lookup("catalog"))

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(recommendCmd)

	// Add serve command specific flags
	serveCmd.Flags().String("port", "8080", "port to run the API server on")
	serveCmd.Flags().String("host", "localhost", "host to bind the API server to")
	serveCmd.Flags().String("read-timeout", "15s", "read timeout (e.g. 15s, 1m)")
	serveCmd.Flags().String("write-timeout", "15s", "write timeout (e.g. 15s, 1m)")
	serveCmd.Flags().String("idle-timeout", "60s", "idle timeout (e.g. 60s, 2m)")

	seedCmd.Flags().Bool("reset", false, "wipe existing products before importing")

	searchCmd.Flags().Int("limit", 20, "maximum number of results")

	recommendCmd.Flags().String("brew", "", "brew style preference (espresso, filter, french-press, cold-brew)")
	recommendCmd.Flags().String("roast", "", "roast profile preference (light, medium, dark)")
	recommendCmd.Flags().String("flavor", "", "flavor direction, matched against flavor notes")
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".beanfinder")
	}

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Println("Using config file:", viper.ConfigFileUsed())
	}

	// Ensure database directory exists
	if databasePath != "" {
		dbDir := filepath.Dir(databasePath)
		if dbDir != "." {
			if err := os.MkdirAll(dbDir, 0755); err != nil {
				fmt.Printf("Error creating database directory: %v\n", err)
			}
		}
	}

	config.InitConfig()
}
