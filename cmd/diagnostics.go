// file: cmd/diagnostics.go
// version: 1.1.0
// guid: eaad3261-f36a-4b58-af7f-bd1f7ec84422

package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/cockroachdb/pebble/v2"
	"github.com/spf13/cobra"

	"github.com/beanhaus/beanfinder/internal/config"
	"github.com/beanhaus/beanfinder/internal/database"
	"github.com/beanhaus/beanfinder/internal/models"
)

var (
	diagnosticsCmd = &cobra.Command{
		Use:   "diagnostics",
		Short: "Debugging and cleanup helpers",
		Long:  "Diagnostic utilities for inspecting and repairing the product database.",
	}

	cleanupCmd = &cobra.Command{
		Use:   "cleanup-invalid",
		Short: "Remove malformed product records",
		RunE: func(cmd *cobra.Command, args []string) error {
			force, _ := cmd.Flags().GetBool("yes")
			dryRun, _ := cmd.Flags().GetBool("dry-run")
			return runCleanupInvalidProducts(force, dryRun)
		},
	}

	queryCmd = &cobra.Command{
		Use:   "query",
		Short: "Inspect stored product records",
		RunE: func(cmd *cobra.Command, args []string) error {
			limit, _ := cmd.Flags().GetInt("limit")
			prefix, _ := cmd.Flags().GetString("prefix")
			raw, _ := cmd.Flags().GetBool("raw")
			return runDiagnosticsQuery(limit, prefix, raw)
		},
	}
)

func init() {
	cleanupCmd.Flags().Bool("yes", false, "Skip confirmation prompt")
	cleanupCmd.Flags().Bool("dry-run", false, "List invalid records without deleting")

	queryCmd.Flags().Int("limit", 5, "Number of records to display")
	queryCmd.Flags().String("prefix", "product:", "Key prefix to inspect when --raw is set")
	queryCmd.Flags().Bool("raw", false, "Show raw Pebble key/value data (Pebble only)")

	diagnosticsCmd.AddCommand(cleanupCmd)
	diagnosticsCmd.AddCommand(queryCmd)

	rootCmd.AddCommand(diagnosticsCmd)
}

func ensureDiagnosticsStore() (func(), error) {
	if err := database.InitializeStore(
		config.AppConfig.DatabaseType,
		config.AppConfig.DatabasePath,
		config.AppConfig.EnableSQLite,
	); err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	cleanup := func() {
		database.CloseStore()
	}
	return cleanup, nil
}

// invalidProduct reports records that should never have been stored:
// nameless entries or ratings outside the catalog scale.
func invalidProduct(p *models.Product) bool {
	if strings.TrimSpace(p.Name) == "" {
		return true
	}
	if p.Rating < 0 || p.Rating > 5 {
		return true
	}
	return p.ReviewCount < 0
}

func runCleanupInvalidProducts(force, dryRun bool) error {
	closer, err := ensureDiagnosticsStore()
	if err != nil {
		return err
	}
	defer closer()

	fmt.Printf("Inspecting products in %s (%s)\n", config.AppConfig.DatabasePath, config.AppConfig.DatabaseType)

	products, err := database.GlobalStore.GetAllProducts()
	if err != nil {
		return fmt.Errorf("failed to fetch products: %w", err)
	}

	invalid := make([]models.Product, 0)
	for i := range products {
		if invalidProduct(&products[i]) {
			invalid = append(invalid, products[i])
		}
	}

	if len(invalid) == 0 {
		fmt.Println("No invalid product records detected.")
		return nil
	}

	fmt.Printf("Found %d invalid records:\n", len(invalid))
	for i, p := range invalid {
		fmt.Printf("%2d. ID: %s\n", i+1, p.ID)
		fmt.Printf("    Name:   %q\n", p.Name)
		fmt.Printf("    Rating: %.2f (%d reviews)\n", p.Rating, p.ReviewCount)
	}

	if dryRun {
		fmt.Println("Dry run enabled; no deletions were performed.")
		return nil
	}

	if !force {
		confirmed, err := promptYesNo(fmt.Sprintf("Delete %d records", len(invalid)))
		if err != nil {
			return err
		}
		if !confirmed {
			fmt.Println("Aborted. No records deleted.")
			return nil
		}
	}

	deleted := 0
	for _, p := range invalid {
		if err := database.GlobalStore.DeleteProduct(p.ID); err != nil {
			fmt.Printf("Failed to delete %s: %v\n", p.ID, err)
			continue
		}
		deleted++
	}

	fmt.Printf("Deleted %d invalid records. Re-seed to repopulate clean entries.\n", deleted)
	return nil
}

func runDiagnosticsQuery(limit int, prefix string, raw bool) error {
	if limit <= 0 {
		return errors.New("limit must be positive")
	}

	if raw {
		if config.AppConfig.DatabaseType != "pebble" {
			return fmt.Errorf("raw inspection is only available for Pebble databases")
		}
		return runRawPebbleQuery(limit, prefix)
	}

	closer, err := ensureDiagnosticsStore()
	if err != nil {
		return err
	}
	defer closer()

	products, err := database.GlobalStore.GetAllProducts()
	if err != nil {
		return fmt.Errorf("failed to fetch products: %w", err)
	}
	if len(products) == 0 {
		fmt.Println("No products found.")
		return nil
	}
	if len(products) > limit {
		products = products[:limit]
	}

	for i, p := range products {
		fmt.Printf("%2d. ID: %s\n", i+1, p.ID)
		fmt.Printf("    Name: %s\n", p.Name)
		fmt.Printf("    Category: %s\n", p.Category)
		fmt.Printf("    Rating: %.2f (%d reviews)\n", p.Rating, p.ReviewCount)
		if p.Origin != nil {
			fmt.Printf("    Origin: %s\n", *p.Origin)
		}
		if p.Process != nil {
			fmt.Printf("    Process: %s\n", *p.Process)
		}
		if p.PriceCents != nil {
			fmt.Printf("    Price: %d cents\n", *p.PriceCents)
		}
		fmt.Println("---")
	}

	return nil
}

func runRawPebbleQuery(limit int, prefix string) error {
	db, err := pebble.Open(config.AppConfig.DatabasePath, &pebble.Options{
		FormatMajorVersion: pebble.FormatNewest,
	})
	if err != nil {
		return fmt.Errorf("failed to open Pebble database: %w", err)
	}
	defer db.Close()

	iterOpts := &pebble.IterOptions{}
	if prefix != "" {
		iterOpts.LowerBound = []byte(prefix)
		iterOpts.UpperBound = append([]byte(prefix), 0xFF)
	}

	iter, err := db.NewIter(iterOpts)
	if err != nil {
		return fmt.Errorf("failed to create iterator: %w", err)
	}
	defer iter.Close()

	count := 0
	ok := iter.First()
	if prefix != "" {
		ok = iter.SeekGE([]byte(prefix))
	}

	for ; ok && iter.Valid(); ok = iter.Next() {
		fmt.Printf("Key: %s\n", string(iter.Key()))
		val := iter.Value()
		fmt.Printf("Value length: %d bytes\n", len(val))
		preview := truncateString(string(val), 500)
		fmt.Printf("Value preview: %s\n", preview)
		fmt.Println("---")

		count++
		if count >= limit {
			break
		}
	}

	if err := iter.Error(); err != nil {
		return fmt.Errorf("iterator error: %w", err)
	}

	if count == 0 {
		fmt.Println("No keys matched the requested prefix.")
	}

	return nil
}

func promptYesNo(action string) (bool, error) {
	fmt.Printf("%s? Type 'yes' to confirm: ", action)
	reader := bufio.NewReader(os.Stdin)
	response, err := reader.ReadString('\n')
	if err != nil {
		return false, err
	}
	response = strings.TrimSpace(strings.ToLower(response))
	return response == "yes", nil
}

func truncateString(in string, max int) string {
	if len(in) <= max {
		return in
	}
	return in[:max] + "..."
}
