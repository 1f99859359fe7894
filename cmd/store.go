package cmd

import (
	"fmt"
	"time"

	"github.com/cityscope/cityscope/internal/citystore"
	"github.com/cityscope/cityscope/internal/contract"
	"github.com/cityscope/cityscope/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// snapshotVersion tags persisted city snapshots with the bundled
// dataset generation they came from.
const snapshotVersion = 1

// storeSetup loads minimal configuration needed for store operations.
// This is used by commands that need store access without full shared setup.
func storeSetup() error {
	if err := loadConfigFile(); err != nil {
		return err
	}

	// Get store-related config values
	backendStr := viper.GetString("store-backend")
	connStr := viper.GetString("store-db-connect")

	// Handle empty backend as NoneBackend
	var backend schema.StoreBackend
	if backendStr == "" {
		backend = schema.NoneBackend
	} else {
		backend = schema.StoreBackend(backendStr)
	}

	// Basic validation for database backends
	if err := contract.ValidateDatabaseConnectionString(backend, connStr); err != nil {
		return err
	}

	// Get output-related config values (used by export command)
	outputFile := viper.GetString("output-file")

	// Initialize stores with the loaded config
	if err := citystore.InitStores(backend, connStr); err != nil {
		return fmt.Errorf("failed to initialize store: %w", err)
	}

	cfg.StoreBackend = backend
	cfg.StoreDBConnect = connStr
	cfg.OutputFile = outputFile

	return nil
}

// storeSetupWrapper wraps storeSetup to provide PreRunE for store commands.
func storeSetupWrapper(_ *cobra.Command, _ []string) error {
	return storeSetup()
}

// storeMigrateSetup loads minimal configuration needed for migrate operations.
// This is a specialized setup that does NOT initialize stores or create tables,
// allowing migrations to run on a fresh database.
func storeMigrateSetup() error {
	if err := loadConfigFile(); err != nil {
		return err
	}

	// Get store-related config values
	backendStr := viper.GetString("store-backend")
	connStr := viper.GetString("store-db-connect")

	// Handle empty backend as NoneBackend
	var backend schema.StoreBackend
	if backendStr == "" {
		backend = schema.NoneBackend
	} else {
		backend = schema.StoreBackend(backendStr)
	}

	// Basic validation for database backends
	if err := contract.ValidateDatabaseConnectionString(backend, connStr); err != nil {
		return err
	}

	// For SQLite backend with empty connection string, use default path
	if backend == schema.SQLiteBackend && connStr == "" {
		connStr = citystore.GetDBFilePath()
	}

	cfg.StoreBackend = backend
	cfg.StoreDBConnect = connStr

	return nil
}

// storeMigrateSetupWrapper wraps storeMigrateSetup to provide PreRunE for migrate command.
func storeMigrateSetupWrapper(_ *cobra.Command, _ []string) error {
	return storeMigrateSetup()
}

// storeCmd focused on persistence management.
//
// Note: Store subcommands use minimal initialization (storeSetup) instead of
// the full sharedSetup used by scoring commands. This avoids preference
// loading and complex config processing for simple store operations.
var storeCmd = &cobra.Command{
	Use:   "store",
	Short: "Manage city snapshots and ranking run history",
	Long: `Manage the persistence layer behind ranking runs and city snapshots.

When enabled, Cityscope tracks every ranking run, storing:
- Run metadata (timestamp, configuration, total cities)
- Per-city scores across all six categories
- Inclusion status and the filter that excluded a city, if any

It can also persist versioned snapshots of the city catalog itself.

Supported backends: SQLite (default), MySQL, PostgreSQL, or None (disabled)

Subcommands:
  status   - Show snapshot and run tracking statistics
  snapshot - Persist the current city catalog
  clear    - Remove all persisted data
  migrate  - Run database schema migrations

Examples:
  # Check store status
  cityscope store status

  # Persist the bundled catalog into SQLite
  cityscope store snapshot`,
}

// storeStatusCmd shows snapshot and run store status.
var storeStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Display store statistics and connection details",
	Long: `Show detailed information about the persistence layer.

Displays:
- Backend type and connection status
- Number of persisted city snapshots and their age range
- Total number of ranking runs stored
- Last run timestamp and total city score rows

Use this to:
- Verify run tracking is enabled and working
- Monitor data accumulation over time
- Check database connection health

Examples:
  # Check store status
  cityscope store status`,
	PreRunE: storeSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		snapshotStore := citystore.Manager.GetSnapshotStore()
		if snapshotStore != nil {
			status, err := snapshotStore.GetStatus()
			if err != nil {
				contract.LogFatal("Failed to get snapshot status", err)
			}
			citystore.PrintSnapshotStatus(status)
		}

		runStore := citystore.Manager.GetRunStore()
		if runStore != nil {
			status, err := runStore.GetStatus()
			if err != nil {
				contract.LogFatal("Failed to get run status", err)
			}
			citystore.PrintRunStatus(status)
		}
	},
}

// storeSnapshotCmd persists the current city catalog.
var storeSnapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Persist the current city catalog to the store",
	Long: `Write every city in the active catalog to the snapshot store.

Snapshots are versioned and timestamped, so later runs can tell which
generation of the catalog produced a given ranking. Re-running the
command overwrites each city's snapshot with the current values.

Examples:
  # Snapshot the bundled catalog
  cityscope store snapshot

  # Snapshot a custom dataset
  cityscope store snapshot --data-file my-cities.json`,
	PreRunE: storeSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		store := citystore.Manager.GetSnapshotStore()
		if store == nil {
			contract.LogFatal("Cannot snapshot cities", fmt.Errorf("snapshot store is not initialized; set --store-backend"))
		}

		source, err := citystore.NewFileSource(viper.GetString("data-file"))
		if err != nil {
			contract.LogFatal("Cannot load city data", err)
		}

		count, err := citystore.SnapshotCities(rootCtx, source, store, snapshotVersion, time.Now().Unix())
		if err != nil {
			contract.LogFatal("Failed to snapshot cities", err)
		}
		fmt.Printf("Persisted %d city snapshots.\n", count)
	},
}

// storeClearCmd clears all persisted data.
var storeClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all persisted snapshots and run history",
	Long: `Delete all stored city snapshots and ranking run history.

This removes:
- All persisted city snapshots
- All ranking run metadata
- All per-city score rows

WARNING: This action cannot be undone. Consider exporting data first.

Examples:
  # Export before clearing
  cityscope export --output-file backup
  cityscope store clear`,
	PreRunE: storeSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := citystore.ClearStore(cfg.StoreBackend, citystore.GetDBFilePath(), cfg.StoreDBConnect); err != nil {
			contract.LogFatal("Failed to clear store data", err)
		}
		fmt.Println("Store data cleared successfully.")
	},
}

// storeMigrateCmd runs database migrations for the store.
var storeMigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database schema migrations (upgrades/downgrades)",
	Long: `Manage database schema versions for the persistence store.

Migrations allow:
- Upgrading to new schema versions when Cityscope is updated
- Safely modifying database structure without data loss
- Rolling back schema changes if needed

By default, migrates to the latest version. Use --target-version for specific versions.

Examples:
  # Migrate to latest version (default)
  cityscope store migrate

  # Migrate to specific version
  cityscope store migrate --target-version 1

  # Rollback to initial state
  cityscope store migrate --target-version 0`,
	PreRunE: storeMigrateSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		targetVersion := viper.GetInt("target-version")
		if err := citystore.MigrateStore(cfg.StoreBackend, cfg.StoreDBConnect, targetVersion); err != nil {
			contract.LogFatal("Failed to run migrations", err)
		}
	},
}
