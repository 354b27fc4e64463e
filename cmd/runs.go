package cmd

import (
	"fmt"

	"github.com/huangsam/triage/internal/contract"
	"github.com/huangsam/triage/internal/evalstore"
	"github.com/huangsam/triage/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// runsSetup loads minimal configuration needed for run tracking operations.
// This is used by commands that need store access without full shared setup.
func runsSetup() error {
	if err := loadConfigFile(); err != nil {
		return err
	}

	// Get run-tracking config values
	backendStr := viper.GetString("results-backend")
	connStr := viper.GetString("results-db-connect")

	// Handle empty backend as NoneBackend
	var backend schema.DatabaseBackend
	if backendStr == "" {
		backend = schema.NoneBackend
	} else {
		backend = schema.DatabaseBackend(backendStr)
	}

	// Basic validation for database backends
	if err := contract.ValidateDatabaseConnectionString(backend, connStr); err != nil {
		return err
	}

	// Get output-related config values (used by export command)
	outputFile := viper.GetString("output-file")

	// Initialize the store with the loaded config
	if err := evalstore.InitStores(backend, connStr); err != nil {
		return fmt.Errorf("failed to initialize run tracking: %w", err)
	}

	cfg.ResultsBackend = backend
	cfg.ResultsDBConnect = connStr
	cfg.OutputFile = outputFile

	return nil
}

// runsSetupWrapper wraps runsSetup to provide PreRunE for runs commands.
func runsSetupWrapper(_ *cobra.Command, _ []string) error {
	return runsSetup()
}

// runsMigrateSetup loads minimal configuration needed for migrate operations.
// This is a specialized setup that does NOT initialize stores or create tables,
// allowing migrations to run on a fresh database.
func runsMigrateSetup() error {
	if err := loadConfigFile(); err != nil {
		return err
	}

	// Get run-tracking config values
	backendStr := viper.GetString("results-backend")
	connStr := viper.GetString("results-db-connect")

	// Handle empty backend as NoneBackend
	var backend schema.DatabaseBackend
	if backendStr == "" {
		backend = schema.NoneBackend
	} else {
		backend = schema.DatabaseBackend(backendStr)
	}

	// Basic validation for database backends
	if err := contract.ValidateDatabaseConnectionString(backend, connStr); err != nil {
		return err
	}

	// For SQLite backend with empty connection string, use default path
	if backend == schema.SQLiteBackend && connStr == "" {
		connStr = contract.GetResultsDBFilePath()
	}

	cfg.ResultsBackend = backend
	cfg.ResultsDBConnect = connStr

	return nil
}

// runsMigrateSetupWrapper wraps runsMigrateSetup to provide PreRunE for migrate command.
func runsMigrateSetupWrapper(_ *cobra.Command, _ []string) error {
	return runsMigrateSetup()
}

// runsCmd focused on evaluation run data management.
//
// Note: Runs subcommands use minimal initialization (runsSetup) instead of
// the full sharedSetup used by scoring commands. This avoids dataset path
// handling and complex config processing for simple store operations.
var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "Manage recorded evaluation runs and exports",
	Long: `Manage historical evaluation run data used for tracking and reporting.

When enabled, Triage records every evaluation run, storing:
- Run metadata (timestamps, predictions file, configuration)
- Per-K hit rates for the full Hit@K curve

This enables comparing model iterations over time and exporting results
for analysis in BI tools.

Supported backends: SQLite (default), MySQL, PostgreSQL, or None (disabled)

Subcommands:
  status  - Show run tracking statistics
  export  - Export data to Parquet for analytics
  clear   - Remove all tracking data
  migrate - Run database schema migrations

Examples:
  # Check tracking status
  triage runs status

  # Export for analysis in pandas/DuckDB
  triage runs export --output-file eval-data.parquet`,
}

// runsClearCmd clears the run tracking data.
var runsClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all recorded evaluation run data",
	Long: `Delete all stored evaluation runs and hit rate history.

This removes:
- All run metadata
- Every recorded Hit@K curve

WARNING: This action cannot be undone. Consider exporting data first.

Examples:
  # Export before clearing
  triage runs export --output-file backup.parquet
  triage runs clear

  # Clear and start fresh
  triage runs clear`,
	PreRunE: runsSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := evalstore.ClearRuns(cfg.ResultsBackend, evalstore.GetDBFilePath(), cfg.ResultsDBConnect); err != nil {
			contract.LogFatal("Failed to clear run data", err)
		}
		fmt.Println("Run data cleared successfully.")
	},
}

// runsStatusCmd shows run tracking status.
var runsStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Display run tracking statistics and connection details",
	Long: `Show detailed information about recorded evaluation runs.

Displays:
- Backend type and connection status
- Total number of evaluation runs stored
- Last and oldest run timestamps
- Database table sizes

Examples:
  # Check run tracking status
  triage runs status`,
	PreRunE: runsSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		status, err := evalstore.Manager.GetResultStore().GetStatus()
		if err != nil {
			contract.LogFatal("Failed to get run tracking status", err)
		}
		evalstore.PrintStoreStatus(status)
	},
}

// runsExportCmd exports run data to Parquet files.
var runsExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export recorded runs to Parquet for BI tools and analytics",
	Long: `Export all stored evaluation data to Parquet format for analytics tools.

Exports two datasets:
- Evaluation runs - metadata about each scoring execution
- Hit rates - the per-K curve recorded for every run

Parquet format enables:
- Fast querying with DuckDB, Apache Spark, pandas
- Efficient storage with columnar compression
- Direct import into BI tools (Tableau, Metabase, etc.)

Requires: --output-file parameter

Examples:
  # Export all data
  triage runs export --output-file eval-data.parquet

  # Use with DuckDB for analysis
  triage runs export --output-file data.parquet
  duckdb -c "SELECT * FROM read_parquet('data.parquet.hit_rates.parquet') LIMIT 10"`,
	PreRunE: runsSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := evalstore.ExecuteRunsExport(cfg.OutputFile); err != nil {
			contract.LogFatal("Failed to export run data", err)
		}
	},
}

// runsMigrateCmd runs database migrations for the result store.
var runsMigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database schema migrations (upgrades/downgrades)",
	Long: `Manage database schema versions for the run tracking store.

Migrations allow:
- Upgrading to new schema versions when Triage is updated
- Safely modifying database structure without data loss
- Rolling back schema changes if needed

By default, migrates to the latest version. Use --target-version for specific versions.

Examples:
  # Migrate to latest version (default)
  triage runs migrate

  # Migrate to specific version
  triage runs migrate --target-version 1

  # Rollback to previous version
  triage runs migrate --target-version 0`,
	PreRunE: runsMigrateSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		targetVersion := viper.GetInt("target-version")
		if err := evalstore.MigrateRunTracking(cfg.ResultsBackend, cfg.ResultsDBConnect, targetVersion); err != nil {
			contract.LogFatal("Failed to run migrations", err)
		}
	},
}
