// Package cmd defines the command-line interface for triage.
package cmd

import (
	"github.com/huangsam/triage/internal/contract"
	"github.com/huangsam/triage/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(prepareCmd)
	rootCmd.AddCommand(evaluateCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(runsCmd)
	rootCmd.AddCommand(mcpCmd)
	rootCmd.AddCommand(versionCmd)

	// Add the runs subcommands to the parent runs command
	runsCmd.AddCommand(runsStatusCmd)
	runsCmd.AddCommand(runsClearCmd)
	runsCmd.AddCommand(runsExportCmd)
	runsCmd.AddCommand(runsMigrateCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().String("start", "", "Start date in YYYY-MM-DD or ISO8601")
	rootCmd.PersistentFlags().String("end", "", "End date in YYYY-MM-DD or ISO8601")
	rootCmd.PersistentFlags().IntP("limit", "l", contract.DefaultResultLimit, "Number of results to display")
	rootCmd.PersistentFlags().Int("precision", contract.DefaultPrecision, "Decimal precision for numeric columns")
	rootCmd.PersistentFlags().String("output", string(schema.TextOut), "Output format: text or csv or json or parquet")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write output to")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored labels in output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("results-backend", string(schema.SQLiteBackend), "Run tracking backend: sqlite or mysql or postgresql or none")
	rootCmd.PersistentFlags().String("results-db-connect", "", "Database connection string for mysql/postgresql (e.g., user:pass@tcp(host:port)/dbname)")
	rootCmd.PersistentFlags().String("profile", "", "Enable profiling and write profiles to files with this prefix")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Bind all flags of prepareCmd to Viper
	prepareCmd.Flags().String("out-dir", "", "Directory to write train/valid/test files to (default: current directory)")
	prepareCmd.Flags().String("encoding", "auto", "Dataset encoding: auto or utf-8 or latin-1")
	prepareCmd.Flags().Int64("seed", contract.DefaultSeed, "Seed for the deterministic shuffle")
	prepareCmd.Flags().Float64("train-frac", contract.DefaultTrainFrac, "Fraction of reports assigned to the training split")
	prepareCmd.Flags().Float64("valid-frac", contract.DefaultValidFrac, "Fraction of reports assigned to the validation split")
	prepareCmd.Flags().Int("target-exact", 0, "Trim the shuffled dataset to exactly this many reports (0 = keep all)")
	prepareCmd.Flags().Bool("allow-below-target", false, "Proceed with fewer reports than target-exact instead of failing")
	if err := viper.BindPFlags(prepareCmd.Flags()); err != nil {
		contract.LogFatal("Error binding prepare flags", err)
	}

	// Bind all flags of evaluateCmd to Viper
	evaluateCmd.Flags().Int("max-k", contract.DefaultMaxK, "Largest ranking cutoff to score")
	evaluateCmd.Flags().String("format", string(schema.AutoPredictions), "Predictions encoding: auto or csv or jsonl or parquet")
	if err := viper.BindPFlags(evaluateCmd.Flags()); err != nil {
		contract.LogFatal("Error binding evaluate flags", err)
	}

	// Bind all flags of runsMigrateCmd to Viper
	runsMigrateCmd.Flags().Int("target-version", -1, "Target migration version (-1 means latest, 0 means rollback to initial state)")
	if err := viper.BindPFlags(runsMigrateCmd.Flags()); err != nil {
		contract.LogFatal("Error binding runs migrate flags", err)
	}
}
