package evalstore

import (
	"errors"
	"fmt"

	"github.com/huangsam/triage/internal/parquet"
)

// ExecuteRunsExport exports recorded runs and their Hit@K curves to Parquet files.
func ExecuteRunsExport(outputFile string) error {
	// Validate that output file is specified
	if outputFile == "" {
		return errors.New("--output-file is required for export command")
	}

	// Get the results store
	store := Manager.GetResultStore()
	if store == nil {
		return errors.New("run tracking is not initialized")
	}

	// Check if there's any data to export
	status, err := store.GetStatus()
	if err != nil {
		return fmt.Errorf("failed to get store status: %w", err)
	}

	if status.TotalRuns == 0 {
		return errors.New("no evaluation runs found to export")
	}

	fmt.Printf("Exporting data from %s backend...\n", status.Backend)
	fmt.Printf("Total evaluation runs: %d\n", status.TotalRuns)
	fmt.Printf("Total hit rate rows: %d\n", status.TableSizes[hitRatesTable])

	// Retrieve all evaluation runs
	runs, err := store.FetchRuns()
	if err != nil {
		return fmt.Errorf("failed to retrieve evaluation runs: %w", err)
	}

	// Retrieve all hit rate rows
	hitRates, err := store.FetchHitRates()
	if err != nil {
		return fmt.Errorf("failed to retrieve hit rates: %w", err)
	}

	// Convert to Parquet format
	parquetRuns := parquet.ConvertEvalRunRecords(runs)
	parquetHitRates := parquet.ConvertHitRateRecords(hitRates)

	// Write evaluation runs to Parquet
	runsFile := outputFile + ".eval_runs.parquet"
	if err := parquet.WriteEvalRunsParquet(parquetRuns, runsFile); err != nil {
		return fmt.Errorf("failed to write evaluation runs: %w", err)
	}
	fmt.Printf("Exported %d evaluation runs to: %s\n", len(parquetRuns), runsFile)

	// Write hit rates to Parquet
	hitRatesFile := outputFile + ".hit_rates.parquet"
	if err := parquet.WriteHitRatesParquet(parquetHitRates, hitRatesFile); err != nil {
		return fmt.Errorf("failed to write hit rates: %w", err)
	}
	fmt.Printf("Exported %d hit rate rows to: %s\n", len(parquetHitRates), hitRatesFile)

	fmt.Println("\nExport complete! The Parquet files can be used with:")
	fmt.Println("  - Apache Spark")
	fmt.Println("  - Apache Arrow")
	fmt.Println("  - Pandas (via pyarrow)")
	fmt.Println("  - DuckDB")
	fmt.Println("  - Any other Parquet-compatible tool")

	return nil
}
