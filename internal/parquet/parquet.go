// Package parquet provides data structures and functions for reading and
// writing triage data as Parquet files using github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"
	"time"

	"github.com/huangsam/triage/schema"
	"github.com/parquet-go/parquet-go"
)

// PredictionRecord is one test report's model output in a Parquet predictions
// file. Candidate order encodes rank and is preserved as a list column.
type PredictionRecord struct {
	// ReportID is the tracker identifier for the report
	ReportID string `parquet:"report_id,snappy"`

	// TrueAssignee is the ground-truth developer identifier
	TrueAssignee string `parquet:"true_assignee,snappy"`

	// Candidates holds the ranked developer identifiers, highest confidence first
	Candidates []string `parquet:"candidates,list"`
}

// EvalRunRecord represents a single evaluation run with metadata.
// This struct maps to the triage_eval_runs database table.
type EvalRunRecord struct {
	// RunID is the unique identifier for this evaluation run
	RunID int64 `parquet:"run_id,snappy"`

	// StartTime is when the evaluation began
	StartTime time.Time `parquet:"start_time,snappy"`

	// EndTime is when the evaluation completed (nullable)
	EndTime *time.Time `parquet:"end_time,optional,snappy"`

	// PredictionsPath is the predictions file the run scored
	PredictionsPath string `parquet:"predictions_path,snappy"`

	// TotalReports is the number of test reports evaluated
	TotalReports int32 `parquet:"total_reports,snappy"`

	// ConfigParams contains the JSON-encoded configuration parameters (nullable)
	ConfigParams *string `parquet:"config_params,optional,snappy"`
}

// HitRateRecord is one cutoff's aggregate outcome for a recorded run.
// This struct maps to the triage_hit_rates database table.
type HitRateRecord struct {
	// RunID references the parent evaluation run
	RunID int64 `parquet:"run_id,snappy"`

	// K is the ranking cutoff
	K int32 `parquet:"k,snappy"`

	// Hits is the number of reports whose true assignee appeared within K
	Hits int32 `parquet:"hits,snappy"`

	// Total is the number of reports evaluated
	Total int32 `parquet:"total,snappy"`

	// HitRate is Hits divided by Total
	HitRate float64 `parquet:"hit_rate,snappy"`
}

// ReadPredictions loads ranked candidate lists from a Parquet predictions file.
func ReadPredictions(path string) ([]schema.RankedCandidates, error) {
	rows, err := parquet.ReadFile[PredictionRecord](path)
	if err != nil {
		return nil, fmt.Errorf("failed to read parquet predictions from %q: %w", path, err)
	}

	preds := make([]schema.RankedCandidates, len(rows))
	for i, row := range rows {
		preds[i] = schema.RankedCandidates{
			ReportID:     row.ReportID,
			Candidates:   row.Candidates,
			TrueAssignee: row.TrueAssignee,
		}
	}
	return preds, nil
}

// WritePredictions writes ranked candidate lists to a Parquet file.
func WritePredictions(preds []schema.RankedCandidates, outputPath string) error {
	rows := make([]PredictionRecord, len(preds))
	for i, p := range preds {
		rows[i] = PredictionRecord{
			ReportID:     p.ReportID,
			TrueAssignee: p.TrueAssignee,
			Candidates:   p.Candidates,
		}
	}
	return writeParquetFile(rows, outputPath)
}

// WriteEvalRunsParquet writes a slice of EvalRunRecord structs to a Parquet file.
func WriteEvalRunsParquet(data []EvalRunRecord, outputPath string) error {
	return writeParquetFile(data, outputPath)
}

// WriteHitRatesParquet writes a slice of HitRateRecord structs to a Parquet file.
func WriteHitRatesParquet(data []HitRateRecord, outputPath string) error {
	return writeParquetFile(data, outputPath)
}

// writeParquetFile writes any record slice using struct schema inference.
// The schema is automatically derived from the struct tags.
func writeParquetFile[T any](data []T, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	writer := parquet.NewGenericWriter[T](file)
	defer func() { _ = writer.Close() }()

	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}

// ConvertEvalRunRecords converts schema.EvalRunRecord to EvalRunRecord for Parquet export.
func ConvertEvalRunRecords(records []schema.EvalRunRecord) []EvalRunRecord {
	result := make([]EvalRunRecord, len(records))
	for i, record := range records {
		result[i] = EvalRunRecord{
			RunID:           record.RunID,
			StartTime:       record.StartTime,
			EndTime:         record.EndTime,
			PredictionsPath: record.PredictionsPath,
			TotalReports:    record.TotalReports,
			ConfigParams:    record.ConfigParams,
		}
	}
	return result
}

// ConvertHitRateRecords converts schema.HitRateRecord to HitRateRecord for Parquet export.
func ConvertHitRateRecords(records []schema.HitRateRecord) []HitRateRecord {
	result := make([]HitRateRecord, len(records))
	for i, record := range records {
		result[i] = HitRateRecord{
			RunID:   record.RunID,
			K:       record.K,
			Hits:    record.Hits,
			Total:   record.Total,
			HitRate: record.HitRate,
		}
	}
	return result
}
