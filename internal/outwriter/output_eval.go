package outwriter

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/huangsam/triage/internal/contract"
	"github.com/huangsam/triage/internal/parquet"
	"github.com/huangsam/triage/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// WriteEvalResults outputs a Hit@K curve, dispatching based on the output format configured.
func WriteEvalResults(report *schema.EvalReport, runID int64, cfg *contract.Config, duration time.Duration) error {
	// Create formatters using helper
	fmtFloat, intFmt := createFormatters(cfg.Precision)

	// Dispatcher: Handle different output formats
	switch cfg.Output {
	case schema.JSONOut:
		if err := writeEvalJSONResults(report, cfg); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeEvalCSVResults(report, cfg, fmtFloat, intFmt); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.ParquetOut:
		if err := writeEvalParquetResults(report, runID, cfg); err != nil {
			return fmt.Errorf("error writing Parquet output: %w", err)
		}
	default:
		// Default to human-readable table
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeEvalTable(report, cfg, fmtFloat, intFmt, duration, w)
		}, "Wrote table")
	}
	return nil
}

// writeEvalJSONResults handles opening the file and calling the JSON writer.
func writeEvalJSONResults(report *schema.EvalReport, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		type JSONEvalReport struct {
			Results []schema.EnrichedHitAtKResult `json:"results"`
			*schema.EvalReport
		}
		return writeJSON(w, JSONEvalReport{
			Results:    schema.EnrichResults(report.Results),
			EvalReport: report,
		})
	}, "Wrote JSON")
}

// writeEvalCSVResults handles opening the file and calling the CSV writer.
func writeEvalCSVResults(report *schema.EvalReport, cfg *contract.Config, fmtFloat func(float64) string, intFmt string) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		header := []string{"k", "hits", "total", "hit_rate", "label"}
		return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
			for _, r := range report.Results {
				rec := []string{
					fmt.Sprintf(intFmt, r.K),
					fmt.Sprintf(intFmt, r.Hits),
					fmt.Sprintf(intFmt, r.Total),
					fmtFloat(r.HitRate),
					schema.GetPlainLabel(r.HitRate),
				}
				if err := csvWriter.Write(rec); err != nil {
					return err
				}
			}
			return nil
		})
	}, "Wrote CSV")
}

// writeEvalParquetResults writes the curve as a Parquet file. Parquet is a
// binary format, so an explicit output file is required.
func writeEvalParquetResults(report *schema.EvalReport, runID int64, cfg *contract.Config) error {
	if cfg.OutputFile == "" {
		return errors.New("--output-file is required for parquet output")
	}

	rows := make([]parquet.HitRateRecord, len(report.Results))
	for i, r := range report.Results {
		rows[i] = parquet.HitRateRecord{
			RunID:   runID,
			K:       int32(r.K),
			Hits:    int32(r.Hits),
			Total:   int32(r.Total),
			HitRate: r.HitRate,
		}
	}
	if err := parquet.WriteHitRatesParquet(rows, cfg.OutputFile); err != nil {
		return err
	}
	fmt.Printf("💾 Wrote Parquet to %s\n", cfg.OutputFile)
	return nil
}

// writeEvalTable generates and writes the human-readable table.
func writeEvalTable(report *schema.EvalReport, cfg *contract.Config, fmtFloat func(float64) string, intFmt string, duration time.Duration, writer io.Writer) error {
	table := tablewriter.NewWriter(writer)

	// 1. Define Headers
	headers := []string{"K", "Hits", "Total", "HitRate", "Label"}
	table.Header(headers)

	// 2. Configure Separators/Borders to match a minimal look
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	// 3. Populate Rows
	var data [][]string
	for _, r := range report.Results {
		label := schema.GetPlainLabel(r.HitRate)
		if cfg.UseColors {
			label = contract.GetColorLabel(r.HitRate)
		}
		row := []string{
			strconv.Itoa(r.K),
			fmt.Sprintf(intFmt, r.Hits),
			fmt.Sprintf(intFmt, r.Total),
			fmtFloat(r.HitRate),
			label,
		}
		data = append(data, row)
	}

	// 4. Render the table
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Scored %d reports from %s up to K=%d\n",
		report.TotalReports, report.PredictionsPath, report.MaxK); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Evaluation completed in %v. Results backend: %s\n", duration, cfg.ResultsBackend); err != nil {
		return err
	}
	return nil
}
