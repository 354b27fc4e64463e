package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/huangsam/triage/internal/contract"
	"github.com/huangsam/triage/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// WriteDatasetStats outputs dataset statistics, dispatching based on the output format configured.
func WriteDatasetStats(stats *schema.DatasetStats, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, stats)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			header := []string{"assignee", "reports"}
			return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
				for _, a := range stats.TopAssignees {
					if err := csvWriter.Write([]string{a.Assignee, strconv.Itoa(a.Reports)}); err != nil {
						return err
					}
				}
				return nil
			})
		}, "Wrote CSV")
	case schema.ParquetOut:
		return fmt.Errorf("parquet output is not supported for dataset stats")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeStatsTable(stats, cfg, w)
		}, "Wrote table")
	}
}

// writeStatsTable generates and writes the human-readable stats summary.
func writeStatsTable(stats *schema.DatasetStats, cfg *contract.Config, writer io.Writer) error {
	fmt.Fprintf(writer, "Dataset: %s\n", stats.Path)
	fmt.Fprintf(writer, "Total reports: %d (%d labeled, %d unlabeled)\n",
		stats.TotalReports, stats.Labeled, stats.Unlabeled)
	fmt.Fprintf(writer, "Distinct assignees: %d\n", stats.DistinctAssignees)
	if !stats.OldestReport.IsZero() {
		fmt.Fprintf(writer, "Report window: %s to %s\n",
			stats.OldestReport.Format("2006-01-02"), stats.NewestReport.Format("2006-01-02"))
	}

	if len(stats.TopAssignees) == 0 {
		return nil
	}

	fmt.Fprintln(writer, "\nTop assignees:")
	table := tablewriter.NewWriter(writer)
	table.Header([]string{"Rank", "Assignee", "Reports"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	maxWidth := GetMaxTableTextWidth(cfg)
	var data [][]string
	for i, a := range stats.TopAssignees {
		data = append(data, []string{
			strconv.Itoa(i + 1),
			contract.TruncateText(a.Assignee, maxWidth),
			strconv.Itoa(a.Reports),
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}

// WriteSplitSummary outputs a prepare run summary, dispatching based on the output format configured.
func WriteSplitSummary(summary *schema.SplitSummary, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, summary)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			header := []string{"split", "count", "path"}
			return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
				rows := [][]string{
					{string(schema.TrainSplit), strconv.Itoa(summary.TrainCount), summary.TrainPath},
					{string(schema.ValidSplit), strconv.Itoa(summary.ValidCount), summary.ValidPath},
					{string(schema.TestSplit), strconv.Itoa(summary.TestCount), summary.TestPath},
				}
				for _, row := range rows {
					if err := csvWriter.Write(row); err != nil {
						return err
					}
				}
				return nil
			})
		}, "Wrote CSV")
	case schema.ParquetOut:
		return fmt.Errorf("parquet output is not supported for split summaries")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			fmt.Fprintf(w, "Prepared %d reports (seed %d)\n", summary.TotalInWindow, summary.Seed)
			fmt.Fprintf(w, "  %s: %d -> %s\n", schema.TrainSplit, summary.TrainCount, summary.TrainPath)
			fmt.Fprintf(w, "  %s: %d -> %s\n", schema.ValidSplit, summary.ValidCount, summary.ValidPath)
			fmt.Fprintf(w, "  %s: %d -> %s\n", schema.TestSplit, summary.TestCount, summary.TestPath)
			return nil
		}, "Wrote summary")
	}
}
