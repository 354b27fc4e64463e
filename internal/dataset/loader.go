// Package dataset reads and writes the bug-report corpora the triage pipeline
// consumes: tracker CSV exports on the way in, fine-tuning JSONL and held-out
// test CSV files on the way out.
package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/huangsam/triage/internal/contract"
	"github.com/huangsam/triage/schema"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// Column names recognized in tracker CSV exports. Update columns hold edited
// values and win over their originals when both are present.
const (
	colBugID         = "bug_id"
	colID            = "id"
	colCreationTime  = "creation_time"
	colSummary       = "summary"
	colSummaryUpdate = "summary_update"
	colDescription   = "description"
	colDescUpdate    = "description_update"
	colAssignedTo    = "assigned_to"
	colAssigneeEmail = "assigned_to_detail.email"
	colComponent     = "component"
	colSeverity      = "severity"
)

// LoadBugReports reads a tracker CSV export into bug reports. The encoding
// argument accepts "utf-8" or "latin-1"; "auto" or an empty value means utf-8
// with a latin-1 retry, which is how most real exports decode.
func LoadBugReports(path string, encoding string) ([]schema.BugReport, error) {
	switch encoding {
	case "utf-8":
		return loadWithDecoder(path, false)
	case "latin-1":
		return loadWithDecoder(path, true)
	case "auto", "":
		reports, err := loadWithDecoder(path, false)
		if err != nil && strings.Contains(err.Error(), "invalid utf-8") {
			contract.LogWarn("utf-8 decode failed, retrying as latin-1", err)
			return loadWithDecoder(path, true)
		}
		return reports, err
	default:
		return nil, fmt.Errorf("unsupported encoding %q", encoding)
	}
}

// loadWithDecoder does one decode pass over the file.
func loadWithDecoder(path string, latin1 bool) ([]schema.BugReport, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset %q: %w", path, err)
	}
	defer func() { _ = file.Close() }()

	var source io.Reader = file
	if latin1 {
		source = transform.NewReader(file, charmap.ISO8859_1.NewDecoder())
	}

	reader := csv.NewReader(source)
	reader.FieldsPerRecord = -1 // ragged exports are common
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset header: %w", err)
	}
	cols := indexColumns(header)
	if _, ok := cols[colCreationTime]; !ok {
		return nil, fmt.Errorf("dataset %q has no %s column", path, colCreationTime)
	}

	var reports []schema.BugReport
	line := 1
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("failed to read dataset row %d: %w", line, err)
		}
		if !latin1 && !rowIsUTF8(row) {
			return nil, fmt.Errorf("dataset row %d contains invalid utf-8", line)
		}
		reports = append(reports, rowToReport(row, cols))
	}
	return reports, nil
}

// indexColumns maps trimmed header names to their positions.
func indexColumns(header []string) map[string]int {
	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))] = i
	}
	return cols
}

// rowIsUTF8 reports whether every cell in the row is valid utf-8. The csv
// reader passes bytes through untouched, so a latin-1 export surfaces here.
func rowIsUTF8(row []string) bool {
	for _, cell := range row {
		if !utf8.ValidString(cell) {
			return false
		}
	}
	return true
}

// rowToReport folds one CSV row into a report. Update columns win over their
// originals, and the detail email wins over the bare assigned_to handle.
func rowToReport(row []string, cols map[string]int) schema.BugReport {
	cell := func(name string) string {
		i, ok := cols[name]
		if !ok || i >= len(row) {
			return ""
		}
		return row[i]
	}

	report := schema.BugReport{
		ID:        contract.Coalesce(cell(colBugID), cell(colID)),
		Title:     contract.Coalesce(cell(colSummaryUpdate), cell(colSummary)),
		Body:      contract.Coalesce(cell(colDescUpdate), cell(colDescription)),
		Assignee:  contract.Coalesce(cell(colAssigneeEmail), cell(colAssignedTo)),
		Component: strings.TrimSpace(cell(colComponent)),
		Severity:  strings.TrimSpace(cell(colSeverity)),
	}
	if t, err := contract.ParseCreationTime(strings.TrimSpace(cell(colCreationTime))); err == nil {
		report.CreatedAt = t
	}
	return report
}

// ComputeStats summarizes a loaded dataset for the stats command.
func ComputeStats(path string, reports []schema.BugReport, topN int) schema.DatasetStats {
	stats := schema.DatasetStats{
		Path:         path,
		TotalReports: len(reports),
	}

	counts := make(map[string]int)
	for _, r := range reports {
		if r.HasAssignee() {
			stats.Labeled++
			counts[r.Assignee]++
		} else {
			stats.Unlabeled++
		}
		if r.CreatedAt.IsZero() {
			continue
		}
		if stats.OldestReport.IsZero() || r.CreatedAt.Before(stats.OldestReport) {
			stats.OldestReport = r.CreatedAt
		}
		if r.CreatedAt.After(stats.NewestReport) {
			stats.NewestReport = r.CreatedAt
		}
	}
	stats.DistinctAssignees = len(counts)
	stats.TopAssignees = topAssignees(counts, topN)
	return stats
}

// topAssignees ranks assignees by report count, ties broken by name so the
// output is stable across runs.
func topAssignees(counts map[string]int, topN int) []schema.AssigneeCount {
	ranked := make([]schema.AssigneeCount, 0, len(counts))
	for assignee, count := range counts {
		ranked = append(ranked, schema.AssigneeCount{Assignee: assignee, Reports: count})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Reports != ranked[j].Reports {
			return ranked[i].Reports > ranked[j].Reports
		}
		return ranked[i].Assignee < ranked[j].Assignee
	})
	if topN > 0 && len(ranked) > topN {
		ranked = ranked[:topN]
	}
	return ranked
}
