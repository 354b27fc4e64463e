package dataset

import (
	"bufio"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/huangsam/triage/internal/parquet"
	"github.com/huangsam/triage/schema"
)

// candidateSeparator joins ranked candidates inside one CSV cell.
const candidateSeparator = "|"

// LoadPredictions reads a predictions file into ranked candidate lists.
// Format auto selects by file extension.
func LoadPredictions(path string, format schema.PredictionsFormat) ([]schema.RankedCandidates, error) {
	if format == schema.AutoPredictions {
		format = detectPredictionsFormat(path)
	}
	switch format {
	case schema.CSVPredictions:
		return loadPredictionsCSV(path)
	case schema.JSONLPredictions:
		return loadPredictionsJSONL(path)
	case schema.ParquetPredictions:
		return parquet.ReadPredictions(path)
	default:
		return nil, fmt.Errorf("unsupported predictions format %q", format)
	}
}

// detectPredictionsFormat maps a file extension to a predictions format,
// defaulting to CSV for anything unrecognized.
func detectPredictionsFormat(path string) schema.PredictionsFormat {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jsonl", ".json":
		return schema.JSONLPredictions
	case ".parquet":
		return schema.ParquetPredictions
	default:
		return schema.CSVPredictions
	}
}

// loadPredictionsCSV reads report_id,true_assignee,candidates rows where the
// candidates cell joins ranked identifiers with "|".
func loadPredictionsCSV(path string) ([]schema.RankedCandidates, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open predictions %q: %w", path, err)
	}
	defer func() { _ = file.Close() }()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = 3

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read predictions header: %w", err)
	}
	if got := strings.TrimPrefix(strings.TrimSpace(header[0]), "\ufeff"); got != "report_id" {
		return nil, fmt.Errorf("unexpected predictions header, first column is %q", got)
	}

	var preds []schema.RankedCandidates
	line := 1
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("failed to read predictions row %d: %w", line, err)
		}
		preds = append(preds, schema.RankedCandidates{
			ReportID:     strings.TrimSpace(row[0]),
			TrueAssignee: strings.TrimSpace(row[1]),
			Candidates:   splitCandidates(row[2]),
		})
	}
	return preds, nil
}

// splitCandidates breaks a joined candidates cell into ranked identifiers,
// dropping empty fragments so a trailing separator cannot inject a blank
// candidate.
func splitCandidates(cell string) []string {
	var out []string
	for _, c := range strings.Split(cell, candidateSeparator) {
		if c = strings.TrimSpace(c); c != "" {
			out = append(out, c)
		}
	}
	return out
}

// loadPredictionsJSONL reads one RankedCandidates JSON object per line.
func loadPredictionsJSONL(path string) ([]schema.RankedCandidates, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open predictions %q: %w", path, err)
	}
	defer func() { _ = file.Close() }()

	var preds []schema.RankedCandidates
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		var p schema.RankedCandidates
		if err := json.Unmarshal([]byte(text), &p); err != nil {
			return nil, fmt.Errorf("failed to parse predictions line %d: %w", line, err)
		}
		preds = append(preds, p)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan predictions %q: %w", path, err)
	}
	return preds, nil
}
