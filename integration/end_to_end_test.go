//go:build basic

// Package integration contains integration tests for triage.
// These tests are excluded from normal test runs due to build tags.
// To run these tests: go test -tags basic ./integration
// Or use: make test-integration
package integration

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeDatasetCSV writes a small labeled tracker export and returns its path.
func writeDatasetCSV(t *testing.T, rows int) string {
	t.Helper()
	var b strings.Builder
	b.WriteString("bug_id,creation_time,summary,description,assigned_to\n")
	for i := 0; i < rows; i++ {
		day := i%27 + 1
		fmt.Fprintf(&b, "%d,2019-03-%02d,Crash on save,Editor crashes when saving,dev%d\n", 100+i, day, i%4)
	}
	path := filepath.Join(t.TempDir(), "bugs.csv")
	require.NoError(t, os.WriteFile(path, []byte(b.String()), 0o644))
	return path
}

// TestTriagePrepareEndToEnd runs the prepare pipeline through the binary.
func TestTriagePrepareEndToEnd(t *testing.T) {
	datasetPath := writeDatasetCSV(t, 40)
	outDir := t.TempDir()

	err := runTriageCommand(t, "prepare", datasetPath, "--out-dir", outDir)
	require.NoError(t, err)

	for _, name := range []string{"train.jsonl", "valid.jsonl", "test.csv"} {
		info, err := os.Stat(filepath.Join(outDir, name))
		require.NoError(t, err, "expected %s to be written", name)
		assert.Greater(t, info.Size(), int64(0))
	}
}

// TestTriageStatsEndToEnd runs the stats pipeline through the binary.
func TestTriageStatsEndToEnd(t *testing.T) {
	datasetPath := writeDatasetCSV(t, 12)
	outFile := filepath.Join(t.TempDir(), "stats.txt")

	err := runTriageCommand(t, "stats", datasetPath, "--output-file", outFile)
	require.NoError(t, err)

	out, err := os.ReadFile(outFile)
	require.NoError(t, err)
	assert.Contains(t, string(out), "Total reports: 12")
}

// TestTriageEvaluateEndToEnd runs the evaluate pipeline through the binary.
func TestTriageEvaluateEndToEnd(t *testing.T) {
	predsPath := writePredictionsCSV(t)
	outFile := filepath.Join(t.TempDir(), "hitk.csv")

	// Run tracking disabled so the test never touches a shared database.
	err := runTriageCommand(t, "evaluate", predsPath,
		"--max-k", "3",
		"--results-backend", "none",
		"--output", "csv",
		"--output-file", outFile)
	require.NoError(t, err)

	out, err := os.ReadFile(outFile)
	require.NoError(t, err)
	content := string(out)
	assert.Contains(t, content, "k,hits,total,hit_rate,label")
	// All three reports hit by K=3.
	assert.Contains(t, content, "3,3,3,")
}
