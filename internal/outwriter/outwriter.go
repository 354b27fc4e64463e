// Package outwriter has output and writer logic.
package outwriter

import (
	"os"
	"time"

	"github.com/huangsam/triage/internal/contract"
	"github.com/huangsam/triage/schema"
	"golang.org/x/term"
)

// OutWriter provides a unified interface for all output operations.
// It encapsulates the various output formats and provides a clean API for the core logic.
type OutWriter struct{}

// NewOutWriter creates a new instance of the output writer.
func NewOutWriter() *OutWriter {
	return &OutWriter{}
}

// WriteEval prints a Hit@K curve using the configured output format.
func (ow *OutWriter) WriteEval(report *schema.EvalReport, runID int64, cfg *contract.Config, duration time.Duration) error {
	return WriteEvalResults(report, runID, cfg, duration)
}

// WriteStats prints dataset statistics using the configured output format.
func (ow *OutWriter) WriteStats(stats *schema.DatasetStats, cfg *contract.Config) error {
	return WriteDatasetStats(stats, cfg)
}

// WriteSplit prints a prepare run summary using the configured output format.
func (ow *OutWriter) WriteSplit(summary *schema.SplitSummary, cfg *contract.Config) error {
	return WriteSplitSummary(summary, cfg)
}

// GetMaxTableTextWidth calculates the maximum width for free-text columns in
// table output based on terminal width.
func GetMaxTableTextWidth(cfg *contract.Config) int {
	var termWidth int

	// Check for absolute width override from flag/env
	if cfg.Width > 0 {
		termWidth = cfg.Width
	}

	if termWidth == 0 { // Not set by override
		// Get terminal width
		detectedWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil || detectedWidth <= 0 {
			// Fallback to conservative default if terminal size can't be detected
			termWidth = 80 // Conservative default for narrow terminals and CI
		} else {
			termWidth = detectedWidth
		}
	}

	// Reserve space for the numeric columns with table formatting
	baseWidth := 40 // K + Hits + Total + HitRate + Label with borders/padding

	// Calculate available space for free text
	available := termWidth - baseWidth
	if available < 15 {
		// Minimum reasonable text width
		return 15
	}
	if available > 70 {
		// Maximum text width to prevent overly long cells
		return 70
	}
	return available
}
