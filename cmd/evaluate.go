package cmd

import (
	"github.com/huangsam/triage/core"
	"github.com/huangsam/triage/internal/contract"
	"github.com/spf13/cobra"
)

// evaluateCmd scores a predictions file with Hit@K.
var evaluateCmd = &cobra.Command{
	Use:   "evaluate [predictions-path]",
	Short: "Score ranked assignee predictions with Hit@K.",
	Long: `Score a predictions file against its ground-truth assignees and print
the Hit@K curve for every cutoff from 1 up to --max-k.

A report counts as a hit at K when its true assignee appears anywhere in
the top K predicted candidates. Matching is exact and case-sensitive, and
each report's candidate list must be free of duplicates.

Accepts CSV, JSONL, and Parquet predictions; the format is detected from
the file extension unless --format is given.

When run tracking is enabled (default: sqlite), every evaluation is
recorded with its configuration and per-K hit rates. See 'triage runs'.

Examples:
  # Score a predictions file up to K=10
  triage evaluate preds.csv

  # Only the top-3 cutoffs, as JSON
  triage evaluate preds.jsonl --max-k 3 --output json

  # Export the curve for a dashboard
  triage evaluate preds.parquet --output csv --output-file hitk.csv`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteEvaluate(rootCtx, cfg, storeManager); err != nil {
			contract.LogFatal("Cannot evaluate predictions", err)
		}
	},
}
