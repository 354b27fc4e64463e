package cmd

import (
	"github.com/huangsam/triage/core"
	"github.com/huangsam/triage/internal/contract"
	"github.com/spf13/cobra"
)

// statsCmd summarizes a bug tracker export.
var statsCmd = &cobra.Command{
	Use:   "stats [dataset-path]",
	Short: "Summarize a bug tracker export.",
	Long: `Summarize a bug tracker CSV export before preparing or evaluating it.

Reports:
- Total, labeled, and unlabeled report counts
- Distinct assignee count and the most frequent assignees
- The creation-time range covered by the export

Respects --start/--end, so you can preview exactly what a windowed
prepare run would operate on.

Examples:
  # Quick overview of an export
  triage stats bugs.csv

  # Top 50 assignees within a window, as JSON
  triage stats bugs.csv --start 2019-01-01 --limit 50 --output json`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteStats(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot summarize dataset", err)
		}
	},
}
