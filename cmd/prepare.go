package cmd

import (
	"github.com/huangsam/triage/core"
	"github.com/huangsam/triage/internal/contract"
	"github.com/spf13/cobra"
)

// prepareCmd turns a bug tracker export into fine-tuning splits.
var prepareCmd = &cobra.Command{
	Use:   "prepare [dataset-path]",
	Short: "Split a bug tracker export into train/valid/test files.",
	Long: `Load a bug tracker CSV export, window and shuffle it deterministically,
and write the three fine-tuning splits:

- train.jsonl - chat-formatted examples for supervised fine-tuning
- valid.jsonl - held-out chat examples for validation during training
- test.csv    - unlabeled-prompt test rows with the assignee kept separate

Reports without a resolved assignee are dropped before splitting so every
training example carries a label. The shuffle is seeded, so the same input
and seed always produce the same splits.

Examples:
  # Default 80/10/10 split in the current directory
  triage prepare bugs.csv

  # Reproduce a fixed-size dataset into a target directory
  triage prepare bugs.csv --target-exact 10000 --out-dir data/

  # Restrict to a reporting window first
  triage prepare bugs.csv --start 2019-01-01 --end 2019-12-31`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecutePrepare(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot prepare dataset", err)
		}
	},
}
