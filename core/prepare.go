package core

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/huangsam/triage/internal/contract"
	"github.com/huangsam/triage/internal/dataset"
	"github.com/huangsam/triage/internal/outwriter"
	"github.com/huangsam/triage/schema"
)

// Output file names inside the prepare output directory.
const (
	trainFileName = "train.jsonl"
	validFileName = "valid.jsonl"
	testFileName  = "test.csv"
)

// ExecutePrepare loads a tracker export, windows and splits it, and writes the
// fine-tuning and held-out files. It serves as the main entry point for the
// 'prepare' command.
func ExecutePrepare(ctx context.Context, cfg *contract.Config) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if cfg.DatasetPath == "" {
		return fmt.Errorf("dataset path is required (e.g. triage prepare bugs.csv)")
	}

	// --- 1. Load and window the export ---
	reports, err := dataset.LoadBugReports(cfg.DatasetPath, cfg.Encoding)
	if err != nil {
		return err
	}

	windowed := FilterWindow(reports, cfg.StartTime, cfg.EndTime)
	if len(windowed) == 0 {
		return fmt.Errorf("no reports with a creation time inside the requested window")
	}

	// --- 2. Keep only labeled reports; unlabeled rows cannot supervise ---
	labeled := make([]schema.BugReport, 0, len(windowed))
	for _, r := range windowed {
		if r.HasAssignee() {
			labeled = append(labeled, r)
		}
	}
	if dropped := len(windowed) - len(labeled); dropped > 0 {
		contract.LogWarn(fmt.Sprintf("dropped %d unlabeled reports", dropped), nil)
	}

	// --- 3. Trim to the exact target, oldest first ---
	trimmed, err := TrimToTarget(labeled, cfg.TargetExact, cfg.AllowBelowTarget)
	if err != nil {
		return err
	}

	// --- 4. Seeded split ---
	split, err := SplitDataset(trimmed, cfg.Seed, cfg.TrainFrac, cfg.ValidFrac)
	if err != nil {
		return err
	}

	// --- 5. Write outputs ---
	outDir := cfg.OutDir
	if outDir == "" {
		outDir = "."
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory %q: %w", outDir, err)
	}

	trainPath := filepath.Join(outDir, trainFileName)
	validPath := filepath.Join(outDir, validFileName)
	testPath := filepath.Join(outDir, testFileName)

	if err := dataset.WriteChatJSONL(split.Train, trainPath); err != nil {
		return err
	}
	if err := dataset.WriteChatJSONL(split.Valid, validPath); err != nil {
		return err
	}
	if err := dataset.WriteTestCSV(split.Test, testPath); err != nil {
		return err
	}

	summary := schema.SplitSummary{
		TotalInWindow: len(trimmed),
		TrainCount:    len(split.Train),
		ValidCount:    len(split.Valid),
		TestCount:     len(split.Test),
		TrainPath:     trainPath,
		ValidPath:     validPath,
		TestPath:      testPath,
		Seed:          cfg.Seed,
	}
	return outwriter.NewOutWriter().WriteSplit(&summary, cfg)
}

// ExecuteStats loads a tracker export and prints summary statistics.
// It serves as the main entry point for the 'stats' command.
func ExecuteStats(ctx context.Context, cfg *contract.Config) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if cfg.DatasetPath == "" {
		return fmt.Errorf("dataset path is required (e.g. triage stats bugs.csv)")
	}

	reports, err := dataset.LoadBugReports(cfg.DatasetPath, cfg.Encoding)
	if err != nil {
		return err
	}

	windowed := reports
	if !cfg.StartTime.IsZero() || !cfg.EndTime.IsZero() {
		windowed = FilterWindow(reports, cfg.StartTime, cfg.EndTime)
	}

	stats := dataset.ComputeStats(cfg.DatasetPath, windowed, cfg.ResultLimit)
	return outwriter.NewOutWriter().WriteStats(&stats, cfg)
}
