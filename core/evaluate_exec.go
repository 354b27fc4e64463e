package core

import (
	"context"
	"fmt"
	"time"

	"github.com/huangsam/triage/internal/contract"
	"github.com/huangsam/triage/internal/dataset"
	"github.com/huangsam/triage/internal/outwriter"
	"github.com/huangsam/triage/schema"
)

// ExecuteEvaluate scores a predictions file against its ground-truth labels
// and prints the Hit@K curve. It serves as the main entry point for the
// 'evaluate' command. Run tracking is best effort; a broken store never fails
// the evaluation itself.
func ExecuteEvaluate(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager) error {
	start := time.Now()
	if err := ctx.Err(); err != nil {
		return err
	}
	if cfg.PredictionsPath == "" {
		return fmt.Errorf("predictions path is required (e.g. triage evaluate preds.csv)")
	}

	// --- 1. Load predictions ---
	preds, err := dataset.LoadPredictions(cfg.PredictionsPath, cfg.Format)
	if err != nil {
		return err
	}

	// --- 2. Begin run tracking (if configured) ---
	var runID int64
	var store contract.ResultStore
	if mgr != nil {
		store = mgr.GetResultStore()
	}
	if store != nil {
		configParams := map[string]any{
			"max_k":  cfg.MaxK,
			"format": string(cfg.Format),
		}
		runID, err = store.BeginRun(start, cfg.PredictionsPath, configParams)
		if err != nil {
			contract.LogWarn("Run tracking initialization failed", err)
			runID = 0
		}
	}

	// --- 3. Score the curve ---
	results, err := EvaluateHitAtK(preds, cfg.MaxK)
	if err != nil {
		return err
	}

	// --- 4. End run tracking ---
	if store != nil && runID > 0 {
		if err := store.RecordHitRates(runID, results); err != nil {
			contract.LogWarn("Failed to record hit rates", err)
		}
		if err := store.EndRun(runID, time.Now(), len(preds)); err != nil {
			contract.LogWarn("Failed to finalize run tracking", err)
		}
	}

	report := schema.EvalReport{
		PredictionsPath: cfg.PredictionsPath,
		TotalReports:    len(preds),
		MaxK:            cfg.MaxK,
		Results:         results,
	}
	duration := time.Since(start)
	return outwriter.NewOutWriter().WriteEval(&report, runID, cfg, duration)
}
