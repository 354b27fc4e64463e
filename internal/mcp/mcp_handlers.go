package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/huangsam/triage/core"
	"github.com/huangsam/triage/internal/contract"
	"github.com/huangsam/triage/internal/dataset"
	"github.com/huangsam/triage/schema"
	"github.com/mark3labs/mcp-go/mcp"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
	mgr     contract.StoreManager
}

func (h *toolHandler) handleEvaluateRanking(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	cfg.PredictionsPath = request.GetString("path", "")
	if cfg.PredictionsPath == "" {
		return mcp.NewToolResultError("path is required"), nil
	}
	if k := request.GetInt("max_k", 0); k > 0 {
		cfg.MaxK = k
	}
	if f := request.GetString("format", ""); f != "" {
		cfg.Format = schema.PredictionsFormat(f)
	}
	if cfg.MaxK < 1 || cfg.MaxK > contract.MaxSupportedK {
		return mcp.NewToolResultError(fmt.Sprintf("max_k must be between 1 and %d", contract.MaxSupportedK)), nil
	}

	preds, err := dataset.LoadPredictions(cfg.PredictionsPath, cfg.Format)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to load predictions: %v", err)), nil
	}

	results, err := core.EvaluateHitAtK(preds, cfg.MaxK)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("evaluation failed: %v", err)), nil
	}

	enriched := schema.EnrichResults(results)
	jsonData, _ := json.MarshalIndent(enriched, "", "  ")

	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleDatasetStats(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	cfg.DatasetPath = request.GetString("path", "")
	if cfg.DatasetPath == "" {
		return mcp.NewToolResultError("path is required"), nil
	}
	if e := request.GetString("encoding", ""); e != "" {
		cfg.Encoding = e
	}
	if l := request.GetInt("limit", 0); l > 0 {
		cfg.ResultLimit = l
	}

	reports, err := dataset.LoadBugReports(cfg.DatasetPath, cfg.Encoding)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to load dataset: %v", err)), nil
	}

	stats := dataset.ComputeStats(cfg.DatasetPath, reports, cfg.ResultLimit)
	jsonData, _ := json.MarshalIndent(stats, "", "  ")

	return mcp.NewToolResultText(string(jsonData)), nil
}
