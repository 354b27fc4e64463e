// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/huangsam/triage/internal/contract"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// NewMCPServer initializes and configures the Triage MCP server without starting it.
// This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config, mgr contract.StoreManager) *server.MCPServer {
	s := server.NewMCPServer(
		"Triage Evaluation Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
		mgr:     mgr,
	}

	// --- 1. Tool: evaluate_ranking ---
	s.AddTool(mcp.NewTool("evaluate_ranking",
		mcp.WithDescription("Score a predictions file against its ground-truth assignees and return the Hit@K curve."),
		mcp.WithString("path", mcp.Description("Path to the predictions file."), mcp.Required()),
		mcp.WithNumber("max_k", mcp.Description("Largest ranking cutoff to score. Defaults to 10.")),
		mcp.WithString("format", mcp.Description("Predictions encoding (auto, csv, jsonl, parquet). Defaults to 'auto'."), mcp.Enum("auto", "csv", "jsonl", "parquet")),
	), h.handleEvaluateRanking)

	// --- 2. Tool: dataset_stats ---
	s.AddTool(mcp.NewTool("dataset_stats",
		mcp.WithDescription("Summarize a bug-report CSV export: label coverage, assignee distribution, and time range."),
		mcp.WithString("path", mcp.Description("Path to the dataset CSV export."), mcp.Required()),
		mcp.WithString("encoding", mcp.Description("Input encoding (auto, utf-8, latin-1). Defaults to 'auto'."), mcp.Enum("auto", "utf-8", "latin-1")),
		mcp.WithNumber("limit", mcp.Description("Limit the number of top assignees returned.")),
	), h.handleDatasetStats)

	return s
}

// StartMCPServer starts the Triage MCP server.
func StartMCPServer(_ context.Context, baseCfg *contract.Config, mgr contract.StoreManager) error {
	s := NewMCPServer(baseCfg, mgr)
	return server.ServeStdio(s)
}
