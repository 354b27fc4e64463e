package mcp_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/huangsam/triage/internal/contract"
	mcp_internal "github.com/huangsam/triage/internal/mcp"
	"github.com/huangsam/triage/schema"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *contract.Config {
	return &contract.Config{
		Encoding:    "auto",
		MaxK:        contract.DefaultMaxK,
		Format:      schema.AutoPredictions,
		ResultLimit: contract.DefaultResultLimit,
	}
}

func TestMCPServerHandlers(t *testing.T) {
	baseCfg := testConfig()

	// Store manager is unused by the read-only tools
	var mgr contract.StoreManager
	s := mcp_internal.NewMCPServer(baseCfg, mgr)

	ctx := context.Background()

	t.Run("evaluate_ranking scores a file", func(t *testing.T) {
		tool := s.GetTool("evaluate_ranking")
		require.NotNil(t, tool, "Tool evaluate_ranking should exist")

		predsData := "report_id,true_assignee,candidates\n" +
			"a,dev1,dev1|dev2\n" +
			"b,dev2,dev3|dev2\n"
		predsPath := filepath.Join(t.TempDir(), "preds.csv")
		require.NoError(t, os.WriteFile(predsPath, []byte(predsData), 0o644))

		req := mcp.CallToolRequest{
			Params: mcp.CallToolParams{
				Name: "evaluate_ranking",
				Arguments: map[string]any{
					"path":  predsPath,
					"max_k": 2.0,
				},
			},
		}

		res, err := tool.Handler(ctx, req)
		require.NoError(t, err)
		assert.False(t, res.IsError)

		var enriched []schema.EnrichedHitAtKResult
		text := res.Content[0].(mcp.TextContent).Text
		require.NoError(t, json.Unmarshal([]byte(text), &enriched))
		require.Len(t, enriched, 2)
		assert.Equal(t, 1.0, enriched[1].HitRate)
	})

	t.Run("evaluate_ranking missing path", func(t *testing.T) {
		tool := s.GetTool("evaluate_ranking")
		require.NotNil(t, tool)

		req := mcp.CallToolRequest{
			Params: mcp.CallToolParams{
				Name:      "evaluate_ranking",
				Arguments: map[string]any{},
			},
		}

		res, err := tool.Handler(ctx, req)
		require.NoError(t, err, "The MCP handler should not return a raw error for tool logic failures")
		assert.True(t, res.IsError, "The response should indicate an error state")
		assert.Contains(t, res.Content[0].(mcp.TextContent).Text, "path is required")
	})

	t.Run("evaluate_ranking rejects bad max_k", func(t *testing.T) {
		tool := s.GetTool("evaluate_ranking")
		require.NotNil(t, tool)

		req := mcp.CallToolRequest{
			Params: mcp.CallToolParams{
				Name: "evaluate_ranking",
				Arguments: map[string]any{
					"path":  "preds.csv",
					"max_k": 500.0, // Above MaxSupportedK
				},
			},
		}

		res, err := tool.Handler(ctx, req)
		require.NoError(t, err)
		assert.True(t, res.IsError)
		assert.Contains(t, res.Content[0].(mcp.TextContent).Text, "max_k must be between")
	})

	t.Run("dataset_stats summarizes a file", func(t *testing.T) {
		tool := s.GetTool("dataset_stats")
		require.NotNil(t, tool, "Tool dataset_stats should exist")

		csvData := "bug_id,creation_time,summary,description,assigned_to\n" +
			"1,2019-01-01,A,a,alice\n" +
			"2,2019-06-01,B,b,\n"
		csvPath := filepath.Join(t.TempDir(), "bugs.csv")
		require.NoError(t, os.WriteFile(csvPath, []byte(csvData), 0o644))

		req := mcp.CallToolRequest{
			Params: mcp.CallToolParams{
				Name: "dataset_stats",
				Arguments: map[string]any{
					"path": csvPath,
				},
			},
		}

		res, err := tool.Handler(ctx, req)
		require.NoError(t, err)
		assert.False(t, res.IsError)

		var stats schema.DatasetStats
		text := res.Content[0].(mcp.TextContent).Text
		require.NoError(t, json.Unmarshal([]byte(text), &stats))
		assert.Equal(t, 2, stats.TotalReports)
		assert.Equal(t, 1, stats.Labeled)
	})

	t.Run("dataset_stats missing file", func(t *testing.T) {
		tool := s.GetTool("dataset_stats")
		require.NotNil(t, tool)

		req := mcp.CallToolRequest{
			Params: mcp.CallToolParams{
				Name: "dataset_stats",
				Arguments: map[string]any{
					"path": filepath.Join(t.TempDir(), "missing.csv"),
				},
			},
		}

		res, err := tool.Handler(ctx, req)
		require.NoError(t, err)
		assert.True(t, res.IsError)
	})
}
