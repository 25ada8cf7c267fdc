package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/huangsam/rankviz/core"
	"github.com/huangsam/rankviz/core/algo"
	"github.com/huangsam/rankviz/internal/contract"
	"github.com/huangsam/rankviz/schema"
	"github.com/mark3labs/mcp-go/mcp"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
	loader  contract.DatasetLoader
}

// loadRequested loads the dataset named by the required path argument.
func (h *toolHandler) loadRequested(ctx context.Context, request mcp.CallToolRequest) (*schema.Dataset, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	path, err := request.RequireString("path")
	if err != nil {
		return nil, err
	}
	if path == "" {
		return nil, contract.ErrDatasetRequired
	}
	return h.loader.LoadFile(path)
}

// jsonResult marshals data into a text result.
func jsonResult(data any) *mcp.CallToolResult {
	jsonData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("encoding failed: %v", err))
	}
	return mcp.NewToolResultText(string(jsonData))
}

func (h *toolHandler) handleNormalizeDataset(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	if l := request.GetInt("limit", 0); l > 0 {
		cfg.ResultLimit = l
	}
	if cfg.ResultLimit > contract.MaxResultLimit {
		return mcp.NewToolResultError(fmt.Sprintf("limit cannot exceed %d", contract.MaxResultLimit)), nil
	}

	ds, err := h.loadRequested(ctx, request)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("load failed: %v", err)), nil
	}

	view := core.BuildView(ds, cfg.ResultLimit, nil)
	return jsonResult(view), nil
}

func (h *toolHandler) handleSummarizeDataset(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	ds, err := h.loadRequested(ctx, request)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("load failed: %v", err)), nil
	}

	summary := algo.SummarizeDataset(ds, nil)
	return jsonResult(summary), nil
}

func (h *toolHandler) handleListMetrics(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	ds, err := h.loadRequested(ctx, request)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("load failed: %v", err)), nil
	}

	view := core.BuildView(ds, 0, nil)
	return jsonResult(view.Axis), nil
}
