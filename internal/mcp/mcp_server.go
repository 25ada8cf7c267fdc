// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/huangsam/rankviz/internal/contract"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// NewMCPServer initializes and configures the rankviz MCP server without starting it.
// This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config, loader contract.DatasetLoader) *server.MCPServer {
	s := server.NewMCPServer(
		"Rankviz Ranking Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
		loader:  loader,
	}

	// --- 1. Tool: normalize_dataset ---
	s.AddTool(mcp.NewTool("normalize_dataset",
		mcp.WithDescription("Normalize every metric of a ranked experiment dataset to [0,1] scores where 1.0 is best."),
		mcp.WithString("path", mcp.Description("Path to the JSON or YAML dataset file."), mcp.Required()),
		mcp.WithNumber("limit", mcp.Description("Limit the number of configurations returned. Normalization always uses all of them.")),
	), h.handleNormalizeDataset)

	// --- 2. Tool: summarize_dataset ---
	s.AddTool(mcp.NewTool("summarize_dataset",
		mcp.WithDescription("Compute descriptive statistics per metric and the rank impact of each behaviour."),
		mcp.WithString("path", mcp.Description("Path to the JSON or YAML dataset file."), mcp.Required()),
	), h.handleSummarizeDataset)

	// --- 3. Tool: list_metrics ---
	s.AddTool(mcp.NewTool("list_metrics",
		mcp.WithDescription("List the metric axes in display order with direction, symbol and unit."),
		mcp.WithString("path", mcp.Description("Path to the JSON or YAML dataset file."), mcp.Required()),
	), h.handleListMetrics)

	return s
}

// StartMCPServer starts the rankviz MCP server on stdio.
func StartMCPServer(_ context.Context, baseCfg *contract.Config, loader contract.DatasetLoader) error {
	s := NewMCPServer(baseCfg, loader)
	return server.ServeStdio(s)
}
