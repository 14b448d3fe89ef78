// Package mcpsrv provides the Model Context Protocol (MCP) server implementation.
package mcpsrv

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/openclinic/chartgeom/internal/contract"
)

// NewMCPServer initializes and configures the chartgeom MCP server without
// starting it. This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config) *server.MCPServer {
	s := server.NewMCPServer(
		"Chart Geometry Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
	}

	// --- 1. Tool: compute_pie_sectors ---
	s.AddTool(mcp.NewTool("compute_pie_sectors",
		mcp.WithDescription("Compute pie or donut sector geometry (angles, SVG paths, label anchors) from categorical data."),
		mcp.WithString("data", mcp.Description("JSON array of {label, value, color} objects. Values must be finite and non-negative."), mcp.Required()),
		mcp.WithNumber("radius", mcp.Description("Outer radius in pixels. Defaults to the configured radius.")),
		mcp.WithNumber("inner_radius", mcp.Description("Inner radius in pixels; 0 for a pie, positive for a donut.")),
	), h.handleComputePieSectors)

	// --- 2. Tool: compute_gauge_arc ---
	s.AddTool(mcp.NewTool("compute_gauge_arc",
		mcp.WithDescription("Compute semicircular gauge geometry (stroke-dash arc, threshold color) for a single value."),
		mcp.WithNumber("value", mcp.Description("The observed value."), mcp.Required()),
		mcp.WithNumber("max", mcp.Description("The value representing a full gauge. Defaults to 100.")),
		mcp.WithString("thresholds", mcp.Description("Comma-separated 'value:color[:label]' floors, ascending (e.g. '0:#dc2626:low,70:#f59e0b:fair').")),
	), h.handleComputeGaugeArc)

	// --- 3. Tool: compute_radar ---
	s.AddTool(mcp.NewTool("compute_radar",
		mcp.WithDescription("Compute radar chart geometry (data polygon, grid rings, axis label anchors) from categorical data."),
		mcp.WithString("data", mcp.Description("JSON array of {label, value} objects, one per axis."), mcp.Required()),
		mcp.WithNumber("radius", mcp.Description("Chart radius in pixels.")),
		mcp.WithNumber("levels", mcp.Description("Number of concentric grid rings.")),
	), h.handleComputeRadar)

	// --- 4. Tool: bucketize_heatmap ---
	s.AddTool(mcp.NewTool("bucketize_heatmap",
		mcp.WithDescription("Map a numeric matrix onto a discrete color scale using linear min/max bucketing."),
		mcp.WithString("matrix", mcp.Description("JSON 2D array of numbers. Rows may be ragged."), mcp.Required()),
		mcp.WithString("colors", mcp.Description("Comma-separated hex color scale, coolest to hottest. Defaults to the built-in blue scale.")),
	), h.handleBucketizeHeatmap)

	// --- 5. Tool: build_sparkline ---
	s.AddTool(mcp.NewTool("build_sparkline",
		mcp.WithDescription("Build smoothed sparkline path geometry and trend direction from a value series."),
		mcp.WithString("values", mcp.Description("JSON array of numbers in display order."), mcp.Required()),
		mcp.WithNumber("width", mcp.Description("Sparkline width in pixels.")),
		mcp.WithNumber("height", mcp.Description("Sparkline height in pixels.")),
	), h.handleBuildSparkline)

	return s
}

// StartMCPServer starts the chartgeom MCP server on stdio.
func StartMCPServer(_ context.Context, baseCfg *contract.Config) error {
	s := NewMCPServer(baseCfg)
	return server.ServeStdio(s)
}
