package mcpsrv

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/openclinic/chartgeom/core"
	"github.com/openclinic/chartgeom/internal/contract"
	"github.com/openclinic/chartgeom/schema"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
}

func (h *toolHandler) handleComputePieSectors(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var data []schema.DataPoint
	if err := json.Unmarshal([]byte(request.GetString("data", "")), &data); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid data: %v", err)), nil
	}

	opts := schema.DefaultPieOptions()
	opts.Palette = h.baseCfg.Palette
	if r := request.GetFloat("radius", 0); r > 0 {
		opts.Radius = r
		opts.Center = schema.Point{X: r + 20, Y: r + 20}
	}
	opts.InnerRadius = request.GetFloat("inner_radius", 0)

	sectors, err := core.ComputePie(data, opts)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("sector computation failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(sectors, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleComputeGaugeArc(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	value := request.GetFloat("value", 0)

	opts := schema.DefaultGaugeOptions()
	if h.baseCfg.Radius > 0 {
		opts.Radius = h.baseCfg.Radius
	}
	if m := request.GetFloat("max", 0); m > 0 {
		opts.MaxValue = m
	}

	if s := request.GetString("thresholds", ""); s != "" {
		thresholds, err := contract.ParseThresholds(s)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid thresholds: %v", err)), nil
		}
		opts.Thresholds = thresholds
	}

	gg, err := core.ComputeGaugeArc(value, opts)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("gauge computation failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(gg, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleComputeRadar(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var data []schema.DataPoint
	if err := json.Unmarshal([]byte(request.GetString("data", "")), &data); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid data: %v", err)), nil
	}

	opts := schema.DefaultRadarOptions()
	if r := request.GetFloat("radius", 0); r > 0 {
		opts.Radius = r
		opts.Center = schema.Point{X: r + 40, Y: r + 40}
	}
	if l := request.GetInt("levels", 0); l > 0 {
		opts.Levels = l
	}

	rg, err := core.ComputeRadar(data, opts)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("radar computation failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(rg, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleBucketizeHeatmap(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var matrix [][]float64
	if err := json.Unmarshal([]byte(request.GetString("matrix", "")), &matrix); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid matrix: %v", err)), nil
	}

	colorScale := h.baseCfg.HeatScale
	if s := request.GetString("colors", ""); s != "" {
		parsed, err := contract.ParseColorList(s)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid colors: %v", err)), nil
		}
		colorScale = parsed
	}
	if len(colorScale) == 0 {
		colorScale = schema.DefaultHeatScale
	}

	hg, err := core.ComputeHeatmap(matrix, colorScale)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("heatmap computation failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(hg, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleBuildSparkline(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var values []float64
	if err := json.Unmarshal([]byte(request.GetString("values", "")), &values); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid values: %v", err)), nil
	}

	opts := schema.DefaultSparklineOptions()
	if w := request.GetFloat("width", 0); w > 0 {
		opts.Width = w
	}
	if ht := request.GetFloat("height", 0); ht > 0 {
		opts.Height = ht
	}

	sg, err := core.BuildSparkline(values, opts)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("sparkline computation failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(sg, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}
