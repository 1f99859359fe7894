// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/cityscope/cityscope/internal/contract"
	"github.com/cityscope/cityscope/schema"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// NewMCPServer initializes and configures the Cityscope MCP server without starting it.
// This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config, source contract.MetricSource, prefs *schema.Preferences) *server.MCPServer {
	s := server.NewMCPServer(
		"Cityscope Scoring Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
		source:  source,
		prefs:   prefs,
	}

	// --- 1. Tool: rank_cities ---
	s.AddTool(mcp.NewTool("rank_cities",
		mcp.WithDescription("Rank all known cities against the active preference profile."),
		mcp.WithNumber("limit", mcp.Description("Limit the number of results returned.")),
		mcp.WithBoolean("include_excluded", mcp.Description("Keep cities that fail hard filters in the output.")),
		mcp.WithString("prefs_file", mcp.Description("Path to a preference JSON file overriding the active profile.")),
	), h.handleRankCities)

	// --- 2. Tool: explain_city ---
	s.AddTool(mcp.NewTool("explain_city",
		mcp.WithDescription("Explain every factor behind one city's score, category by category."),
		mcp.WithString("city_id", mcp.Description("Stable city identifier, e.g. 'raleigh-nc'."), mcp.Required()),
		mcp.WithString("category", mcp.Description("Narrow the explanation to a single category."),
			mcp.Enum("climate", "cost", "demographics", "quality-of-life", "culture", "entertainment")),
		mcp.WithString("prefs_file", mcp.Description("Path to a preference JSON file overriding the active profile.")),
	), h.handleExplainCity)

	// --- 3. Tool: compare_cities ---
	s.AddTool(mcp.NewTool("compare_cities",
		mcp.WithDescription("Compare two cities side by side under the same preferences."),
		mcp.WithString("city_a", mcp.Description("First city's stable identifier."), mcp.Required()),
		mcp.WithString("city_b", mcp.Description("Second city's stable identifier."), mcp.Required()),
		mcp.WithString("prefs_file", mcp.Description("Path to a preference JSON file overriding the active profile.")),
	), h.handleCompareCities)

	// --- 4. Tool: list_factors ---
	s.AddTool(mcp.NewTool("list_factors",
		mcp.WithDescription("List every scoring factor with its unit, calibrated domain, and direction."),
	), h.handleListFactors)

	return s
}

// StartMCPServer starts the Cityscope MCP server.
func StartMCPServer(_ context.Context, baseCfg *contract.Config, source contract.MetricSource, prefs *schema.Preferences) error {
	s := NewMCPServer(baseCfg, source, prefs)
	return server.ServeStdio(s)
}
