package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/cityscope/cityscope/core"
	"github.com/cityscope/cityscope/internal/contract"
	"github.com/cityscope/cityscope/schema"
	"github.com/mark3labs/mcp-go/mcp"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
	source  contract.MetricSource
	prefs   *schema.Preferences
}

// prefsFor resolves the preference profile for one request: an explicit
// prefs_file argument wins over the server's active profile.
func (h *toolHandler) prefsFor(request mcp.CallToolRequest) (*schema.Preferences, error) {
	if path := request.GetString("prefs_file", ""); path != "" {
		return schema.LoadPreferences(path)
	}
	return h.prefs, nil
}

func (h *toolHandler) handleRankCities(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	prefs, err := h.prefsFor(request)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid preferences: %v", err)), nil
	}

	cities, err := h.source.Cities(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to load cities: %v", err)), nil
	}

	ranked := core.Rank(cities, prefs)

	if !request.GetBool("include_excluded", false) {
		kept := ranked[:0]
		for _, c := range ranked {
			if c.Included {
				kept = append(kept, c)
			}
		}
		ranked = kept
	}

	limit := request.GetInt("limit", h.baseCfg.ResultLimit)
	if limit > 0 && limit < len(ranked) {
		ranked = ranked[:limit]
	}

	jsonData, _ := json.MarshalIndent(ranked, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleExplainCity(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	prefs, err := h.prefsFor(request)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid preferences: %v", err)), nil
	}

	cityID := request.GetString("city_id", "")
	if cityID == "" {
		return mcp.NewToolResultError("city_id is required"), nil
	}

	city, err := h.source.City(ctx, cityID)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to load city: %v", err)), nil
	}

	categories := schema.AllCategories
	if c := request.GetString("category", ""); c != "" {
		cat := schema.Category(c)
		if _, ok := schema.ValidCategories[cat]; !ok {
			return mcp.NewToolResultError(fmt.Sprintf("invalid category: %s", c)), nil
		}
		categories = []schema.Category{cat}
	}

	score := core.ScoreAll(city, prefs)
	results := make([]schema.CategoryResult, len(categories))
	for i, cat := range categories {
		results[i] = core.ScoreCategory(city, prefs, cat)
	}

	payload := struct {
		City       schema.CityScore        `json:"city"`
		Categories []schema.CategoryResult `json:"categories"`
	}{
		City:       score,
		Categories: results,
	}

	jsonData, _ := json.MarshalIndent(payload, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleCompareCities(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	prefs, err := h.prefsFor(request)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid preferences: %v", err)), nil
	}

	idA := request.GetString("city_a", "")
	idB := request.GetString("city_b", "")
	if idA == "" || idB == "" {
		return mcp.NewToolResultError("city_a and city_b are required"), nil
	}

	cityA, err := h.source.City(ctx, idA)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to load city %s: %v", idA, err)), nil
	}
	cityB, err := h.source.City(ctx, idB)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to load city %s: %v", idB, err)), nil
	}

	result := core.Compare(cityA, cityB, prefs)
	jsonData, _ := json.MarshalIndent(result, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleListFactors(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	jsonData, _ := json.MarshalIndent(core.FactorDefinitions(), "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}
