package core

import (
	"context"
	"fmt"
	"time"

	"github.com/cityscope/cityscope/internal/contract"
	"github.com/cityscope/cityscope/internal/outwriter"
	"github.com/cityscope/cityscope/schema"
)

// writer handles all command output formatting.
var writer = outwriter.NewOutWriter()

// LoadActivePreferences resolves the preference profile for a command
// run. An empty path means the built-in defaults.
func LoadActivePreferences(cfg *contract.Config) (*schema.Preferences, error) {
	if cfg.PrefsFile == "" {
		return schema.DefaultPreferences(), nil
	}
	return schema.LoadPreferences(cfg.PrefsFile)
}

// ExecuteRank scores every city in the source and writes the ranked
// results. When a run store is configured, the full (unfiltered) result
// set is recorded before limits are applied.
func ExecuteRank(ctx context.Context, cfg *contract.Config, source contract.MetricSource, mgr contract.StoreManager) error {
	start := time.Now()

	prefs, err := LoadActivePreferences(cfg)
	if err != nil {
		return err
	}

	cities, err := source.Cities(ctx)
	if err != nil {
		return fmt.Errorf("failed to load cities: %w", err)
	}

	ranked := Rank(cities, prefs)

	// --- Run Tracking (if configured) ---
	var runStore contract.RunStore
	if mgr != nil {
		runStore = mgr.GetRunStore()
	}
	if runStore != nil {
		configParams := map[string]any{
			"prefs_file":       cfg.PrefsFile,
			"data_file":        cfg.DataFile,
			"result_limit":     cfg.ResultLimit,
			"include_excluded": cfg.IncludeExcluded,
		}
		runID, err := runStore.BeginRun(start, configParams)
		if err != nil {
			contract.LogWarn("Run tracking initialization failed", err)
		} else if runID > 0 {
			for _, city := range ranked {
				if err := runStore.RecordCityScore(runID, city); err != nil {
					contract.LogWarn(fmt.Sprintf("Run tracking failed for %s", city.ID), err)
				}
			}
			if err := runStore.EndRun(runID, time.Now(), len(ranked)); err != nil {
				contract.LogWarn("Failed to finalize run tracking", err)
			}
		}
	}

	results := ranked
	if !cfg.IncludeExcluded {
		kept := make([]schema.RankedCity, 0, len(results))
		for _, c := range results {
			if c.Included {
				kept = append(kept, c)
			}
		}
		results = kept
	}
	if cfg.ResultLimit > 0 && len(results) > cfg.ResultLimit {
		results = results[:cfg.ResultLimit]
	}

	return writer.WriteRank(results, cfg, time.Since(start))
}

// ExecuteExplain scores one city and writes the per-factor breakdown.
// cfg.Category narrows the output to a single category when set.
func ExecuteExplain(ctx context.Context, cfg *contract.Config, source contract.MetricSource, cityID string) error {
	prefs, err := LoadActivePreferences(cfg)
	if err != nil {
		return err
	}

	city, err := source.City(ctx, cityID)
	if err != nil {
		return fmt.Errorf("failed to load city %s: %w", cityID, err)
	}

	categories := schema.AllCategories
	if cfg.Category != "" {
		categories = []schema.Category{cfg.Category}
	}

	score := ScoreAll(city, prefs)
	results := make([]schema.CategoryResult, len(categories))
	for i, cat := range categories {
		results[i] = ScoreCategory(city, prefs, cat)
	}

	return writer.WriteExplain(&score, results, cfg)
}

// ExecuteCompare scores two cities under the same preferences and
// writes the side-by-side category deltas.
func ExecuteCompare(ctx context.Context, cfg *contract.Config, source contract.MetricSource, idA, idB string) error {
	prefs, err := LoadActivePreferences(cfg)
	if err != nil {
		return err
	}

	cityA, err := source.City(ctx, idA)
	if err != nil {
		return fmt.Errorf("failed to load city %s: %w", idA, err)
	}
	cityB, err := source.City(ctx, idB)
	if err != nil {
		return fmt.Errorf("failed to load city %s: %w", idB, err)
	}

	return writer.WriteCompare(Compare(cityA, cityB, prefs), cfg)
}

// ExecuteFactors writes the factor reference: every factor with its
// unit, calibrated domain, and direction.
func ExecuteFactors(_ context.Context, cfg *contract.Config) error {
	return writer.WriteFactors(FactorDefinitions(), cfg)
}
