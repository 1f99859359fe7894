// Package core implements the cityscope scoring engine: six category
// scorers, the persona cost model, hard filters, aggregation, and the
// explain path. Everything here is pure and deterministic: given the
// same metrics and preferences, every function returns the same result,
// allocates no shared state, and performs no I/O.
package core

import "github.com/cityscope/cityscope/schema"

// ScoreCategory scores one city against one category of the user's
// preferences, returning the 0-100 category value and the list of
// factors that produced it.
func ScoreCategory(m *schema.CityMetrics, p *schema.Preferences, cat schema.Category) schema.CategoryResult {
	switch cat {
	case schema.ClimateCategory:
		return scoreClimate(m, p)
	case schema.CostCategory:
		return scoreCost(m, p)
	case schema.DemographicsCategory:
		return scoreDemographics(m, p)
	case schema.QualityOfLifeCategory:
		return scoreQualityOfLife(m, p)
	case schema.CultureCategory:
		return scoreCulture(m, p)
	case schema.EntertainmentCategory:
		return scoreEntertainment(m, p)
	default:
		return schema.CategoryResult{Category: cat, Value: neutralScore}
	}
}

// Explain re-derives the per-factor breakdown for one category. It is
// the same computation ScoreCategory runs, so the sub-scores here are
// exactly the ones the weighted average used.
func Explain(m *schema.CityMetrics, p *schema.Preferences, cat schema.Category) []schema.FactorAnalysis {
	return ScoreCategory(m, p, cat).Factors
}

// ScoreAll scores every category, aggregates the total, and evaluates
// the hard filters for one city.
func ScoreAll(m *schema.CityMetrics, p *schema.Preferences) schema.CityScore {
	categories := make(map[schema.Category]float64, len(schema.AllCategories))
	for _, cat := range schema.AllCategories {
		categories[cat] = ScoreCategory(m, p, cat).Value
	}

	included, reason := EvaluateFilters(m, p)

	return schema.CityScore{
		ID:              m.ID,
		Name:            m.Name,
		State:           m.State,
		Categories:      categories,
		Total:           TotalScore(categories, p.Weights),
		Included:        included,
		ExclusionReason: reason,
	}
}

// Compare scores two cities under the same preferences and lays the
// category values side by side.
func Compare(a, b *schema.CityMetrics, p *schema.Preferences) schema.ComparisonResult {
	scoreA := ScoreAll(a, p)
	scoreB := ScoreAll(b, p)

	rows := make([]schema.ComparisonRow, 0, len(schema.AllCategories))
	for _, cat := range schema.AllCategories {
		rows = append(rows, schema.ComparisonRow{
			Category: cat,
			A:        scoreA.Categories[cat],
			B:        scoreB.Categories[cat],
			Delta:    scoreB.Categories[cat] - scoreA.Categories[cat],
		})
	}

	return schema.ComparisonResult{CityA: scoreA, CityB: scoreB, Rows: rows}
}
