package schema

// FactorAnalysis explains one factor's contribution to a category
// score. The Score here is exactly the sub-score the category scorer
// used in its weighted average; scoring and explanation share one
// formula per factor.
type FactorAnalysis struct {
	Name      string  `json:"name"`
	Weight    int     `json:"weight"`               // Raw preference weight (0-100)
	WeightPct int     `json:"weight_pct"`           // Share of the category's active weight, integer percent
	Value     float64 `json:"value"`                // Raw metric value
	Unit      string  `json:"unit,omitempty"`       // e.g. "days", "per 100k"
	Threshold *float64 `json:"threshold,omitempty"` // User threshold, when one applies

	Score       float64      `json:"score"` // 0-100 sub-score
	Status      FactorStatus `json:"status"`
	Explanation string       `json:"explanation"`
}

// CategoryResult is the output of one category scorer.
type CategoryResult struct {
	Category Category         `json:"category"`
	Value    float64          `json:"value"` // 0-100, after any penalty
	Factors  []FactorAnalysis `json:"factors"`

	// Penalty is a standalone reduction applied after the weighted
	// average (currently only the population deficit penalty).
	Penalty       float64 `json:"penalty,omitempty"`
	PenaltyReason string  `json:"penalty_reason,omitempty"`
}

// CityScore is the full scoring result for one city.
type CityScore struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	State string `json:"state"`

	Categories map[Category]float64 `json:"categories"`
	Total      float64              `json:"total"`

	Included        bool   `json:"included"`
	ExclusionReason string `json:"exclusion_reason,omitempty"`
}

// RankedCity is a CityScore with its final position. Excluded cities
// rank after every included city regardless of score.
type RankedCity struct {
	CityScore
	Rank int `json:"rank"`
}

// ComparisonRow is one category's side-by-side values for two cities.
type ComparisonRow struct {
	Category Category `json:"category"`
	A        float64  `json:"a"`
	B        float64  `json:"b"`
	Delta    float64  `json:"delta"` // B minus A
}

// ComparisonResult is the output of comparing two cities under the
// same preferences.
type ComparisonResult struct {
	CityA CityScore       `json:"city_a"`
	CityB CityScore       `json:"city_b"`
	Rows  []ComparisonRow `json:"rows"`
}

// FactorDefinition describes one factor for the reference output: its
// unit, calibrated domain, and default direction.
type FactorDefinition struct {
	Category  Category `json:"category"`
	Name      string   `json:"name"`
	Unit      string   `json:"unit,omitempty"`
	DomainMin float64  `json:"domain_min"`
	DomainMax float64  `json:"domain_max"`
	Direction string   `json:"direction"` // "higher", "lower", "target", "curve"
	Note      string   `json:"note,omitempty"`
}

// StatusForScore buckets a 0-100 sub-score into a qualitative status.
// Domain-specific conditions (e.g. exceeded thresholds) may override
// the bucket afterwards.
func StatusForScore(score float64) FactorStatus {
	switch {
	case score >= 75:
		return StatusGood
	case score >= 55:
		return StatusNeutral
	case score >= 35:
		return StatusWarning
	default:
		return StatusBad
	}
}
