package core

import (
	"testing"

	"github.com/cityscope/cityscope/schema"
	"github.com/stretchr/testify/assert"
)

// TestEvaluateFilters covers each rule and the missing-data skip.
func TestEvaluateFilters(t *testing.T) {
	tests := []struct {
		name         string
		mutate       func(*schema.CityMetrics)
		filters      schema.FilterPrefs
		wantIncluded bool
	}{
		{
			name:         "no filters set",
			mutate:       func(m *schema.CityMetrics) {},
			filters:      schema.FilterPrefs{},
			wantIncluded: true,
		},
		{
			name:         "league present",
			mutate:       func(m *schema.CityMetrics) {},
			filters:      schema.FilterPrefs{RequireLeague: schema.LeagueNFL},
			wantIncluded: true,
		},
		{
			name:         "league absent",
			mutate:       func(m *schema.CityMetrics) {},
			filters:      schema.FilterPrefs{RequireLeague: schema.LeagueMLB},
			wantIncluded: false,
		},
		{
			name: "no sports data skips league rule",
			mutate: func(m *schema.CityMetrics) {
				m.Culture.SportsTeams = nil
			},
			filters:      schema.FilterPrefs{RequireLeague: schema.LeagueMLB},
			wantIncluded: true,
		},
		{
			name:         "home price under cap",
			mutate:       func(m *schema.CityMetrics) {},
			filters:      schema.FilterPrefs{MaxHomePrice: 500000},
			wantIncluded: true,
		},
		{
			name:         "home price over cap",
			mutate:       func(m *schema.CityMetrics) {},
			filters:      schema.FilterPrefs{MaxHomePrice: 300000},
			wantIncluded: false,
		},
		{
			name: "no home price data skips cap",
			mutate: func(m *schema.CityMetrics) {
				m.Economy.MedianHomePrice = nil
			},
			filters:      schema.FilterPrefs{MaxHomePrice: 300000},
			wantIncluded: true,
		},
		{
			name:         "fiber above floor",
			mutate:       func(m *schema.CityMetrics) {},
			filters:      schema.FilterPrefs{RequireFiber: true},
			wantIncluded: true,
		},
		{
			name: "fiber below floor",
			mutate: func(m *schema.CityMetrics) {
				m.QualityOfLife.FiberCoveragePct = schema.Float(12)
			},
			filters:      schema.FilterPrefs{RequireFiber: true},
			wantIncluded: false,
		},
		{
			name: "no fiber data skips requirement",
			mutate: func(m *schema.CityMetrics) {
				m.QualityOfLife.FiberCoveragePct = nil
			},
			filters:      schema.FilterPrefs{RequireFiber: true},
			wantIncluded: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			city := fullCity()
			tt.mutate(&city)
			prefs := schema.DefaultPreferences()
			prefs.Filters = tt.filters

			included, reason := EvaluateFilters(&city, prefs)
			assert.Equal(t, tt.wantIncluded, included)
			if tt.wantIncluded {
				assert.Empty(t, reason)
			} else {
				assert.NotEmpty(t, reason)
			}
		})
	}
}

// TestFiltersIndependentOfWeights verifies exclusion ignores category
// weighting entirely.
func TestFiltersIndependentOfWeights(t *testing.T) {
	city := fullCity()
	prefs := schema.DefaultPreferences()
	prefs.Filters.MaxHomePrice = 100000
	prefs.Weights = schema.CategoryWeights{} // every category disabled

	score := ScoreAll(&city, prefs)
	assert.False(t, score.Included)
	assert.NotEmpty(t, score.ExclusionReason)
	// The city still gets scored for display.
	assert.InDelta(t, 50.0, score.Total, 0.001)
}
