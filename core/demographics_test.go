package core

import (
	"testing"

	"github.com/cityscope/cityscope/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func demographicsOnly(dp schema.DemographicPrefs) *schema.Preferences {
	p := schema.DefaultPreferences()
	p.Demographics = dp
	return p
}

// findFactor returns the named factor or fails the test.
func findFactor(t *testing.T, factors []schema.FactorAnalysis, name string) schema.FactorAnalysis {
	t.Helper()
	for _, f := range factors {
		if f.Name == name {
			return f
		}
	}
	t.Fatalf("factor %q not found", name)
	return schema.FactorAnalysis{}
}

// TestDiversityScore checks the baseline-relative scaling with its cap.
func TestDiversityScore(t *testing.T) {
	tests := []struct {
		name     string
		index    float64
		expected float64
	}{
		{name: "at baseline", index: 70, expected: 100},
		{name: "above baseline caps", index: 85, expected: 100},
		{name: "half baseline", index: 35, expected: 50},
		{name: "homogeneous", index: 0, expected: 0},
	}

	prefs := demographicsOnly(schema.DemographicPrefs{DiversityWeight: 50})
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			city := fullCity()
			city.Demographics.DiversityIndex = schema.Float(tt.index)
			r := scoreDemographics(&city, prefs)
			f := findFactor(t, r.Factors, "diversity")
			assert.InDelta(t, tt.expected, f.Score, 0.001)
		})
	}
}

// TestAgeTierScore checks the tiered distance buckets.
func TestAgeTierScore(t *testing.T) {
	tests := []struct {
		name     string
		median   float64
		target   float64
		expected float64
	}{
		{name: "exact match", median: 36, target: 36, expected: 100},
		{name: "close enough", median: 33.5, target: 36, expected: 100},
		{name: "nearby", median: 31, target: 36, expected: 75},
		{name: "off band", median: 28, target: 36, expected: 50},
		{name: "far off", median: 48, target: 36, expected: 25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, ageTierScore(tt.median, tt.target), 0.001)
		})
	}
}

// TestMinorityFactor covers the surplus and shortfall arms of the
// community-presence formula.
func TestMinorityFactor(t *testing.T) {
	tests := []struct {
		name     string
		actual   float64
		min      float64
		expected float64
	}{
		{name: "surplus climbs from 70", actual: 12, min: 5, expected: 84},
		{name: "shortfall drops fast", actual: 3, min: 10, expected: 35},
		{name: "exactly at minimum", actual: 8, min: 8, expected: 70},
		{name: "surplus caps at 100", actual: 40, min: 5, expected: 100},
		{name: "deep shortfall floors at zero", actual: 0.5, min: 20, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			city := fullCity()
			city.Demographics.MinorityPct = map[string]float64{"hispanic": tt.actual}
			prefs := demographicsOnly(schema.DemographicPrefs{
				Minority: schema.MinorityPrefs{
					Weight: 50, Group: schema.GroupHispanic, MinPresencePct: tt.min,
				},
			})
			r := scoreDemographics(&city, prefs)
			f := findFactor(t, r.Factors, "community presence")
			assert.InDelta(t, tt.expected, f.Score, 0.001)
		})
	}
}

// TestMinoritySubgroupKey verifies the subgroup suffix selects the
// refined share, and that a missing key skips the factor.
func TestMinoritySubgroupKey(t *testing.T) {
	city := fullCity()
	prefs := demographicsOnly(schema.DemographicPrefs{
		Minority: schema.MinorityPrefs{
			Weight: 50, Group: schema.GroupAsian, Subgroup: "indian", MinPresencePct: 2,
		},
	})

	r := scoreDemographics(&city, prefs)
	f := findFactor(t, r.Factors, "community presence")
	assert.InDelta(t, 2.5, f.Value, 0.001)

	// A subgroup the dataset lacks drops the factor silently.
	prefs.Demographics.Minority.Subgroup = "vietnamese"
	r = scoreDemographics(&city, prefs)
	for _, f := range r.Factors {
		assert.NotEqual(t, "community presence", f.Name)
	}
}

// TestPopulationPenalty checks the graduated deficit applied outside
// the weighted average.
func TestPopulationPenalty(t *testing.T) {
	city := fullCity()
	city.Demographics.Population = schema.Float(300000)

	prefs := schema.DefaultPreferences()
	prefs.Demographics.MinPopulation = 500000

	r := scoreDemographics(&city, prefs)
	assert.InDelta(t, 20.0, r.Penalty, 0.001)
	assert.NotEmpty(t, r.PenaltyReason)

	// No penalty once the minimum is met.
	city.Demographics.Population = schema.Float(600000)
	r = scoreDemographics(&city, prefs)
	assert.Zero(t, r.Penalty)
	assert.Empty(t, r.PenaltyReason)
}

// TestPopulationPenaltySkipsMissingData verifies an absent population
// figure never triggers the penalty.
func TestPopulationPenaltySkipsMissingData(t *testing.T) {
	city := fullCity()
	city.Demographics.Population = nil

	prefs := schema.DefaultPreferences()
	prefs.Demographics.MinPopulation = 2000000

	r := scoreDemographics(&city, prefs)
	assert.Zero(t, r.Penalty)
}

// TestCompatibilityFactor exercises the blended sub-scorer end to end.
func TestCompatibilityFactor(t *testing.T) {
	city := fullCity()
	prefs := schema.DefaultPreferences()
	prefs.Demographics.Compatibility = schema.CompatibilityPrefs{
		Weight: 60, Seeking: schema.GenderFemale, AgeBand: schema.AgeBandYoung,
	}

	r := scoreDemographics(&city, prefs)
	f := findFactor(t, r.Factors, "compatibility")
	assert.Greater(t, f.Score, 0.0)
	assert.LessOrEqual(t, f.Score, 100.0)

	// Seeking is required; without it the factor disappears.
	prefs.Demographics.Compatibility.Seeking = schema.GenderNone
	r = scoreDemographics(&city, prefs)
	for _, g := range r.Factors {
		assert.NotEqual(t, "compatibility", g.Name)
	}
}

// TestDatingPoolDirection verifies the gender-ratio direction flips
// with the seeking preference.
func TestDatingPoolDirection(t *testing.T) {
	d := schema.DemographicMetrics{
		MalesPer100Females:    map[string]float64{"20-29": 110},
		NeverMarriedMalePct:   schema.Float(45),
		NeverMarriedFemalePct: schema.Float(45),
	}

	seekingMale := schema.CompatibilityPrefs{Weight: 50, Seeking: schema.GenderMale, AgeBand: schema.AgeBandYoung}
	seekingFemale := schema.CompatibilityPrefs{Weight: 50, Seeking: schema.GenderFemale, AgeBand: schema.AgeBandYoung}

	m := datingPoolScore(d, seekingMale)
	f := datingPoolScore(d, seekingFemale)
	require.NotNil(t, m)
	require.NotNil(t, f)
	assert.Greater(t, *m, *f, "male-heavy ratio should favor those seeking men")
}

// TestEconomicHealthRenormalizes verifies the blend holds up when one
// component is missing.
func TestEconomicHealthRenormalizes(t *testing.T) {
	city := fullCity()
	city.Demographics.PovertyRatePct = nil

	prefs := demographicsOnly(schema.DemographicPrefs{EconomicHealthWeight: 50})
	r := scoreDemographics(&city, prefs)
	f := findFactor(t, r.Factors, "economic health")

	// With poverty absent the income sub-score stands alone.
	want := *scorePtr(city.Demographics.MedianHouseholdIncome, schema.DomainHouseholdIncome, true)
	assert.InDelta(t, want, f.Score, 0.001)
}
