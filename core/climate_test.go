package core

import (
	"testing"

	"github.com/cityscope/cityscope/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSnowDirectionToggle verifies the snow-days factor flips direction
// when the user prefers snow.
func TestSnowDirectionToggle(t *testing.T) {
	snowy := fullCity()
	snowy.Climate.SnowDays = schema.Float(45)

	hater := schema.DefaultPreferences()
	hater.Climate = schema.ClimatePrefs{SnowWeight: 100}

	lover := schema.DefaultPreferences()
	lover.Climate = schema.ClimatePrefs{SnowWeight: 100, PreferSnow: true}

	rHater := scoreClimate(&snowy, hater)
	rLover := scoreClimate(&snowy, lover)
	assert.Less(t, rHater.Value, rLover.Value)

	// The two directions mirror around 50 on the same value.
	assert.InDelta(t, 100, rHater.Value+rLover.Value, 1)
}

// TestSeasonsDirectionToggle verifies seasonal stability flips for
// users who want four distinct seasons.
func TestSeasonsDirectionToggle(t *testing.T) {
	steady := fullCity()
	steady.Climate.TempSeasonalStdDev = schema.Float(7)

	stable := schema.DefaultPreferences()
	stable.Climate = schema.ClimatePrefs{StabilityWeight: 100}

	seasonal := schema.DefaultPreferences()
	seasonal.Climate = schema.ClimatePrefs{StabilityWeight: 100, PreferSeasons: true}

	assert.Greater(t, scoreClimate(&steady, stable).Value, scoreClimate(&steady, seasonal).Value)
}

// TestUtilityCostNeedsBothHalves verifies the degree-day factor skips
// unless both heating and cooling figures exist.
func TestUtilityCostNeedsBothHalves(t *testing.T) {
	prefs := schema.DefaultPreferences()
	prefs.Climate = schema.ClimatePrefs{UtilityCostWeight: 100}

	city := fullCity()
	r := scoreClimate(&city, prefs)
	require.Len(t, r.Factors, 1)
	assert.Equal(t, "utility costs", r.Factors[0].Name)
	assert.InDelta(t, 4800, r.Factors[0].Value, 0.001)

	city.Climate.CoolingDegreeDays = nil
	r = scoreClimate(&city, prefs)
	assert.Empty(t, r.Factors)
	assert.InDelta(t, 50.0, r.Value, 0.001)
}

// TestClimateWeightedAverage pins the category value for a two-factor
// hand-computed case.
func TestClimateWeightedAverage(t *testing.T) {
	city := schema.CityMetrics{
		Climate: schema.ClimateMetrics{
			ComfortDays:     schema.Float(165), // midpoint of 50-280 -> 50
			ExtremeHeatDays: schema.Float(0),   // best case -> 100
		},
	}
	prefs := schema.DefaultPreferences()
	prefs.Climate = schema.ClimatePrefs{ComfortWeight: 60, HeatWeight: 20}

	r := scoreClimate(&city, prefs)
	// (50*60 + 100*20) / 80 = 62.5, rounded to 63.
	assert.InDelta(t, 63, r.Value, 0.001)

	comfort := findFactor(t, r.Factors, "comfort days")
	assert.Equal(t, 75, comfort.WeightPct)
	heat := findFactor(t, r.Factors, "extreme heat days")
	assert.Equal(t, 25, heat.WeightPct)
}

// TestClimateDomainClamping verifies out-of-domain values saturate
// instead of escaping the 0-100 range.
func TestClimateDomainClamping(t *testing.T) {
	city := schema.CityMetrics{
		Climate: schema.ClimateMetrics{ComfortDays: schema.Float(900)},
	}
	prefs := schema.DefaultPreferences()
	prefs.Climate = schema.ClimatePrefs{ComfortWeight: 100}

	r := scoreClimate(&city, prefs)
	assert.InDelta(t, 100, r.Value, 0.001)
}
