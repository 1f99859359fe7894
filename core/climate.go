package core

import (
	"fmt"

	"github.com/cityscope/cityscope/core/norm"
	"github.com/cityscope/cityscope/schema"
)

// scoreClimate evaluates the eleven climate factors. Snow days and
// seasonal stability invert their direction when the user prefers snow
// or distinct seasons.
func scoreClimate(m *schema.CityMetrics, p *schema.Preferences) schema.CategoryResult {
	c := m.Climate
	cp := p.Climate
	var fs factorSet

	fs.addLinear("comfort days", cp.ComfortWeight, c.ComfortDays, "days", schema.DomainComfortDays, true)
	fs.addLinear("extreme heat days", cp.HeatWeight, c.ExtremeHeatDays, "days", schema.DomainExtremeHeatDays, false)
	fs.addLinear("freeze days", cp.FreezeWeight, c.FreezeDays, "days", schema.DomainFreezeDays, false)
	fs.addLinear("rain days", cp.RainWeight, c.RainDays, "days", schema.DomainRainDays, false)
	fs.addLinear("snow days", cp.SnowWeight, c.SnowDays, "days", schema.DomainSnowDays, cp.PreferSnow)
	fs.addLinear("cloudy days", cp.CloudWeight, c.CloudyDays, "days", schema.DomainCloudyDays, false)
	fs.addLinear("summer humidity", cp.HumidityWeight, c.SummerDewpoint, "F dewpoint", schema.DomainSummerDewpoint, false)

	// Utility cost proxy: total degree-days needs both halves present.
	if cp.UtilityCostWeight > 0 && c.HeatingDegreeDays != nil && c.CoolingDegreeDays != nil {
		total := *c.HeatingDegreeDays + *c.CoolingDegreeDays
		d := schema.DomainTotalDegreeDays
		fs.add(schema.FactorAnalysis{
			Name:        "utility costs",
			Weight:      cp.UtilityCostWeight,
			Value:       total,
			Unit:        "degree-days",
			Score:       norm.Linear(total, d.Min, d.Max, false),
			Explanation: fmt.Sprintf("%.0f combined heating and cooling degree-days", total),
		})
	}

	fs.addLinear("growing season", cp.GrowingSeasonWeight, c.GrowingSeasonDays, "days", schema.DomainGrowingSeason, true)
	// Seasonal stability prefers low month-to-month variance unless the
	// user wants four distinct seasons.
	fs.addLinear("seasonal stability", cp.StabilityWeight, c.TempSeasonalStdDev, "F stddev", schema.DomainSeasonalStdDev, cp.PreferSeasons)
	fs.addLinear("diurnal swing", cp.DiurnalWeight, c.DiurnalSwing, "F", schema.DomainDiurnalSwing, false)

	return fs.result(schema.ClimateCategory)
}
