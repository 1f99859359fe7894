package core

import "github.com/cityscope/cityscope/schema"

// FactorDefinitions describes every factor the engine can score: its
// unit, calibrated domain, and scoring direction. Used by the factor
// reference output and the MCP list_factors tool.
func FactorDefinitions() []schema.FactorDefinition {
	return []schema.FactorDefinition{
		{Category: schema.ClimateCategory, Name: "comfort days", Unit: "days", DomainMin: schema.DomainComfortDays.Min, DomainMax: schema.DomainComfortDays.Max, Direction: "higher"},
		{Category: schema.ClimateCategory, Name: "extreme heat days", Unit: "days", DomainMin: schema.DomainExtremeHeatDays.Min, DomainMax: schema.DomainExtremeHeatDays.Max, Direction: "lower"},
		{Category: schema.ClimateCategory, Name: "freeze days", Unit: "days", DomainMin: schema.DomainFreezeDays.Min, DomainMax: schema.DomainFreezeDays.Max, Direction: "lower"},
		{Category: schema.ClimateCategory, Name: "rain days", Unit: "days", DomainMin: schema.DomainRainDays.Min, DomainMax: schema.DomainRainDays.Max, Direction: "lower"},
		{Category: schema.ClimateCategory, Name: "snow days", Unit: "days", DomainMin: schema.DomainSnowDays.Min, DomainMax: schema.DomainSnowDays.Max, Direction: "lower", Note: "inverts when snow is preferred"},
		{Category: schema.ClimateCategory, Name: "cloudy days", Unit: "days", DomainMin: schema.DomainCloudyDays.Min, DomainMax: schema.DomainCloudyDays.Max, Direction: "lower"},
		{Category: schema.ClimateCategory, Name: "summer humidity", Unit: "F dewpoint", DomainMin: schema.DomainSummerDewpoint.Min, DomainMax: schema.DomainSummerDewpoint.Max, Direction: "lower"},
		{Category: schema.ClimateCategory, Name: "utility costs", Unit: "degree-days", DomainMin: schema.DomainTotalDegreeDays.Min, DomainMax: schema.DomainTotalDegreeDays.Max, Direction: "lower"},
		{Category: schema.ClimateCategory, Name: "growing season", Unit: "days", DomainMin: schema.DomainGrowingSeason.Min, DomainMax: schema.DomainGrowingSeason.Max, Direction: "higher"},
		{Category: schema.ClimateCategory, Name: "seasonal stability", Unit: "F stddev", DomainMin: schema.DomainSeasonalStdDev.Min, DomainMax: schema.DomainSeasonalStdDev.Max, Direction: "lower", Note: "inverts when distinct seasons are preferred"},
		{Category: schema.ClimateCategory, Name: "diurnal swing", Unit: "F", DomainMin: schema.DomainDiurnalSwing.Min, DomainMax: schema.DomainDiurnalSwing.Max, Direction: "lower"},

		{Category: schema.CostCategory, Name: "purchasing power", Unit: "index", DomainMin: 0, DomainMax: 200, Direction: "higher", Note: "persona cost model output"},

		{Category: schema.DemographicsCategory, Name: "diversity", Unit: "index", DomainMin: 0, DomainMax: diversityBaseline, Direction: "higher"},
		{Category: schema.DemographicsCategory, Name: "age match", Unit: "years", DomainMin: 0, DomainMax: 0, Direction: "target", Note: "tiered by distance from the preferred band"},
		{Category: schema.DemographicsCategory, Name: "education", Unit: "% bachelors+", DomainMin: schema.DomainBachelorsPct.Min, DomainMax: schema.DomainBachelorsPct.Max, Direction: "higher"},
		{Category: schema.DemographicsCategory, Name: "foreign born", Unit: "%", DomainMin: schema.DomainForeignBornPct.Min, DomainMax: schema.DomainForeignBornPct.Max, Direction: "higher"},
		{Category: schema.DemographicsCategory, Name: "economic health", Unit: "USD household", DomainMin: schema.DomainHouseholdIncome.Min, DomainMax: schema.DomainHouseholdIncome.Max, Direction: "higher", Note: "income blended with poverty rate"},
		{Category: schema.DemographicsCategory, Name: "community presence", Unit: "%", DomainMin: 0, DomainMax: 0, Direction: "target", Note: "70 baseline, +2/surplus point, -5/shortfall point"},
		{Category: schema.DemographicsCategory, Name: "compatibility", Unit: "index", DomainMin: 0, DomainMax: 100, Direction: "higher", Note: "dating pool, income, alignment, lifestyle blend"},

		{Category: schema.QualityOfLifeCategory, Name: "walkability", Unit: "index", DomainMin: 0, DomainMax: 100, Direction: "higher"},
		{Category: schema.QualityOfLifeCategory, Name: "safety", Unit: "per 100k", DomainMin: schema.DomainViolentCrime.Min, DomainMax: schema.DomainViolentCrime.Max, Direction: "lower"},
		{Category: schema.QualityOfLifeCategory, Name: "air quality", Unit: "% good days", DomainMin: schema.DomainHealthyAirPct.Min, DomainMax: schema.DomainHealthyAirPct.Max, Direction: "higher"},
		{Category: schema.QualityOfLifeCategory, Name: "broadband", Unit: "% fiber", DomainMin: schema.DomainFiberPct.Min, DomainMax: schema.DomainFiberPct.Max, Direction: "higher"},
		{Category: schema.QualityOfLifeCategory, Name: "schools", Unit: "students/teacher", DomainMin: schema.DomainStudentTeacher.Min, DomainMax: schema.DomainStudentTeacher.Max, Direction: "lower"},
		{Category: schema.QualityOfLifeCategory, Name: "healthcare", Unit: "per 100k", DomainMin: schema.DomainPhysicians.Min, DomainMax: schema.DomainPhysicians.Max, Direction: "higher"},
		{Category: schema.QualityOfLifeCategory, Name: "recreation", Unit: "index", DomainMin: 0, DomainMax: 100, Direction: "higher", Note: "nature, beach, mountain sub-weights"},

		{Category: schema.CultureCategory, Name: "political alignment", Unit: "partisan index", DomainMin: -1, DomainMax: 1, Direction: "target", Note: "gaussian decay around the preferred lean"},
		{Category: schema.CultureCategory, Name: "civic engagement", Unit: "% turnout", DomainMin: schema.DomainTurnoutPct.Min, DomainMax: schema.DomainTurnoutPct.Max, Direction: "higher"},
		{Category: schema.CultureCategory, Name: "religious community", Unit: "per 1,000", DomainMin: 0, DomainMax: 0, Direction: "target", Note: "tiered against the national baseline"},
		{Category: schema.CultureCategory, Name: "religious diversity", Unit: "index", DomainMin: 0, DomainMax: 100, Direction: "higher"},

		{Category: schema.EntertainmentCategory, Name: "nightlife", Unit: "venues per 100k", DomainMin: schema.DomainNightlife.Min, DomainMax: schema.DomainNightlife.Max, Direction: "curve"},
		{Category: schema.EntertainmentCategory, Name: "arts", Unit: "museums per 100k", DomainMin: schema.DomainMuseums.Min, DomainMax: schema.DomainMuseums.Max, Direction: "curve"},
		{Category: schema.EntertainmentCategory, Name: "dining", Unit: "restaurants per 100k", DomainMin: schema.DomainRestaurants.Min, DomainMax: schema.DomainRestaurants.Max, Direction: "curve"},
		{Category: schema.EntertainmentCategory, Name: "pro sports", Unit: "teams", DomainMin: 0, DomainMax: 10, Direction: "curve", Note: "step table, shrinking increments"},
		{Category: schema.EntertainmentCategory, Name: "recreation", Unit: "index", DomainMin: 0, DomainMax: 100, Direction: "higher"},
	}
}
