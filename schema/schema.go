// Package schema has the data model shared by all parts of cityscope:
// city metric snapshots, preference configuration, and scoring results.
package schema

import "time"

// CityMetrics is a read-only snapshot of one city's attributes.
// Every numeric field is a pointer: nil means "no data", which is
// different from zero. Scorers skip factors whose metric is nil.
type CityMetrics struct {
	ID    string `json:"id"`    // Stable identifier, e.g. "raleigh-nc"
	Name  string `json:"name"`  // Display name, e.g. "Raleigh"
	State string `json:"state"` // Two-letter state code

	Provenance string    `json:"provenance,omitempty"` // "census-api" or "curated"
	FetchedAt  time.Time `json:"fetched_at,omitempty"` // When the snapshot was acquired

	Climate       ClimateMetrics       `json:"climate"`
	Economy       EconomicMetrics      `json:"economy"`
	Demographics  DemographicMetrics   `json:"demographics"`
	QualityOfLife QualityOfLifeMetrics `json:"quality_of_life"`
	Culture       CultureMetrics       `json:"culture"`
}

// ClimateMetrics holds annual climate normals for a city.
type ClimateMetrics struct {
	ComfortDays        *float64 `json:"comfort_days,omitempty"`         // Days between 55F and 85F with low precip
	ExtremeHeatDays    *float64 `json:"extreme_heat_days,omitempty"`    // Days at or above 95F
	FreezeDays         *float64 `json:"freeze_days,omitempty"`          // Days at or below 32F
	RainDays           *float64 `json:"rain_days,omitempty"`            // Days with measurable rain
	SnowDays           *float64 `json:"snow_days,omitempty"`            // Days with measurable snowfall
	CloudyDays         *float64 `json:"cloudy_days,omitempty"`          // Mostly-cloudy days
	SummerDewpoint     *float64 `json:"summer_dewpoint,omitempty"`      // Mean July dewpoint, F
	HeatingDegreeDays  *float64 `json:"heating_degree_days,omitempty"`  // Annual HDD base 65F
	CoolingDegreeDays  *float64 `json:"cooling_degree_days,omitempty"`  // Annual CDD base 65F
	GrowingSeasonDays  *float64 `json:"growing_season_days,omitempty"`  // Frost-free days
	TempSeasonalStdDev *float64 `json:"temp_seasonal_stddev,omitempty"` // Std dev of monthly mean temps, F
	DiurnalSwing       *float64 `json:"diurnal_swing,omitempty"`        // Mean daily high-low spread, F
}

// EconomicMetrics holds regional price parity indices and income data.
// RPP indices are relative to a national baseline of 100.
type EconomicMetrics struct {
	RPPHousing       *float64 `json:"rpp_housing,omitempty"`
	RPPGoods         *float64 `json:"rpp_goods,omitempty"`
	RPPOtherServices *float64 `json:"rpp_other_services,omitempty"`
	RPPAllItems      *float64 `json:"rpp_all_items,omitempty"`
	RPPUtilities     *float64 `json:"rpp_utilities,omitempty"`
	EffectiveTaxRate *float64 `json:"effective_tax_rate,omitempty"` // Combined effective rate as a fraction, e.g. 0.22
	PerCapitaIncome  *float64 `json:"per_capita_income,omitempty"`  // USD per year
	MedianHomePrice  *float64 `json:"median_home_price,omitempty"`  // USD
}

// DemographicMetrics holds population and composition data.
type DemographicMetrics struct {
	Population            *float64 `json:"population,omitempty"`
	DiversityIndex        *float64 `json:"diversity_index,omitempty"` // Simpson's index scaled 0-100
	MedianAge             *float64 `json:"median_age,omitempty"`
	BachelorsPct          *float64 `json:"bachelors_pct,omitempty"`
	ForeignBornPct        *float64 `json:"foreign_born_pct,omitempty"`
	MedianHouseholdIncome *float64 `json:"median_household_income,omitempty"` // USD per year
	PovertyRatePct        *float64 `json:"poverty_rate_pct,omitempty"`

	// MinorityPct maps a group key to its share of the population in
	// percent. Keys are MinorityGroup values, optionally refined with a
	// subgroup suffix, e.g. "hispanic" or "asian:indian". A nil map means
	// no composition data at all; a missing key means no data for that group.
	MinorityPct map[string]float64 `json:"minority_pct,omitempty"`

	// MalesPer100Females maps an age band ("20-29", "30-39", "40-49")
	// to the gender ratio within that band.
	MalesPer100Females map[string]float64 `json:"males_per_100_females,omitempty"`

	NeverMarriedMalePct   *float64 `json:"never_married_male_pct,omitempty"`
	NeverMarriedFemalePct *float64 `json:"never_married_female_pct,omitempty"`
}

// QualityOfLifeMetrics holds livability indicators.
type QualityOfLifeMetrics struct {
	WalkScore    *float64 `json:"walk_score,omitempty"`    // 0-100
	BikeScore    *float64 `json:"bike_score,omitempty"`    // 0-100
	TransitScore *float64 `json:"transit_score,omitempty"` // 0-100

	ViolentCrimeRate *float64 `json:"violent_crime_rate,omitempty"` // Incidents per 100k residents
	CrimeTrendPct    *float64 `json:"crime_trend_pct,omitempty"`    // Year-over-year change, negative = improving

	HealthyAirDaysPct *float64 `json:"healthy_air_days_pct,omitempty"` // AQI "good" days as percent of year
	HazardousAirDays  *float64 `json:"hazardous_air_days,omitempty"`   // AQI "unhealthy or worse" days per year

	FiberCoveragePct   *float64 `json:"fiber_coverage_pct,omitempty"`
	BroadbandProviders *float64 `json:"broadband_providers,omitempty"` // Count of wired providers

	StudentTeacherRatio *float64 `json:"student_teacher_ratio,omitempty"`
	GraduationRatePct   *float64 `json:"graduation_rate_pct,omitempty"`

	PhysiciansPer100k   *float64 `json:"physicians_per_100k,omitempty"`   // Primary care physicians
	HealthShortageScore *float64 `json:"health_shortage_score,omitempty"` // HPSA score 0-25, higher is worse

	CoastlineMiles    *float64 `json:"coastline_miles,omitempty"` // Distance to nearest coastline
	TrailMiles        *float64 `json:"trail_miles,omitempty"`     // Maintained trail mileage within 30 miles
	ElevationReliefFt *float64 `json:"elevation_relief_ft,omitempty"`
}

// CultureMetrics holds political, religious, and urban-lifestyle data.
type CultureMetrics struct {
	// PartisanIndex ranges -1 (strongly Republican) to +1 (strongly
	// Democratic), derived from recent statewide and county results.
	PartisanIndex   *float64 `json:"partisan_index,omitempty"`
	DemVoteSharePct *float64 `json:"dem_vote_share_pct,omitempty"`
	VoterTurnoutPct *float64 `json:"voter_turnout_pct,omitempty"`

	// ReligiousAdherence maps a tradition key (e.g. "catholic",
	// "evangelical", "jewish") to adherents per 1,000 residents.
	ReligiousAdherence      map[string]float64 `json:"religious_adherence,omitempty"`
	ReligiousDiversityIndex *float64           `json:"religious_diversity_index,omitempty"` // 0-100

	NightlifePer100k   *float64 `json:"nightlife_per_100k,omitempty"`   // Bars and music venues
	MuseumsPer100k     *float64 `json:"museums_per_100k,omitempty"`     // Museums and galleries
	RestaurantsPer100k *float64 `json:"restaurants_per_100k,omitempty"` // Full-service restaurants

	// SportsTeams maps a league to the number of franchises in the metro.
	// A nil map means no sports data; an empty map means zero teams.
	SportsTeams map[SportsLeague]int `json:"sports_teams,omitempty"`
}

// Float returns a pointer to v. Handy for building metric literals in
// tests and curated datasets.
func Float(v float64) *float64 {
	return &v
}
