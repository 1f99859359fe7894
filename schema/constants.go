package schema

// Custom string types for type safety.
type (
	// Category is one of the top-level scoring domains.
	Category string

	// HousingPersona selects the cost-of-living housing formula.
	HousingPersona string

	// WorkPersona selects the income source for the cost model.
	WorkPersona string

	// AgeBand is a coarse age-range preference.
	AgeBand string

	// PoliticalLean is the five-point political preference.
	PoliticalLean string

	// MinorityGroup identifies a demographic group for the presence sub-scorer.
	MinorityGroup string

	// Gender is used by the compatibility sub-scorer.
	Gender string

	// SportsLeague identifies a professional sports league.
	SportsLeague string

	// FactorStatus is a qualitative bucket for a factor's sub-score.
	FactorStatus string

	// OutputMode represents the format of the output.
	OutputMode string

	// StoreBackend represents the database backend for persistence.
	StoreBackend string
)

// All scoring categories.
const (
	ClimateCategory       Category = "climate"
	CostCategory          Category = "cost"
	DemographicsCategory  Category = "demographics"
	QualityOfLifeCategory Category = "quality-of-life"
	CultureCategory       Category = "culture"
	EntertainmentCategory Category = "entertainment"
)

// AllCategories lists categories in display order.
var AllCategories = []Category{
	ClimateCategory,
	CostCategory,
	DemographicsCategory,
	QualityOfLifeCategory,
	CultureCategory,
	EntertainmentCategory,
}

// ValidCategories lists all valid categories.
var ValidCategories = map[Category]struct{}{
	ClimateCategory:       {},
	CostCategory:          {},
	DemographicsCategory:  {},
	QualityOfLifeCategory: {},
	CultureCategory:       {},
	EntertainmentCategory: {},
}

// All housing personas.
const (
	RenterPersona    HousingPersona = "renter" // default
	HomeownerPersona HousingPersona = "homeowner"
	BuyerPersona     HousingPersona = "prospective-buyer"
)

// All work personas.
const (
	LocalEarnerPersona WorkPersona = "local-earner"
	StandardPersona    WorkPersona = "standard" // default
	RetireePersona     WorkPersona = "retiree"
)

// ValidHousingPersonas lists all valid housing personas.
var ValidHousingPersonas = map[HousingPersona]struct{}{
	RenterPersona:    {},
	HomeownerPersona: {},
	BuyerPersona:     {},
}

// ValidWorkPersonas lists all valid work personas.
var ValidWorkPersonas = map[WorkPersona]struct{}{
	LocalEarnerPersona: {},
	StandardPersona:    {},
	RetireePersona:     {},
}

// Age-band preferences. The bands match the gender-ratio segmentation
// in DemographicMetrics.
const (
	AgeBandNone   AgeBand = ""      // no preference
	AgeBandYoung  AgeBand = "20-29" // target median age 28
	AgeBandMiddle AgeBand = "30-39" // target median age 36
	AgeBandOlder  AgeBand = "40-49" // target median age 44
)

// ValidAgeBands lists all valid age bands, including "no preference".
var ValidAgeBands = map[AgeBand]struct{}{
	AgeBandNone:   {},
	AgeBandYoung:  {},
	AgeBandMiddle: {},
	AgeBandOlder:  {},
}

// Political lean preferences. "none" disables the alignment factor.
const (
	LeanNone        PoliticalLean = "none"
	StrongLeft      PoliticalLean = "strong-left"
	LeanLeft        PoliticalLean = "lean-left"
	SwingPreference PoliticalLean = "swing"
	LeanRight       PoliticalLean = "lean-right"
	StrongRight     PoliticalLean = "strong-right"
)

// ValidPoliticalLeans lists all valid political leans.
var ValidPoliticalLeans = map[PoliticalLean]struct{}{
	LeanNone:        {},
	StrongLeft:      {},
	LeanLeft:        {},
	SwingPreference: {},
	LeanRight:       {},
	StrongRight:     {},
}

// Minority groups tracked in the dataset. Hispanic and Asian groups
// support named subgroup breakdowns (e.g. "asian:indian").
const (
	GroupNone     MinorityGroup = ""
	GroupBlack    MinorityGroup = "black"
	GroupHispanic MinorityGroup = "hispanic"
	GroupAsian    MinorityGroup = "asian"
	GroupNative   MinorityGroup = "native"
	GroupPacific  MinorityGroup = "pacific"
)

// ValidMinorityGroups lists all valid minority groups.
var ValidMinorityGroups = map[MinorityGroup]struct{}{
	GroupNone:     {},
	GroupBlack:    {},
	GroupHispanic: {},
	GroupAsian:    {},
	GroupNative:   {},
	GroupPacific:  {},
}

// SubgroupCapable reports whether a group supports subgroup breakdowns.
var SubgroupCapable = map[MinorityGroup]bool{
	GroupHispanic: true,
	GroupAsian:    true,
}

// Genders for the compatibility sub-scorer.
const (
	GenderNone   Gender = ""
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// All tracked professional leagues.
const (
	LeagueNFL SportsLeague = "nfl"
	LeagueNBA SportsLeague = "nba"
	LeagueMLB SportsLeague = "mlb"
	LeagueNHL SportsLeague = "nhl"
	LeagueMLS SportsLeague = "mls"
)

// ValidLeagues lists all valid sports leagues.
var ValidLeagues = map[SportsLeague]struct{}{
	LeagueNFL: {},
	LeagueNBA: {},
	LeagueMLB: {},
	LeagueNHL: {},
	LeagueMLS: {},
}

// Factor status buckets.
const (
	StatusGood    FactorStatus = "good"
	StatusNeutral FactorStatus = "neutral"
	StatusWarning FactorStatus = "warning"
	StatusBad     FactorStatus = "bad"
)

// All output modes supported.
const (
	TextOut    OutputMode = "text" // default
	CSVOut     OutputMode = "csv"
	JSONOut    OutputMode = "json"
	ParquetOut OutputMode = "parquet"
)

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	TextOut:    {},
	CSVOut:     {},
	JSONOut:    {},
	ParquetOut: {},
}

// All store backends supported.
const (
	SQLiteBackend     StoreBackend = "sqlite" // default
	MySQLBackend      StoreBackend = "mysql"
	PostgreSQLBackend StoreBackend = "postgresql"
	NoneBackend       StoreBackend = "none"
)

// ValidStoreBackends lists all valid store backends.
var ValidStoreBackends = map[StoreBackend]struct{}{
	SQLiteBackend:     {},
	MySQLBackend:      {},
	PostgreSQLBackend: {},
	NoneBackend:       {},
}
