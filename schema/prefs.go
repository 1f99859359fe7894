package schema

// PrefsVersion is the current preference document schema version.
// Older documents with a lower version load fine; fields they lack
// keep their defaults.
const PrefsVersion = 3

// Preferences is the full user preference configuration. The scoring
// engine never mutates it; editing and serialization belong to callers.
// All weights are 0-100 where 0 disables the factor or category. Only
// relative weight sizes matter.
type Preferences struct {
	Version int             `json:"version"`
	Weights CategoryWeights `json:"weights"`

	Climate       ClimatePrefs       `json:"climate"`
	Cost          CostPrefs          `json:"cost"`
	Demographics  DemographicPrefs   `json:"demographics"`
	QualityOfLife QualityOfLifePrefs `json:"quality_of_life"`
	Culture       CulturePrefs       `json:"culture"`
	Entertainment EntertainmentPrefs `json:"entertainment"`

	Filters FilterPrefs `json:"filters"`
}

// CategoryWeights holds the top-level category weights.
type CategoryWeights struct {
	Climate       int `json:"climate"`
	Cost          int `json:"cost"`
	Demographics  int `json:"demographics"`
	QualityOfLife int `json:"quality_of_life"`
	Culture       int `json:"culture"`
	Entertainment int `json:"entertainment"`
}

// ForCategory returns the weight for the given category.
func (w CategoryWeights) ForCategory(cat Category) int {
	switch cat {
	case ClimateCategory:
		return w.Climate
	case CostCategory:
		return w.Cost
	case DemographicsCategory:
		return w.Demographics
	case QualityOfLifeCategory:
		return w.QualityOfLife
	case CultureCategory:
		return w.Culture
	case EntertainmentCategory:
		return w.Entertainment
	default:
		return 0
	}
}

// ClimatePrefs holds the eleven climate factor weights and the two
// direction toggles.
type ClimatePrefs struct {
	ComfortWeight       int `json:"comfort_weight"`
	HeatWeight          int `json:"heat_weight"`
	FreezeWeight        int `json:"freeze_weight"`
	RainWeight          int `json:"rain_weight"`
	SnowWeight          int `json:"snow_weight"`
	CloudWeight         int `json:"cloud_weight"`
	HumidityWeight      int `json:"humidity_weight"`
	UtilityCostWeight   int `json:"utility_cost_weight"`
	GrowingSeasonWeight int `json:"growing_season_weight"`
	StabilityWeight     int `json:"stability_weight"`
	DiurnalWeight       int `json:"diurnal_weight"`

	PreferSnow    bool `json:"prefer_snow"`    // Inverts the snow-days direction
	PreferSeasons bool `json:"prefer_seasons"` // Inverts the seasonal-stability direction
}

// CostPrefs selects the persona cost model inputs.
type CostPrefs struct {
	Housing     HousingPersona `json:"housing"`
	Work        WorkPersona    `json:"work"`
	FixedIncome float64        `json:"fixed_income"` // USD per year, retiree persona only
}

// DemographicPrefs holds demographic factor weights and sub-scorer settings.
type DemographicPrefs struct {
	DiversityWeight      int `json:"diversity_weight"`
	AgeMatchWeight       int `json:"age_match_weight"`
	EducationWeight      int `json:"education_weight"`
	ForeignBornWeight    int `json:"foreign_born_weight"`
	EconomicHealthWeight int `json:"economic_health_weight"`

	AgePreference AgeBand `json:"age_preference"`

	// MinPopulation below the actual population applies a graduated
	// penalty to the category score. Zero disables the check.
	MinPopulation float64 `json:"min_population"`

	Minority      MinorityPrefs      `json:"minority"`
	Compatibility CompatibilityPrefs `json:"compatibility"`
}

// MinorityPrefs configures the minority-presence sub-scorer.
type MinorityPrefs struct {
	Weight         int           `json:"weight"`
	Group          MinorityGroup `json:"group"`
	Subgroup       string        `json:"subgroup,omitempty"` // e.g. "indian" under the asian group
	MinPresencePct float64       `json:"min_presence_pct"`
}

// CompatibilityPrefs configures the social-compatibility sub-scorer.
type CompatibilityPrefs struct {
	Weight  int     `json:"weight"`
	Seeking Gender  `json:"seeking"`
	AgeBand AgeBand `json:"age_band"` // Which gender-ratio band to read
}

// QualityOfLifePrefs holds QoL factor weights and thresholds.
type QualityOfLifePrefs struct {
	WalkabilityWeight int `json:"walkability_weight"`
	SafetyWeight      int `json:"safety_weight"`
	AirQualityWeight  int `json:"air_quality_weight"`
	BroadbandWeight   int `json:"broadband_weight"`
	SchoolsWeight     int `json:"schools_weight"`
	HealthcareWeight  int `json:"healthcare_weight"`

	// Each threshold marks its factor bad when the city misses the bound
	// by more than 10%. Zero disables a threshold.
	MaxCrimeRate     float64 `json:"max_crime_rate"`      // safety: violent crime per 100k
	MinWalkScore     float64 `json:"min_walk_score"`      // walkability: walk index
	MinAirQualityPct float64 `json:"min_air_quality_pct"` // air quality: % healthy air days
	MinBroadbandPct  float64 `json:"min_broadband_pct"`   // broadband: % fiber coverage
	MinGraduationPct float64 `json:"min_graduation_pct"`  // schools: graduation rate
	MinPhysicians    float64 `json:"min_physicians"`      // healthcare: physicians per 100k

	Recreation RecreationPrefs `json:"recreation"`
}

// RecreationPrefs blends nature access sub-weights. Shared between the
// quality-of-life and entertainment scorers.
type RecreationPrefs struct {
	Weight          int `json:"weight"`
	NatureWeight    int `json:"nature_weight"`
	BeachWeight     int `json:"beach_weight"`
	MountainsWeight int `json:"mountains_weight"`
}

// CulturePrefs holds political, civic, and religious settings.
type CulturePrefs struct {
	Political       PoliticalLean `json:"political"`
	PoliticalWeight int           `json:"political_weight"`
	CivicWeight     int           `json:"civic_weight"`

	Religion ReligionPrefs `json:"religion"`

	ReligiousDiversityWeight int `json:"religious_diversity_weight"`
}

// ReligionPrefs configures the religious-presence factor.
type ReligionPrefs struct {
	Weight     int     `json:"weight"`
	Tradition  string  `json:"tradition,omitempty"` // Key into ReligiousAdherence
	MinPer1000 float64 `json:"min_per_1000"`
}

// EntertainmentPrefs holds urban-lifestyle factor weights. The
// recreation factor reuses QualityOfLifePrefs.Recreation sub-weights.
type EntertainmentPrefs struct {
	NightlifeWeight  int `json:"nightlife_weight"`
	ArtsWeight       int `json:"arts_weight"`
	DiningWeight     int `json:"dining_weight"`
	SportsWeight     int `json:"sports_weight"`
	RecreationWeight int `json:"recreation_weight"`
}

// FilterPrefs holds hard exclusion rules, evaluated independently of
// all weighting.
type FilterPrefs struct {
	RequireLeague SportsLeague `json:"require_league,omitempty"` // Empty disables
	MaxHomePrice  float64      `json:"max_home_price"`           // Zero disables
	RequireFiber  bool         `json:"require_fiber"`
}

// MinFiberPctForFilter is the coverage floor the fiber filter enforces.
const MinFiberPctForFilter = 25.0

// DefaultPreferences returns a balanced starting configuration: all six
// categories weighted, moderate factor weights, renter/standard cost
// personas, and no hard filters.
func DefaultPreferences() *Preferences {
	return &Preferences{
		Version: PrefsVersion,
		Weights: CategoryWeights{
			Climate:       60,
			Cost:          70,
			Demographics:  40,
			QualityOfLife: 60,
			Culture:       30,
			Entertainment: 40,
		},
		Climate: ClimatePrefs{
			ComfortWeight:       70,
			HeatWeight:          40,
			FreezeWeight:        40,
			RainWeight:          30,
			SnowWeight:          20,
			CloudWeight:         30,
			HumidityWeight:      40,
			UtilityCostWeight:   20,
			GrowingSeasonWeight: 10,
			StabilityWeight:     10,
			DiurnalWeight:       0,
		},
		Cost: CostPrefs{
			Housing: RenterPersona,
			Work:    StandardPersona,
		},
		Demographics: DemographicPrefs{
			DiversityWeight:      40,
			AgeMatchWeight:       30,
			EducationWeight:      40,
			ForeignBornWeight:    0,
			EconomicHealthWeight: 30,
		},
		QualityOfLife: QualityOfLifePrefs{
			WalkabilityWeight: 40,
			SafetyWeight:      60,
			AirQualityWeight:  40,
			BroadbandWeight:   30,
			SchoolsWeight:     30,
			HealthcareWeight:  30,
			Recreation: RecreationPrefs{
				Weight:          20,
				NatureWeight:    50,
				BeachWeight:     25,
				MountainsWeight: 25,
			},
		},
		Culture: CulturePrefs{
			Political:       LeanNone,
			PoliticalWeight: 0,
			CivicWeight:     20,
		},
		Entertainment: EntertainmentPrefs{
			NightlifeWeight:  40,
			ArtsWeight:       40,
			DiningWeight:     50,
			SportsWeight:     20,
			RecreationWeight: 20,
		},
	}
}
