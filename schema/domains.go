package schema

// Domain is an observed national range for a metric, used by linear
// range normalization. Values outside the domain clamp to its edges.
type Domain struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// PlateauDomain parameterizes the logarithmic critical-mass curve:
// below Min the score floors, Min to Knee climbs linearly, Knee to Max
// climbs logarithmically with diminishing returns.
type PlateauDomain struct {
	Min  float64 `json:"min"`
	Knee float64 `json:"knee"`
	Max  float64 `json:"max"`
}

// Climate domains, calibrated against NOAA normals for US metros.
var (
	DomainComfortDays       = Domain{50, 280}
	DomainExtremeHeatDays   = Domain{0, 120}
	DomainFreezeDays        = Domain{0, 180}
	DomainRainDays          = Domain{60, 200}
	DomainSnowDays          = Domain{0, 60}
	DomainCloudyDays        = Domain{80, 250}
	DomainSummerDewpoint    = Domain{50, 75}
	DomainTotalDegreeDays   = Domain{2500, 9500} // HDD + CDD
	DomainGrowingSeason     = Domain{120, 365}
	DomainSeasonalStdDev    = Domain{5, 25}
	DomainDiurnalSwing      = Domain{10, 40}
)

// Demographic domains.
var (
	DomainBachelorsPct    = Domain{10, 60}
	DomainForeignBornPct  = Domain{0, 30}
	DomainHouseholdIncome = Domain{40000, 110000}
	DomainPovertyRatePct  = Domain{5, 25}
	DomainGenderRatio     = Domain{85, 115} // males per 100 females
	DomainNeverMarriedPct = Domain{25, 60}
	DomainDisposableMonth = Domain{1500, 6000} // income minus estimated rent, USD/month
)

// Quality-of-life domains.
var (
	DomainViolentCrime   = Domain{100, 1500} // per 100k
	DomainHealthyAirPct  = Domain{60, 100}
	DomainFiberPct       = Domain{0, 100}
	DomainStudentTeacher = Domain{12, 25}
	DomainGraduationPct  = Domain{70, 100}
	DomainPhysicians     = Domain{50, 130} // per 100k
	DomainShortageScore  = Domain{0, 25}
	DomainCoastMiles     = Domain{0, 150}
	DomainReliefFt       = Domain{500, 7000}
	DomainTrailMiles     = PlateauDomain{50, 300, 2000}
)

// Culture and entertainment domains.
var (
	DomainTurnoutPct  = Domain{40, 75}
	DomainNightlife   = PlateauDomain{5, 20, 60}   // venues per 100k
	DomainMuseums     = PlateauDomain{2, 8, 25}    // per 100k
	DomainRestaurants = PlateauDomain{50, 200, 450} // per 100k
)

// NationalAdherenceBaseline maps a religious tradition to its national
// adherence rate per 1,000 residents. Concentration tiers in the culture
// scorer compare a city's rate against these.
var NationalAdherenceBaseline = map[string]float64{
	"evangelical": 167,
	"catholic":    188,
	"mainline":    83,
	"lds":         20,
	"jewish":      14,
	"muslim":      8,
	"orthodox":    3,
	"buddhist":    3,
	"hindu":       2,
}

// Cost model constants. The buyer path assumes a fixed-rate 30-year
// mortgage with 20% down; the national baseline payment anchors the
// derived housing index at 100.
const (
	NationalReferenceIncome = 74000.0 // USD, standard work persona
	NationalAvgTaxRate      = 0.22    // applied when a city's rate is absent
	MortgageRate            = 0.065   // annual
	MortgageTermMonths      = 360
	DownPaymentFraction     = 0.20
	BaselineMonthlyPayment  = 2100.0 // national median payment at baseline
	BaselineMonthlyRent     = 1800.0 // national median rent, for RPP-scaled estimates
	PropertyTaxRate         = 0.011  // effective annual rate on home value
	PropertyValueLagFactor  = 0.85   // owned homes valued below current median (purchase-price lag)
	HousingIndexCompressAt  = 150.0  // raw housing indices above this compress logarithmically
	PurchasingPowerSlope    = 1.25   // cost score points per purchasing-power point
)

// Population deficit penalty: unmet minimum population reduces the
// demographics score by up to MaxPopulationPenalty points, proportional
// to the fractional shortfall. Applied after the weighted average.
const MaxPopulationPenalty = 50.0
