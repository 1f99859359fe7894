package core

import (
	"fmt"
	"math"

	"github.com/cityscope/cityscope/core/norm"
	"github.com/cityscope/cityscope/schema"
)

// nationalPerCapitaIncome anchors the local-earner purchasing-power
// baseline, and nationalMedianHomePrice anchors the homeowner
// property-tax baseline.
const (
	nationalPerCapitaIncome  = 68000.0
	nationalMedianHomePrice  = 430000.0
	utilityNudgeFraction     = 0.25 // renter index nudge per point of utilities deviation
	homeownerGoodsShare      = 0.70
	homeownerServicesShare   = 0.30
	buyerHousingShare        = 0.55
	buyerGoodsShare          = 0.30
	buyerServicesShare       = 0.15
)

// scoreCost runs the persona cost model. The category value comes from
// a single purchasing-power computation, not a weighted factor average;
// the remaining factors are descriptive context carrying zero weight.
func scoreCost(m *schema.CityMetrics, p *schema.Preferences) schema.CategoryResult {
	adjIdx, okIdx := adjustedCostIndex(m, &p.Cost)
	income, okInc := disposableIncome(m, &p.Cost)
	if !okIdx || !okInc {
		// Not enough economic data to run the model at all.
		return schema.CategoryResult{Category: schema.CostCategory, Value: neutralScore}
	}

	baseline := baselineDisposable(m, &p.Cost)
	ppi := income / (adjIdx / 100) / baseline * 100
	score := norm.Clamp(math.Round(50+(ppi-100)*schema.PurchasingPowerSlope), 0, 100)

	var fs factorSet
	fs.add(schema.FactorAnalysis{
		Name:      "purchasing power",
		Weight:    100,
		WeightPct: 100,
		Value:     math.Round(ppi),
		Unit:      "index",
		Score:     score,
		Explanation: fmt.Sprintf("$%.0f disposable income against a cost index of %.0f (%s, %s)",
			income, adjIdx, p.Cost.Housing, p.Cost.Work),
	})
	addCostContext(&fs, m)

	r := fs.result(schema.CostCategory)
	// The model's score stands; the factor average would double-count it.
	r.Value = score
	return r
}

// addCostContext appends the descriptive sub-factors: shown in the
// breakdown for context, never part of the score.
func addCostContext(fs *factorSet, m *schema.CityMetrics) {
	e := m.Economy
	if e.RPPHousing != nil {
		fs.add(schema.FactorAnalysis{
			Name:        "housing costs",
			Value:       *e.RPPHousing,
			Unit:        "index",
			Score:       norm.Linear(*e.RPPHousing, 60, 220, false),
			Explanation: fmt.Sprintf("housing price level is %.0f%% of the national average", *e.RPPHousing),
		})
	}
	if e.RPPGoods != nil && e.RPPOtherServices != nil {
		blended := (*e.RPPGoods + *e.RPPOtherServices) / 2
		fs.add(schema.FactorAnalysis{
			Name:        "goods and services",
			Value:       blended,
			Unit:        "index",
			Score:       norm.Linear(blended, 85, 120, false),
			Explanation: fmt.Sprintf("everyday goods and services run %.0f%% of the national average", blended),
		})
	}
	if e.EffectiveTaxRate != nil {
		pct := *e.EffectiveTaxRate * 100
		fs.add(schema.FactorAnalysis{
			Name:        "tax burden",
			Value:       pct,
			Unit:        "%",
			Score:       norm.Linear(pct, 15, 30, false),
			Explanation: fmt.Sprintf("combined effective tax rate of %.1f%%", pct),
		})
	}
	if e.PerCapitaIncome != nil {
		fs.add(schema.FactorAnalysis{
			Name:        "local income",
			Value:       *e.PerCapitaIncome,
			Unit:        "USD",
			Score:       norm.Linear(*e.PerCapitaIncome, 40000, 110000, true),
			Explanation: fmt.Sprintf("per-capita income of $%.0f", *e.PerCapitaIncome),
		})
	}
}

// adjustedCostIndex computes the persona-adjusted cost index, national
// baseline 100. ok is false when the persona's required indices are
// missing.
func adjustedCostIndex(m *schema.CityMetrics, cp *schema.CostPrefs) (float64, bool) {
	e := m.Economy
	switch cp.Housing {
	case schema.HomeownerPersona:
		// Mortgage payments are fixed at purchase, so housing drops out.
		if e.RPPGoods == nil || e.RPPOtherServices == nil {
			return 0, false
		}
		return homeownerGoodsShare**e.RPPGoods + homeownerServicesShare**e.RPPOtherServices, true

	case schema.BuyerPersona:
		if e.MedianHomePrice == nil || e.RPPGoods == nil || e.RPPOtherServices == nil {
			return 0, false
		}
		raw := monthlyMortgage(*e.MedianHomePrice) / schema.BaselineMonthlyPayment * 100
		housing := compressHousingIndex(raw)
		return buyerHousingShare*housing + buyerGoodsShare**e.RPPGoods + buyerServicesShare**e.RPPOtherServices, true

	default: // renter
		if e.RPPAllItems == nil {
			return 0, false
		}
		idx := *e.RPPAllItems
		if e.RPPUtilities != nil {
			idx += utilityNudgeFraction * (*e.RPPUtilities - 100)
		}
		return idx, true
	}
}

// monthlyMortgage computes the payment on a 30-year fixed loan at the
// assumed rate with the standard down payment.
func monthlyMortgage(price float64) float64 {
	loan := price * (1 - schema.DownPaymentFraction)
	r := schema.MortgageRate / 12
	return loan * r / (1 - math.Pow(1+r, -schema.MortgageTermMonths))
}

// compressHousingIndex flattens raw housing indices above the
// compression point so very expensive markets are penalized on a
// logarithmic rather than linear scale.
func compressHousingIndex(raw float64) float64 {
	at := schema.HousingIndexCompressAt
	if raw <= at {
		return raw
	}
	return at + math.Log10(1+(raw-at)/50)*50
}

// disposableIncome resolves the work persona's annual income after
// taxes (and, for homeowners, estimated property tax).
func disposableIncome(m *schema.CityMetrics, cp *schema.CostPrefs) (float64, bool) {
	e := m.Economy
	tax := schema.NationalAvgTaxRate
	if e.EffectiveTaxRate != nil {
		tax = *e.EffectiveTaxRate
	}

	var income float64
	switch cp.Work {
	case schema.LocalEarnerPersona:
		// Per-capita income figures are already effective local earnings.
		if e.PerCapitaIncome == nil {
			return 0, false
		}
		income = *e.PerCapitaIncome
	case schema.RetireePersona:
		fixed := cp.FixedIncome
		if fixed <= 0 {
			fixed = schema.NationalReferenceIncome
		}
		income = fixed * (1 - tax)
	default: // standard
		income = schema.NationalReferenceIncome * (1 - tax)
	}

	if cp.Housing == schema.HomeownerPersona && e.MedianHomePrice != nil {
		// Owned homes trail the current median due to purchase-price lag.
		income -= schema.PropertyTaxRate * schema.PropertyValueLagFactor * *e.MedianHomePrice
	}
	if income < 0 {
		income = 0
	}
	return income, true
}

// baselineDisposable is the persona-specific national income the
// purchasing-power index is rescaled against.
func baselineDisposable(m *schema.CityMetrics, cp *schema.CostPrefs) float64 {
	var base float64
	switch cp.Work {
	case schema.LocalEarnerPersona:
		base = nationalPerCapitaIncome
	case schema.RetireePersona:
		// A retiree's own income at the national average tax rate, so the
		// index isolates cost differences between cities.
		fixed := cp.FixedIncome
		if fixed <= 0 {
			fixed = schema.NationalReferenceIncome
		}
		base = fixed * (1 - schema.NationalAvgTaxRate)
	default:
		base = schema.NationalReferenceIncome * (1 - schema.NationalAvgTaxRate)
	}

	if cp.Housing == schema.HomeownerPersona {
		base -= schema.PropertyTaxRate * schema.PropertyValueLagFactor * nationalMedianHomePrice
	}
	return base
}
