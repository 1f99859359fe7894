package core

import (
	"fmt"
	"math"

	"github.com/cityscope/cityscope/core/norm"
	"github.com/cityscope/cityscope/schema"
)

// diversityBaseline is the Simpson's-index value that maps to a full
// sub-score; the most diverse US metros sit just under it.
const diversityBaseline = 70.0

// ageBandTarget maps an age-band preference to its target median age.
var ageBandTarget = map[schema.AgeBand]float64{
	schema.AgeBandYoung:  28,
	schema.AgeBandMiddle: 36,
	schema.AgeBandOlder:  44,
}

func scoreDemographics(m *schema.CityMetrics, p *schema.Preferences) schema.CategoryResult {
	d := m.Demographics
	dp := p.Demographics
	var fs factorSet

	if dp.DiversityWeight > 0 && d.DiversityIndex != nil {
		score := math.Min(100, *d.DiversityIndex/diversityBaseline*100)
		fs.add(schema.FactorAnalysis{
			Name:        "diversity",
			Weight:      dp.DiversityWeight,
			Value:       *d.DiversityIndex,
			Unit:        "index",
			Score:       score,
			Explanation: fmt.Sprintf("diversity index of %.0f against a %.0f baseline", *d.DiversityIndex, diversityBaseline),
		})
	}

	if dp.AgeMatchWeight > 0 && dp.AgePreference != schema.AgeBandNone && d.MedianAge != nil {
		target := ageBandTarget[dp.AgePreference]
		score := ageTierScore(*d.MedianAge, target)
		fs.add(schema.FactorAnalysis{
			Name:        "age match",
			Weight:      dp.AgeMatchWeight,
			Value:       *d.MedianAge,
			Unit:        "years",
			Threshold:   &target,
			Score:       score,
			Explanation: fmt.Sprintf("median age %.1f vs a preferred %s crowd", *d.MedianAge, dp.AgePreference),
		})
	}

	fs.addLinear("education", dp.EducationWeight, d.BachelorsPct, "% bachelors+", schema.DomainBachelorsPct, true)
	fs.addLinear("foreign born", dp.ForeignBornWeight, d.ForeignBornPct, "%", schema.DomainForeignBornPct, true)

	if dp.EconomicHealthWeight > 0 {
		var b blend
		b.put(scorePtr(d.MedianHouseholdIncome, schema.DomainHouseholdIncome, true), 0.6)
		b.put(scorePtr(d.PovertyRatePct, schema.DomainPovertyRatePct, false), 0.4)
		if score, ok := b.value(); ok {
			value := 0.0
			if d.MedianHouseholdIncome != nil {
				value = *d.MedianHouseholdIncome
			}
			fs.add(schema.FactorAnalysis{
				Name:        "economic health",
				Weight:      dp.EconomicHealthWeight,
				Value:       value,
				Unit:        "USD household",
				Score:       score,
				Explanation: "household income blended with the poverty rate",
			})
		}
	}

	addMinorityFactor(&fs, d, dp.Minority)
	addCompatibilityFactor(&fs, m, p)

	r := fs.result(schema.DemographicsCategory)

	// Population is not a weighted factor: an unmet minimum applies a
	// graduated penalty to the category total instead.
	if dp.MinPopulation > 0 && d.Population != nil {
		penalty := norm.DeficitPenalty(*d.Population, dp.MinPopulation, schema.MaxPopulationPenalty)
		if penalty > 0 {
			r.Penalty = penalty
			r.PenaltyReason = fmt.Sprintf("population %.0f below your %.0f minimum", *d.Population, dp.MinPopulation)
			r.Value = norm.Clamp(r.Value-penalty, 0, 100)
		}
	}
	return r
}

// ageTierScore is deliberately tiered rather than continuous: close
// enough reads as a match, not a gradient.
func ageTierScore(medianAge, target float64) float64 {
	diff := math.Abs(medianAge - target)
	switch {
	case diff <= 3:
		return 100
	case diff <= 6:
		return 75
	case diff <= 10:
		return 50
	default:
		return 25
	}
}

// addMinorityFactor scores the presence of a chosen group against a
// minimum share: meeting the minimum starts at 70 and climbs 2 points
// per percent of surplus; missing it drops 5 points per percent short.
func addMinorityFactor(fs *factorSet, d schema.DemographicMetrics, mp schema.MinorityPrefs) {
	if mp.Weight <= 0 || mp.Group == schema.GroupNone || d.MinorityPct == nil {
		return
	}
	key := string(mp.Group)
	if mp.Subgroup != "" {
		key += ":" + mp.Subgroup
	}
	actual, ok := d.MinorityPct[key]
	if !ok {
		return
	}

	var score float64
	if actual >= mp.MinPresencePct {
		score = math.Min(100, 70+(actual-mp.MinPresencePct)*2)
	} else {
		score = math.Max(0, 70-(mp.MinPresencePct-actual)*5)
	}

	min := mp.MinPresencePct
	fs.add(schema.FactorAnalysis{
		Name:        "community presence",
		Weight:      mp.Weight,
		Value:       actual,
		Unit:        "%",
		Threshold:   &min,
		Score:       score,
		Explanation: fmt.Sprintf("%s population at %.1f%% vs your %.1f%% minimum", key, actual, min),
	})
}

// Compatibility sub-weights: the dating-pool signal carries the largest
// share, then disposable income, political alignment, and a
// walkability/safety blend.
const (
	compatPoolShare      = 0.40
	compatIncomeShare    = 0.30
	compatPoliticsShare  = 0.20
	compatLifestyleShare = 0.10
)

// addCompatibilityFactor blends the social-compatibility signals into a
// single weighted factor.
func addCompatibilityFactor(fs *factorSet, m *schema.CityMetrics, p *schema.Preferences) {
	cp := p.Demographics.Compatibility
	if cp.Weight <= 0 || cp.Seeking == schema.GenderNone {
		return
	}
	d := m.Demographics

	var b blend
	b.put(datingPoolScore(d, cp), compatPoolShare)
	b.put(compatIncomeScore(m), compatIncomeShare)
	b.put(compatPoliticsScore(m, p, cp.Weight), compatPoliticsShare)
	b.put(compatLifestyleScore(m), compatLifestyleShare)

	score, ok := b.value()
	if !ok {
		return
	}
	fs.add(schema.FactorAnalysis{
		Name:        "compatibility",
		Weight:      cp.Weight,
		Value:       math.Round(score),
		Unit:        "index",
		Score:       score,
		Explanation: fmt.Sprintf("dating pool, disposable income, alignment, and lifestyle blend for meeting %s partners", cp.Seeking),
	})
}

// datingPoolScore blends the target-gender population ratio with the
// never-married share for that gender.
func datingPoolScore(d schema.DemographicMetrics, cp schema.CompatibilityPrefs) *float64 {
	band := cp.AgeBand
	if band == schema.AgeBandNone {
		band = schema.AgeBandYoung
	}

	var b blend
	if ratio, ok := d.MalesPer100Females[string(band)]; ok {
		// Seeking men favors a male-heavy ratio; seeking women the reverse.
		s := norm.Linear(ratio, schema.DomainGenderRatio.Min, schema.DomainGenderRatio.Max, cp.Seeking == schema.GenderMale)
		b.put(&s, 0.6)
	}
	var neverMarried *float64
	if cp.Seeking == schema.GenderMale {
		neverMarried = d.NeverMarriedMalePct
	} else {
		neverMarried = d.NeverMarriedFemalePct
	}
	b.put(scorePtr(neverMarried, schema.DomainNeverMarriedPct, true), 0.4)

	if s, ok := b.value(); ok {
		return &s
	}
	return nil
}

// compatIncomeScore estimates monthly income left after rent, with rent
// scaled from the housing price index.
func compatIncomeScore(m *schema.CityMetrics) *float64 {
	d := m.Demographics
	e := m.Economy
	if d.MedianHouseholdIncome == nil || e.RPPHousing == nil {
		return nil
	}
	rent := schema.BaselineMonthlyRent * *e.RPPHousing / 100
	disposable := *d.MedianHouseholdIncome/12 - rent
	s := norm.Linear(disposable, schema.DomainDisposableMonth.Min, schema.DomainDisposableMonth.Max, true)
	return &s
}

func compatPoliticsScore(m *schema.CityMetrics, p *schema.Preferences, importance int) *float64 {
	lean := p.Culture.Political
	if lean == schema.LeanNone || m.Culture.PartisanIndex == nil {
		return nil
	}
	s := norm.Gaussian(*m.Culture.PartisanIndex, politicalTarget(lean), importance)
	return &s
}

func compatLifestyleScore(m *schema.CityMetrics) *float64 {
	q := m.QualityOfLife
	var b blend
	b.put(scorePtr(q.WalkScore, schema.Domain{Min: 0, Max: 100}, true), 0.6)
	b.put(scorePtr(q.ViolentCrimeRate, schema.DomainViolentCrime, false), 0.4)
	if s, ok := b.value(); ok {
		return &s
	}
	return nil
}
