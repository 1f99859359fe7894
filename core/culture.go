package core

import (
	"fmt"

	"github.com/cityscope/cityscope/core/norm"
	"github.com/cityscope/cityscope/schema"
)

// tribalPenalty shaves a strongly partisan user's alignment score when
// a city leans the opposite way: distance alone understates the
// discomfort of being surrounded by the other side.
const tribalPenalty = 0.90

// politicalTargets maps the five-point lean preference to a target on
// the partisan index (-1 Republican .. +1 Democratic).
var politicalTargets = map[schema.PoliticalLean]float64{
	schema.StrongLeft:      0.8,
	schema.LeanLeft:        0.4,
	schema.SwingPreference: 0.0,
	schema.LeanRight:       -0.4,
	schema.StrongRight:     -0.8,
}

func politicalTarget(lean schema.PoliticalLean) float64 {
	return politicalTargets[lean]
}

func scoreCulture(m *schema.CityMetrics, p *schema.Preferences) schema.CategoryResult {
	c := m.Culture
	cp := p.Culture
	var fs factorSet

	addPoliticalFactor(&fs, c, cp)
	fs.addLinear("civic engagement", cp.CivicWeight, c.VoterTurnoutPct, "% turnout", schema.DomainTurnoutPct, true)
	addReligionFactor(&fs, c, cp.Religion)

	if cp.ReligiousDiversityWeight > 0 && c.ReligiousDiversityIndex != nil {
		fs.add(schema.FactorAnalysis{
			Name:        "religious diversity",
			Weight:      cp.ReligiousDiversityWeight,
			Value:       *c.ReligiousDiversityIndex,
			Unit:        "index",
			Score:       norm.Clamp(*c.ReligiousDiversityIndex, 0, 100),
			Explanation: fmt.Sprintf("religious diversity index of %.0f", *c.ReligiousDiversityIndex),
		})
	}

	return fs.result(schema.CultureCategory)
}

func addPoliticalFactor(fs *factorSet, c schema.CultureMetrics, cp schema.CulturePrefs) {
	if cp.PoliticalWeight <= 0 || cp.Political == schema.LeanNone || c.PartisanIndex == nil {
		return
	}
	actual := *c.PartisanIndex
	target := politicalTarget(cp.Political)
	score := norm.Gaussian(actual, target, cp.PoliticalWeight)

	opposed := (cp.Political == schema.StrongLeft && actual < -0.1) ||
		(cp.Political == schema.StrongRight && actual > 0.1)
	if opposed {
		score *= tribalPenalty
	}

	f := schema.FactorAnalysis{
		Name:        "political alignment",
		Weight:      cp.PoliticalWeight,
		Value:       actual,
		Unit:        "partisan index",
		Threshold:   &target,
		Score:       score,
		Explanation: fmt.Sprintf("partisan index %+.2f against your %+.2f target", actual, target),
	}
	if opposed {
		f.Status = schema.StatusBad
		f.Explanation = fmt.Sprintf("city leans opposite your %s preference (index %+.2f)", cp.Political, actual)
	}
	fs.add(f)
}

// addReligionFactor checks the chosen tradition's adherence rate
// against the user's minimum, then grades concentration relative to the
// national baseline for that tradition.
func addReligionFactor(fs *factorSet, c schema.CultureMetrics, rp schema.ReligionPrefs) {
	if rp.Weight <= 0 || rp.Tradition == "" || c.ReligiousAdherence == nil {
		return
	}
	rate, ok := c.ReligiousAdherence[rp.Tradition]
	if !ok {
		return
	}

	var score float64
	if rp.MinPer1000 > 0 && rate < rp.MinPer1000 {
		// Below the stated minimum: scale down toward a hard floor.
		score = max(20, 70*rate/rp.MinPer1000)
	} else {
		baseline := schema.NationalAdherenceBaseline[rp.Tradition]
		if baseline <= 0 {
			baseline = 10
		}
		switch ratio := rate / baseline; {
		case ratio >= 2.0:
			score = 100
		case ratio >= 1.25:
			score = 90
		case ratio >= 0.75:
			score = 80
		default:
			score = 70
		}
	}

	min := rp.MinPer1000
	fs.add(schema.FactorAnalysis{
		Name:        "religious community",
		Weight:      rp.Weight,
		Value:       rate,
		Unit:        "per 1,000",
		Threshold:   &min,
		Score:       score,
		Explanation: fmt.Sprintf("%s adherence at %.0f per 1,000 residents", rp.Tradition, rate),
	})
}
