package core

import (
	"fmt"
	"math"

	"github.com/cityscope/cityscope/core/norm"
	"github.com/cityscope/cityscope/schema"
)

func scoreQualityOfLife(m *schema.CityMetrics, p *schema.Preferences) schema.CategoryResult {
	q := m.QualityOfLife
	qp := p.QualityOfLife
	var fs factorSet

	if qp.WalkabilityWeight > 0 {
		idx100 := schema.Domain{Min: 0, Max: 100}
		var b blend
		b.put(scorePtr(q.WalkScore, idx100, true), 0.60)
		b.put(scorePtr(q.TransitScore, idx100, true), 0.25)
		b.put(scorePtr(q.BikeScore, idx100, true), 0.15)
		if score, ok := b.value(); ok {
			f := schema.FactorAnalysis{
				Name:        "walkability",
				Weight:      qp.WalkabilityWeight,
				Value:       math.Round(score),
				Unit:        "index",
				Score:       score,
				Explanation: "walk, transit, and bike indices blended",
			}
			if q.WalkScore != nil {
				applyMinThreshold(&f, *q.WalkScore, qp.MinWalkScore, "walk score")
			}
			fs.add(f)
		}
	}

	addSafetyFactor(&fs, q, qp)

	if qp.AirQualityWeight > 0 && q.HealthyAirDaysPct != nil {
		d := schema.DomainHealthyAirPct
		score := norm.Linear(*q.HealthyAirDaysPct, d.Min, d.Max, true)
		if q.HazardousAirDays != nil {
			score = norm.Clamp(score-math.Min(20, *q.HazardousAirDays*2), 0, 100)
		}
		f := schema.FactorAnalysis{
			Name:        "air quality",
			Weight:      qp.AirQualityWeight,
			Value:       *q.HealthyAirDaysPct,
			Unit:        "% good days",
			Score:       score,
			Explanation: fmt.Sprintf("%.0f%% healthy air days, docked for hazardous days", *q.HealthyAirDaysPct),
		}
		applyMinThreshold(&f, *q.HealthyAirDaysPct, qp.MinAirQualityPct, "healthy air share")
		fs.add(f)
	}

	if qp.BroadbandWeight > 0 && q.FiberCoveragePct != nil {
		d := schema.DomainFiberPct
		score := norm.Linear(*q.FiberCoveragePct, d.Min, d.Max, true)
		if q.BroadbandProviders != nil {
			score = norm.Clamp(score+math.Min(10, *q.BroadbandProviders*2), 0, 100)
		}
		f := schema.FactorAnalysis{
			Name:        "broadband",
			Weight:      qp.BroadbandWeight,
			Value:       *q.FiberCoveragePct,
			Unit:        "% fiber",
			Score:       score,
			Explanation: fmt.Sprintf("%.0f%% fiber coverage with a provider-choice bonus", *q.FiberCoveragePct),
		}
		applyMinThreshold(&f, *q.FiberCoveragePct, qp.MinBroadbandPct, "fiber coverage")
		fs.add(f)
	}

	if qp.SchoolsWeight > 0 {
		var b blend
		b.put(scorePtr(q.StudentTeacherRatio, schema.DomainStudentTeacher, false), 0.5)
		b.put(scorePtr(q.GraduationRatePct, schema.DomainGraduationPct, true), 0.5)
		if score, ok := b.value(); ok {
			value := 0.0
			if q.StudentTeacherRatio != nil {
				value = *q.StudentTeacherRatio
			}
			f := schema.FactorAnalysis{
				Name:        "schools",
				Weight:      qp.SchoolsWeight,
				Value:       value,
				Unit:        "students/teacher",
				Score:       score,
				Explanation: "class sizes blended with graduation rates",
			}
			if q.GraduationRatePct != nil {
				applyMinThreshold(&f, *q.GraduationRatePct, qp.MinGraduationPct, "graduation rate")
			}
			fs.add(f)
		}
	}

	if qp.HealthcareWeight > 0 {
		var b blend
		b.put(scorePtr(q.PhysiciansPer100k, schema.DomainPhysicians, true), 0.6)
		b.put(scorePtr(q.HealthShortageScore, schema.DomainShortageScore, false), 0.4)
		if score, ok := b.value(); ok {
			value := 0.0
			if q.PhysiciansPer100k != nil {
				value = *q.PhysiciansPer100k
			}
			f := schema.FactorAnalysis{
				Name:        "healthcare",
				Weight:      qp.HealthcareWeight,
				Value:       value,
				Unit:        "per 100k",
				Score:       score,
				Explanation: "primary-care density against shortage-area designation",
			}
			if q.PhysiciansPer100k != nil {
				applyMinThreshold(&f, *q.PhysiciansPer100k, qp.MinPhysicians, "physician density")
			}
			fs.add(f)
		}
	}

	addRecreationFactor(&fs, m, qp.Recreation, qp.Recreation.Weight)

	return fs.result(schema.QualityOfLifeCategory)
}

// applyMinThreshold records a user minimum on the factor and flags it
// bad when the metric misses the minimum by more than 10%. Zero
// disables the threshold, matching the safety maximum.
func applyMinThreshold(f *schema.FactorAnalysis, value, min float64, desc string) {
	if min <= 0 {
		return
	}
	m := min
	f.Threshold = &m
	if value < min*0.9 {
		f.Status = schema.StatusBad
		f.Explanation = fmt.Sprintf("%s of %.0f falls short of your %.0f minimum by more than 10%%", desc, value, min)
	}
}

// addSafetyFactor normalizes the violent crime rate, nudges for trend
// direction, and flags cities well past the user's stated maximum.
func addSafetyFactor(fs *factorSet, q schema.QualityOfLifeMetrics, qp schema.QualityOfLifePrefs) {
	if qp.SafetyWeight <= 0 || q.ViolentCrimeRate == nil {
		return
	}
	d := schema.DomainViolentCrime
	rate := *q.ViolentCrimeRate
	score := norm.Linear(rate, d.Min, d.Max, false)
	if q.CrimeTrendPct != nil {
		// An improving trend (negative change) earns up to 5 points.
		score = norm.Clamp(score+norm.Clamp(-*q.CrimeTrendPct, -5, 5), 0, 100)
	}

	f := schema.FactorAnalysis{
		Name:        "safety",
		Weight:      qp.SafetyWeight,
		Value:       rate,
		Unit:        "per 100k",
		Score:       score,
		Explanation: fmt.Sprintf("violent crime rate of %.0f per 100k", rate),
	}
	if qp.MaxCrimeRate > 0 {
		max := qp.MaxCrimeRate
		f.Threshold = &max
		if rate > max*1.1 {
			f.Status = schema.StatusBad
			f.Explanation = fmt.Sprintf("violent crime rate of %.0f exceeds your %.0f maximum by more than 10%%", rate, max)
		}
	}
	fs.add(f)
}

// addRecreationFactor blends nature, beach, and mountain access using
// the user's sub-weights. Shared by the quality-of-life and
// entertainment scorers.
func addRecreationFactor(fs *factorSet, m *schema.CityMetrics, rp schema.RecreationPrefs, weight int) {
	if weight <= 0 {
		return
	}
	q := m.QualityOfLife

	var b blend
	if q.TrailMiles != nil {
		d := schema.DomainTrailMiles
		s := norm.Plateau(*q.TrailMiles, d.Min, d.Knee, d.Max)
		b.put(&s, float64(rp.NatureWeight))
	}
	// Coastline access decays linearly with distance; anything past the
	// domain max is effectively landlocked.
	b.put(scorePtr(q.CoastlineMiles, schema.DomainCoastMiles, false), float64(rp.BeachWeight))
	b.put(scorePtr(q.ElevationReliefFt, schema.DomainReliefFt, true), float64(rp.MountainsWeight))

	score, ok := b.value()
	if !ok {
		return
	}
	fs.add(schema.FactorAnalysis{
		Name:        "recreation",
		Weight:      weight,
		Value:       math.Round(score),
		Unit:        "index",
		Score:       score,
		Explanation: "trail access, coastline proximity, and terrain relief blended",
	})
}
